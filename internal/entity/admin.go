package entity

// AdminLoginData is the identity carried by a validated session token.
// There is no users table; admins exist only in the configured allow-list.
type AdminLoginData struct {
	ID    string
	Email string
	Name  string
}
