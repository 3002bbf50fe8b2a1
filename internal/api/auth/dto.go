package auth

type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type SessionResponse struct {
	AccessToken      string  `json:"token"`
	ExpiresInMinutes float64 `json:"expires"`
	Redirect         string  `json:"redirect"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
