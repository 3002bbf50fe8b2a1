package entity

import "time"

// ContactSubmission rows are immutable after creation except for the status
// column; the API exposes no update operation for them.
type ContactSubmission struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
