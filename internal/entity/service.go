package entity

import (
	"time"

	"github.com/lib/pq"
)

type Service struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Features    pq.StringArray `db:"features"`
	Benefits    string         `db:"benefits"`
	Icon        string         `db:"icon"`
	Published   bool           `db:"published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
