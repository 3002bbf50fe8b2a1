package entity

import "time"

type BlogPost struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	Published   bool      `db:"published"`
	Category    string    `db:"category"`
	Author      string    `db:"author"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
