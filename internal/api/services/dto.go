package services

import "time"

const DefaultIcon = "SparklesIcon"

type CreateServiceRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Benefits    string   `json:"benefits" validate:"required"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Published   bool     `json:"published"`
}

// UpdateServiceRequest replaces the whole mutable field set, same contract
// as blog posts: absent fields come back as their defaults.
type UpdateServiceRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    string   `json:"benefits"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Published   bool     `json:"published"`
}

type DeleteServiceRequest struct {
	ID string `json:"id"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Benefits    string    `json:"benefits"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
