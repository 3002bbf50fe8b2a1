package submission

import "time"

// StatusNew is forced on every incoming submission regardless of what the
// form posts; triage states are set out of band.
const StatusNew = "new"

type CreateSubmissionRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type DeleteSubmissionRequest struct {
	ID string `json:"id"`
}

type SubmissionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateSubmissionResponse struct {
	Message string             `json:"message"`
	Data    SubmissionResponse `json:"data"`
}
