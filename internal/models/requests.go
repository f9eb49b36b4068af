package models

// CreateLibraryRequest opens a library session
type CreateLibraryRequest struct {
	Kind string `json:"kind" validate:"required,oneof=mcq pdf video"`
	Mode string `json:"mode,omitempty" validate:"omitempty,oneof=MCQ FREE PREMIUM ULTRA VIDEO"`
	User User   `json:"user"`
}

// ActionRequest carries the host's current user with every library action
type ActionRequest struct {
	User  User   `json:"user"`
	Query string `json:"q,omitempty"`
}

// AnswerRequest selects an option of the current quiz question
type AnswerRequest struct {
	User   User `json:"user"`
	Option *int `json:"option" validate:"required,min=0"`
}

// ErrorResponse is the body of every error answer
type ErrorResponse struct {
	Error  string `json:"error"`
	Reload bool   `json:"reload,omitempty"`
}
