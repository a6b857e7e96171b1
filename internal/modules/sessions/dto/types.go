package dto

type SessionOutput struct {
	ID          string
	ClientName  string
	SessionDate string
	Notes       string
	CreatedAt   string
}

type CreateInput struct {
	ClientName  string `validate:"required"`
	SessionDate string `validate:"required"`
	Notes       string
}

type UpdateInput struct {
	ID          string `validate:"required"`
	ClientName  string `validate:"required"`
	SessionDate string `validate:"required"`
	Notes       string
}
