package dto

type NoteOutput struct {
	ID        string
	Title     string
	Content   string
	CreatedAt string
}

type CreateInput struct {
	Title   string `validate:"required"`
	Content string
}

type UpdateInput struct {
	ID      string `validate:"required"`
	Title   string `validate:"required"`
	Content string
}
