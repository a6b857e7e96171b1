package domain

import "praxis/internal/platform/httpapi"

// PersonalNote is the therapist's private note, not tied to any client.
type PersonalNote struct {
	ID        httpapi.StringID `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"created_at"`
}
