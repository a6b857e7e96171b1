package domain

import "praxis/internal/platform/httpapi"

// ClientSession is a therapist's record of one client visit. Unrelated to
// the auth session.
type ClientSession struct {
	ID          httpapi.StringID `json:"id"`
	ClientName  string           `json:"client_name"`
	SessionDate string           `json:"session_date"`
	Notes       string           `json:"notes"`
	CreatedAt   string           `json:"created_at"`
}
