package domain

type User struct {
	Username string `json:"username"`
}

// State is the client's view of the auth session. Loading is true only
// between process start and the first status check resolving.
type State struct {
	Authenticated bool
	User          *User
	Loading       bool
}
