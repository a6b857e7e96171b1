package dto

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// LoginOutput is a tagged result: either Success is true and Username is
// set, or Success is false and Message says why. Login failures are a
// normal outcome, not an error path.
type LoginOutput struct {
	Success  bool
	Message  string
	Username string
}

type StatusOutput struct {
	Authenticated bool
	Username      string
}
