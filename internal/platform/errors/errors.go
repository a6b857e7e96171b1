package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("not authenticated")
	ErrNotFound     = errors.New("not found")
	ErrBadResponse  = errors.New("unexpected server response")
	ErrUnavailable  = errors.New("server unreachable")
)
