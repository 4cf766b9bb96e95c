package service

import "errors"

var (
	// ErrNotFound is returned when a referenced user, question, quiz or score
	// does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidChoice is returned when a submitted choice does not exist or
	// does not belong to the submitted question.
	ErrInvalidChoice = errors.New("invalid choice for this question")
	// ErrCreationFailed is returned when a write failed after validation passed.
	// The whole operation has been rolled back.
	ErrCreationFailed = errors.New("failed to record submission")
	// ErrInvalidCredentials is returned on a bad username/password pair.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrForbidden is returned when the caller lacks permission for the target.
	ErrForbidden = errors.New("not enough permissions")
)
