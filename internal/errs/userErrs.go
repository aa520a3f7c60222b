package errs

import (
	"errors"
	"fmt"
)

// baseUserErr is an error whose message is safe to show to the requesting user.
type baseUserErr struct {
	message string
	err     error
}

func (e *baseUserErr) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err)
	}
	return e.message
}

func (e *baseUserErr) Unwrap() error { return e.err }

// UserMessage is the text to reply with.
func (e *baseUserErr) UserMessage() string { return e.message }

// InputError rejects malformed user input; the conversation may re-prompt.
type InputError struct{ *baseUserErr }

// CredentialError means a bot token or session is missing or unusable; the conversation is aborted.
type CredentialError struct{ *baseUserErr }

func NewInputError(message string) *InputError {
	return &InputError{&baseUserErr{message: message}}
}
func NewCredentialError(message string, err error) *CredentialError {
	return &CredentialError{&baseUserErr{message: message, err: err}}
}

// UserMessage returns the reply text carried by err, if any.
func UserMessage(err error) (string, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.UserMessage(), true
	}
	var ce *CredentialError
	if errors.As(err, &ce) {
		return ce.UserMessage(), true
	}
	return "", false
}
