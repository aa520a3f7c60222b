package facade

import "errors"

var ErrNoDocumentsFound = errors.New("no documents found")
var ErrMultipleDocumentsFound = errors.New("multiple documents found")
var ErrAlreadyBanned = errors.New("user is already banned")
var ErrInvalidUserID = errors.New("invalid user id")
