package tlg

import (
	"errors"
	"fmt"
)

var (
	ErrPeerNotFound = errors.New("peer not found")
	ErrBadSession   = errors.New("can not decrypt session")
)

type UnexpectedTypeErrType struct {
	ExpectedType any
	GotType      any
}

func (e *UnexpectedTypeErrType) Error() string {
	return fmt.Sprintf("expected %T got %T", e.ExpectedType, e.GotType)
}
