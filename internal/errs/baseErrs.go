package errs

import "reflect"

type IErr interface {
	error
}

// IsErr compares dynamic types only, not wrapped chains.
func IsErr(val error, target IErr) bool {
	return reflect.TypeOf(val) == reflect.TypeOf(target)
}
