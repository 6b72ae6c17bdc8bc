// Package apperr holds the few error shapes handlers translate to HTTP codes.
package apperr

import (
	"errors"
	"fmt"
)

// ErrConflict marks an explicit rename into a name already taken within its
// scope. Find-or-create flows never return it; they resolve silently.
var ErrConflict = errors.New("name already in use")

// BadInput is a caller mistake worth a 400 and a field message.
type BadInput struct {
	Msg string
}

func (e *BadInput) Error() string { return e.Msg }

func BadInputf(format string, args ...any) error {
	return &BadInput{Msg: fmt.Sprintf(format, args...)}
}

func IsBadInput(err error) bool {
	var bi *BadInput
	return errors.As(err, &bi)
}
