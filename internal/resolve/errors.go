package resolve

import (
	"errors"
	"fmt"
)

var (
	ErrNilInput            = errors.New("nil input")
	ErrFreeForm            = errors.New("free-form parse failed")
	ErrFormatMismatch      = errors.New("no catalog format matched")
	ErrNotApplicable       = errors.New("input shape not applicable")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrPermissive          = errors.New("permissive parse failed")
)

// StageError records why a stage did not resolve its input. Kind is one of
// the sentinel errors above; Err is the underlying parser error, if any.
type StageError struct {
	Stage Stage
	Kind  error
	Input string
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s: %q", e.Stage, e.Kind, e.Input)
	}
	return fmt.Sprintf("%s: %s: %q: %s", e.Stage, e.Kind, e.Input, e.Err)
}

func (e *StageError) Unwrap() error { return e.Kind }

func stageError(stage Stage, kind error, input string, cause error) error {
	return &StageError{Stage: stage, Kind: kind, Input: input, Err: cause}
}
