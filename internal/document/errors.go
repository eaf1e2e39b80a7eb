package document

import (
	"errors"
	"fmt"
)

// Sentinels for the compile-time error kinds. Typed errors unwrap to these.
var (
	ErrMissingAttribute     = errors.New("missing attribute")
	ErrInvalidAttributeType = errors.New("invalid attribute type")
	ErrProcess              = errors.New("process error")
	ErrNoSuchCommand        = errors.New("no such command")
	ErrDecode               = errors.New("failed to decode document")
)

// MissingAttributeError reports a required attribute absent from a command.
type MissingAttributeError struct {
	Name string
	Loc  Location
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: missing attribute %q", e.Loc, e.Name)
}

func (e *MissingAttributeError) Unwrap() error { return ErrMissingAttribute }

// InvalidAttributeTypeError reports an attribute of the wrong value kind.
type InvalidAttributeTypeError struct {
	Name     string
	Expected ValueType
	Found    ValueType
	Loc      Location
}

func (e *InvalidAttributeTypeError) Error() string {
	return fmt.Sprintf("%s: attribute %q must be %s, found %s", e.Loc, e.Name, e.Expected, e.Found)
}

func (e *InvalidAttributeTypeError) Unwrap() error { return ErrInvalidAttributeType }

// ProcessError reports a semantic rule violation.
type ProcessError struct {
	Desc string
	Loc  Location
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Desc)
}

func (e *ProcessError) Unwrap() error { return ErrProcess }

// NoSuchCommandError reports an unrecognized command name.
type NoSuchCommandError struct {
	Name string
	Loc  Location
}

func (e *NoSuchCommandError) Error() string {
	return fmt.Sprintf("%s: no such command \\%s", e.Loc, e.Name)
}

func (e *NoSuchCommandError) Unwrap() error { return ErrNoSuchCommand }

// LocationOf returns the location carried by err, if any.
func LocationOf(err error) (Location, bool) {
	var (
		missing *MissingAttributeError
		invalid *InvalidAttributeTypeError
		process *ProcessError
		nocmd   *NoSuchCommandError
	)
	switch {
	case errors.As(err, &missing):
		return missing.Loc, true
	case errors.As(err, &invalid):
		return invalid.Loc, true
	case errors.As(err, &process):
		return process.Loc, true
	case errors.As(err, &nocmd):
		return nocmd.Loc, true
	}
	return Location{}, false
}
