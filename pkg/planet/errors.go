package planet

import (
	"errors"
	"fmt"
)

var (
	// Document errors 🪐
	ErrValidation = errors.New("❌ invalid field value")
	ErrParse      = errors.New("❌ malformed planet file")
	ErrIO         = errors.New("❌ planet file I/O failed")
)

// ValidationError reports a field whose text or value cannot be written to the file.
type ValidationError struct {
	Section string
	Field   string
	Value   string
	Reason  string
}

func (e *ValidationError) Error() string {
	name := e.Field
	if e.Section != "" {
		name = e.Section + "." + e.Field
	}
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", name, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", name, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParseError reports a planet file that is not valid JSON or does not fit the schema.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "failed to parse planet file"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Field != "" {
		msg += " at " + e.Field
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IOError reports a filesystem failure together with the attempted path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
