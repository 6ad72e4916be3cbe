package model

import "fmt"

// ValidationError reports a Pos that fails a construction-time invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid pos: %s: %s", e.Field, e.Reason)
}

// DuplicateNameError reports a write that collided with an existing pos name.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("pos with name %q already exists", e.Name)
}

// NotFoundError reports a lookup or update of a pos ID that does not exist.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("pos %d not found", e.ID)
}
