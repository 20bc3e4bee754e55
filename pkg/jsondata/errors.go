package jsondata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataType is returned when a JSON object cannot be built from
	// the given input: the input is neither a mapping nor JSON object text,
	// or the text does not describe an object.
	ErrInvalidDataType = errors.New("invalid data type for a JSON object")

	// ErrFieldNotFound is the sentinel matched by errors.Is for
	// FieldNotFoundError values.
	ErrFieldNotFound = errors.New("field not found")
)

// FieldNotFoundError is returned by Object.GetField when the requested key
// is absent from the underlying JSON object.
type FieldNotFoundError struct {
	TypeName string
	Field    string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.TypeName, e.Field)
}

func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrFieldNotFound
}
