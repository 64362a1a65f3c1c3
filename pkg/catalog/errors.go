package catalog

import (
	"errors"
	"fmt"
)

// ErrCourseNotFound matches any *NotFoundError via errors.Is.
var ErrCourseNotFound = errors.New("course not found")

// NotFoundError is returned by Lookup for codes missing from the catalog.
// Input holds what the user typed, before normalization.
type NotFoundError struct {
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Unknown course: '%s'", e.Input)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrCourseNotFound
}
