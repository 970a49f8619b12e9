package status

import "fmt"

// StatusError is the base error type for status operations.
type StatusError interface {
	error
	IsStatusError()
}

// UnknownCategoryError is returned for a name that is not a category.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown status category %q", e.Name)
}

func (e *UnknownCategoryError) IsStatusError() {}

// UnsupportedComparisonError is returned when a status is compared with a
// value that is neither a status nor a recognized category. Err holds the
// parse failure for an unknown category name.
type UnsupportedComparisonError struct {
	Value interface{}
	Err   error
}

func (e *UnsupportedComparisonError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot compare status with %v: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("cannot compare status with %T", e.Value)
}

func (e *UnsupportedComparisonError) Unwrap() error { return e.Err }

func (e *UnsupportedComparisonError) IsStatusError() {}
