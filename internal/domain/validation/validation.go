// Package validation carries the typed input-validation failure used
// across usecases, so handlers can tell a caller mistake (400) apart
// from a storage failure (500).
package validation

import "fmt"

type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string { return e.Field + " " + e.Reason }

func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}
