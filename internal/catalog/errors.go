package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/daniilsolovey/editions/internal/db"
)

// ErrNotFound is returned when no edition has the requested id.
var ErrNotFound = db.ErrNotFound

// MsgNotFound is the client-facing text for ErrNotFound on every transport.
const MsgNotFound = "Edition not found"

const (
	msgFieldsRequired = "All fields are required"
	msgInvalidEdition = "Invalid edition data"
	msgInvalidID      = "Invalid edition ID"
)

// ValidationError reports rejected input. Fields maps a field name to the reason.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Details joins the field reasons in field name order.
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return strings.Join(parts, "; ")
}

// ErrInvalidID is returned for ids that are not positive integers.
func ErrInvalidID() *ValidationError {
	return &ValidationError{Message: msgInvalidID}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
