package errors

import "unicode"

// maxNameLength bounds machine and project names printed on drawings.
const maxNameLength = 64

// ValidateName checks a free-form machine name before it is printed on a
// drawing. Names may contain spaces and slashes ("WS8 / WS108") but no
// control characters, and are at most 64 bytes long.
//
// An empty name is valid and means "no name".
func ValidateName(name string) error {
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}
	return nil
}

// ValidateChoice checks that v is one of the allowed values.
func ValidateChoice(field string, v int, allowed ...int) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "%s must be one of %v, got %d", field, allowed, v)
}
