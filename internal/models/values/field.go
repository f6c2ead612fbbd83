// Package values holds the self-validating value objects that contacts and
// notes are built from. Every constructor normalizes its raw input first and
// then validates the normalized form; only the normalized string is stored.
//
// Validation failures are *common.ValidationError values whose message is the
// exact text shown to the user.
package values

// Field is a plain string value without extra constraints. Notes use it for
// their body.
type Field struct {
	value string
}

// NewField wraps s as is.
func NewField(s string) Field {
	return Field{value: s}
}

// String returns the wrapped value.
func (f Field) String() string {
	return f.value
}

// Equal reports whether both fields hold the same string.
func (f Field) Equal(other Field) bool {
	return f.value == other.value
}

// IsZero reports whether the field is empty.
func (f Field) IsZero() bool {
	return f.value == ""
}
