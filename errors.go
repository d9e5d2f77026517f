package settings

import "fmt"

// CoercionError is returned by Bind when an environment variable's value
// cannot be converted to its field's declared type. It carries the field
// name and the raw offending string so callers can report the exact
// variable at fault before aborting startup.
type CoercionError struct {
	Field string
	Value string
	Kind  Kind
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("settings: cannot coerce %q to %s for field %q", e.Value, e.Kind, e.Field)
}
