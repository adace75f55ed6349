package rules

import "fmt"

// UnknownTypeError indicates a lookup for a type id the ruleset does not
// define.
type UnknownTypeError struct {
	Kind string
	ID   string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown %s type: %s", e.Kind, e.ID)
}
