package roster

import "fmt"

// NotFoundError signals a lookup of a codename that is not in the roster.
type NotFoundError struct {
	Codename string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no agent with codename %q", e.Codename)
}

// ValidationError signals a rejected field write. The store state is
// unchanged when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
