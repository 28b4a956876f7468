package sheet

import "fmt"

// SchemaError reports that a required column name is absent from the
// worksheet header. It indicates upstream schema drift that no retry fixes.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("worksheet header is missing required column %q", e.Column)
}
