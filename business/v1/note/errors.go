package note

import "strings"

// ValidationError reports the required fields a create request is missing
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
