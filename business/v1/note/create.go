package note

import (
	"context"
	"github.com/mustafa892/notes-app/persistence/v1/note"
)

// Create validates and stores a new note, and returns the refreshed listing
func Create(ctx context.Context, newN NewNote) ([]Note, error) {
	if err := validate(newN); err != nil {
		return nil, err
	}

	if err := note.Insert(ctx, note.NewNote(newN)); err != nil {
		return nil, err
	}

	return List(ctx)
}

func validate(newN NewNote) error {
	var fields []string
	if newN.Title == "" {
		fields = append(fields, "title")
	}
	if newN.Description == "" {
		fields = append(fields, "description")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
