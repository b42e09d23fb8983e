package note

import (
	"context"
	"github.com/mustafa892/notes-app/persistence/v1/note"
)

// List returns every stored note in insertion order
func List(ctx context.Context) ([]Note, error) {
	list, err := note.List(ctx)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(list))
	for _, n := range list {
		notes = append(notes, Note(n))
	}
	return notes, nil
}
