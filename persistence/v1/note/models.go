package note

import "time"

const listKey = "notes.all"

type Note struct {
	Id          uint64
	Title       string
	Description string
	Important   bool
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

type NewNote struct {
	Title       string
	Description string
	Important   bool
}

// important is stored as 0/1 so every driver takes the placeholder
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

