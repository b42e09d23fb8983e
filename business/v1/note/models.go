package note

import "time"

type Note struct {
	Id          uint64    `json:"id" example:"1"`
	Title       string    `json:"title" example:"Groceries"`
	Description string    `json:"description" example:"Buy milk"`
	Important   bool      `json:"important" example:"true"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt   time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Important   bool   `json:"important"`
}
