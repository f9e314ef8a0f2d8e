package repository

import "time"

// CreateTaskOptions holds the parameters for creating a task in a ClickUp list.
type CreateTaskOptions struct {
	Name            string
	Description     string
	Status          string    // e.g. "to do"
	StartDate       time.Time // sent as unix milliseconds
	NotifyAll       bool
	CustomFieldsRaw string // carried for logging only, never sent
}
