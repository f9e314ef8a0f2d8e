package task

import "clickup-task-bot/internal/model"

// Location is the user-supplied path to the target list.
// Folder is empty for folder-less lists.
type Location struct {
	Space  string
	Folder string
	List   string
}

// HasFolder reports whether the list lives inside a folder.
func (l Location) HasFolder() bool {
	return l.Folder != ""
}

// Request is a parsed /task command.
type Request struct {
	Location        Location
	Title           string
	Description     string
	CustomFieldsRaw string // forwarded as-is, never interpreted
}

// ResolvedLocation holds the ClickUp ids the location path resolved to.
type ResolvedLocation struct {
	TeamID   string
	SpaceID  string
	FolderID string // empty for folder-less lists
	ListID   string
}

// CreateInput is the input for task creation.
type CreateInput struct {
	Request Request
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task     model.CreatedTask
	Location ResolvedLocation
}
