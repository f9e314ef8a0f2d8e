package clickup

// ---- Request/Response types scoped to this package ----

// Team is a ClickUp workspace.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Space is a named subdivision of a team.
type Space struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Folder groups lists inside a space.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List is the container tasks are created in.
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomField is a custom field value set on task creation.
type CustomField struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// CreateTaskRequest is the body for POST /list/{list_id}/task.
// Nullable fields are pointers so they serialize as JSON null.
type CreateTaskRequest struct {
	Name                      string        `json:"name"`
	Description               string        `json:"description"`
	Assignees                 []int64       `json:"assignees"`
	Tags                      []string      `json:"tags"`
	Status                    string        `json:"status"`
	Priority                  *int          `json:"priority"`
	DueDate                   *int64        `json:"due_date"`
	DueDateTime               bool          `json:"due_date_time"`
	TimeEstimate              *int64        `json:"time_estimate"`
	StartDate                 int64         `json:"start_date"`
	StartDateTime             bool          `json:"start_date_time"`
	NotifyAll                 bool          `json:"notify_all"`
	Parent                    *string       `json:"parent"`
	LinksTo                   *string       `json:"links_to"`
	CheckRequiredCustomFields bool          `json:"check_required_custom_fields"`
	CustomFields              []CustomField `json:"custom_fields"`
}

// User is the ClickUp user object embedded in tasks.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Task is the ClickUp task object returned on creation.
type Task struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Creator User   `json:"creator"`
}
