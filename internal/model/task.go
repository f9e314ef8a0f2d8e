package model

// Entity is one named element of a ClickUp listing page (team, space, folder or list).
type Entity struct {
	ID   string
	Name string
}

// CreatedTask is the task ClickUp returned after creation.
type CreatedTask struct {
	ID              string
	Name            string
	URL             string // Deep link to the task in the ClickUp web app
	CreatorID       int64
	CreatorUsername string
}
