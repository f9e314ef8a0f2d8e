package task

import (
	"fmt"

	"clickup-task-bot/internal/model"
)

// TaskLinkFormat is the web app deep link for a task id.
const TaskLinkFormat = "https://app.clickup.com/t/%s"

// SuccessReply formats the chat reply for a created task.
func SuccessReply(t model.CreatedTask) string {
	link := fmt.Sprintf(TaskLinkFormat, t.ID)
	return fmt.Sprintf("Task #%s created by %s. Link: %s", t.ID, t.CreatorUsername, link)
}

// ErrorReply formats the chat reply for a failed command.
func ErrorReply(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
