package usecase

import (
	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/repository"
)

// buildTaskOptions builds a fresh task payload for req. The start date is the current time.
func (uc *implUseCase) buildTaskOptions(req task.Request) repository.CreateTaskOptions {
	return repository.CreateTaskOptions{
		Name:            req.Title,
		Description:     req.Description,
		Status:          DefaultStatus,
		StartDate:       uc.now(),
		NotifyAll:       true,
		CustomFieldsRaw: req.CustomFieldsRaw,
	}
}
