package usecase

import (
	"time"

	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/repository"
	pkgLog "clickup-task-bot/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.ClickUpRepository
	defaultTeam string
	now         func() time.Time
}

// New creates a new task UseCase instance.
// defaultTeam is the workspace every lookup starts from; it is not user-selectable.
func New(l pkgLog.Logger, repo repository.ClickUpRepository, defaultTeam string) task.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		defaultTeam: defaultTeam,
		now:         time.Now,
	}
}
