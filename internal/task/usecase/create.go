package usecase

import (
	"context"
	"fmt"
	"strings"

	"clickup-task-bot/internal/model"
	"clickup-task-bot/internal/task"
)

// Create resolves the request's location and creates the task in the resolved list.
// Task creation is the last call, so a failed lookup never leaves a task behind.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	req := input.Request
	if strings.TrimSpace(req.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	uc.l.Infof(ctx, "Create: user=%s space=%q folder=%q list=%q", sc.UserID, req.Location.Space, req.Location.Folder, req.Location.List)

	loc, err := uc.resolve(ctx, req.Location)
	if err != nil {
		uc.l.Warnf(ctx, "Create: resolution failed: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Debugf(ctx, "Create: resolved team=%s space=%s folder=%s list=%s", loc.TeamID, loc.SpaceID, loc.FolderID, loc.ListID)

	created, err := uc.repo.CreateTask(ctx, loc.ListID, uc.buildTaskOptions(req))
	if err != nil {
		return task.CreateOutput{}, fmt.Errorf("create task: %w", err)
	}

	uc.l.Infof(ctx, "Create: created task %s in list %s by %s", created.ID, loc.ListID, created.CreatorUsername)

	return task.CreateOutput{
		Task:     created,
		Location: loc,
	}, nil
}

// Ping lists the teams visible to the configured credential.
func (uc *implUseCase) Ping(ctx context.Context) ([]model.Entity, error) {
	teams, err := uc.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
