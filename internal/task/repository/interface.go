package repository

import (
	"context"

	"clickup-task-bot/internal/model"
)

// ClickUpRepository is the interface for ClickUp hierarchy lookups and task creation.
// Listing methods return one page of non-archived entities in API order.
type ClickUpRepository interface {
	ListTeams(ctx context.Context) ([]model.Entity, error)
	ListSpaces(ctx context.Context, teamID string) ([]model.Entity, error)
	ListFolders(ctx context.Context, spaceID string) ([]model.Entity, error)
	ListFolderlessLists(ctx context.Context, spaceID string) ([]model.Entity, error)
	ListLists(ctx context.Context, folderID string) ([]model.Entity, error)
	CreateTask(ctx context.Context, listID string, opt CreateTaskOptions) (model.CreatedTask, error)
}
