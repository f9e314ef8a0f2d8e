package task

import (
	"context"

	"clickup-task-bot/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create resolves the request's location against ClickUp and creates the task in the resolved list.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Ping lists the teams visible to the configured credential.
	Ping(ctx context.Context) ([]model.Entity, error)
}
