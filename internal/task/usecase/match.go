package usecase

import (
	"strings"

	"clickup-task-bot/internal/model"
	"clickup-task-bot/internal/task"
)

// match picks the entity named name from one listing page.
// An exact case-insensitive match wins; otherwise the first entity whose name
// starts with name (case-insensitive) in listing order.
func match(entities []model.Entity, name string, kind task.EntityKind) (model.Entity, error) {
	want := strings.ToLower(name)

	for _, e := range entities {
		if strings.ToLower(e.Name) == want {
			return e, nil
		}
	}
	for _, e := range entities {
		if strings.HasPrefix(strings.ToLower(e.Name), want) {
			return e, nil
		}
	}

	return model.Entity{}, &task.NotFoundError{Kind: kind, Name: name}
}
