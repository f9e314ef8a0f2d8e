package clickup

import (
	"context"
	"errors"
	"net"

	"clickup-task-bot/internal/model"
	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/repository"
	pkgLog "clickup-task-bot/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new ClickUp repository.
func New(client *Client, l pkgLog.Logger) repository.ClickUpRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTeams(ctx context.Context) ([]model.Entity, error) {
	teams, err := r.client.GetTeams(ctx)
	if err != nil {
		return nil, toSubmissionError(err)
	}
	out := make([]model.Entity, 0, len(teams))
	for _, t := range teams {
		out = append(out, model.Entity{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (r *implRepository) ListSpaces(ctx context.Context, teamID string) ([]model.Entity, error) {
	spaces, err := r.client.GetSpaces(ctx, teamID)
	if err != nil {
		return nil, toSubmissionError(err)
	}
	out := make([]model.Entity, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, model.Entity{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

func (r *implRepository) ListFolders(ctx context.Context, spaceID string) ([]model.Entity, error) {
	folders, err := r.client.GetFolders(ctx, spaceID)
	if err != nil {
		return nil, toSubmissionError(err)
	}
	out := make([]model.Entity, 0, len(folders))
	for _, f := range folders {
		out = append(out, model.Entity{ID: f.ID, Name: f.Name})
	}
	return out, nil
}

func (r *implRepository) ListFolderlessLists(ctx context.Context, spaceID string) ([]model.Entity, error) {
	lists, err := r.client.GetFolderlessLists(ctx, spaceID)
	if err != nil {
		return nil, toSubmissionError(err)
	}
	return listsToEntities(lists), nil
}

func (r *implRepository) ListLists(ctx context.Context, folderID string) ([]model.Entity, error) {
	lists, err := r.client.GetLists(ctx, folderID)
	if err != nil {
		return nil, toSubmissionError(err)
	}
	return listsToEntities(lists), nil
}

func (r *implRepository) CreateTask(ctx context.Context, listID string, opt repository.CreateTaskOptions) (model.CreatedTask, error) {
	req := CreateTaskRequest{
		Name:         opt.Name,
		Description:  opt.Description,
		Assignees:    []int64{},
		Tags:         []string{},
		Status:       opt.Status,
		StartDate:    opt.StartDate.UnixMilli(),
		NotifyAll:    opt.NotifyAll,
		CustomFields: []CustomField{},
	}
	if opt.CustomFieldsRaw != "" {
		r.l.Debugf(ctx, "clickup repository: custom fields %q are not forwarded", opt.CustomFieldsRaw)
	}

	t, err := r.client.CreateTask(ctx, listID, req)
	if err != nil {
		r.l.Errorf(ctx, "clickup repository: failed to create task in list %s: %v", listID, err)
		return model.CreatedTask{}, toSubmissionError(err)
	}

	return model.CreatedTask{
		ID:              t.ID,
		Name:            t.Name,
		URL:             t.URL,
		CreatorID:       t.Creator.ID,
		CreatorUsername: t.Creator.Username,
	}, nil
}

func listsToEntities(lists []List) []model.Entity {
	out := make([]model.Entity, 0, len(lists))
	for _, l := range lists {
		out = append(out, model.Entity{ID: l.ID, Name: l.Name})
	}
	return out
}

// toSubmissionError classifies a client error into a task.SubmissionError.
func toSubmissionError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &task.SubmissionError{
			Kind:       task.SubmissionHTTPStatus,
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
			Err:        err,
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &task.SubmissionError{Kind: task.SubmissionTimeout, Err: err}
	}
	return &task.SubmissionError{Kind: task.SubmissionNetwork, Err: err}
}
