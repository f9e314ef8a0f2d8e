package usecase

import (
	"errors"
	"testing"
	"time"

	"clickup-task-bot/internal/model"
	"clickup-task-bot/internal/task"
)

func entities(names ...string) []model.Entity {
	out := make([]model.Entity, 0, len(names))
	for i, n := range names {
		out = append(out, model.Entity{ID: string(rune('a' + i)), Name: n})
	}
	return out
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		listing []model.Entity
		query   string
		want    string
	}{
		{"exact wins over prefix", entities("Eng-Ops", "Engineering"), "engineering", "Engineering"},
		{"exact listed first", entities("Engineering", "Eng-Ops"), "engineering", "Engineering"},
		{"first prefix in listing order", entities("Eng-Ops", "Engine"), "eng", "Eng-Ops"},
		{"case-insensitive exact", entities("simbio", "SIMBIO IT"), "Simbio", "simbio"},
		{"case-insensitive prefix", entities("Other", "Simbio IT"), "simbio", "Simbio IT"},
		{"duplicate exact names keep the first", entities("t", "T"), "t", "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := match(tt.listing, tt.query, task.EntitySpace)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("match(%q) = %q, want %q", tt.query, got.Name, tt.want)
			}
		})
	}
}

func TestMatch_NotFound(t *testing.T) {
	for _, kind := range []task.EntityKind{task.EntityWorkspace, task.EntitySpace, task.EntityFolder, task.EntityList} {
		for _, listing := range [][]model.Entity{nil, entities("Marketing", "Sales")} {
			_, err := match(listing, "eng", kind)
			var nf *task.NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("expected *NotFoundError, got %v", err)
			}
			if nf.Kind != kind || nf.Name != "eng" {
				t.Errorf("unexpected not found error: %+v", nf)
			}
			if !errors.Is(err, task.ErrNotFound) {
				t.Errorf("expected ErrNotFound")
			}
		}
	}
}

func TestBuildTaskOptions(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	uc := &implUseCase{now: func() time.Time { return now }}

	opt := uc.buildTaskOptions(task.Request{
		Title:           "title",
		Description:     "description",
		CustomFieldsRaw: "raw",
	})

	if opt.Name != "title" || opt.Description != "description" {
		t.Errorf("unexpected name/description: %+v", opt)
	}
	if opt.Status != DefaultStatus || opt.Status != "to do" {
		t.Errorf("unexpected status %q", opt.Status)
	}
	if !opt.NotifyAll {
		t.Errorf("expected NotifyAll")
	}
	if !opt.StartDate.Equal(now) {
		t.Errorf("expected start date %v, got %v", now, opt.StartDate)
	}
	if opt.CustomFieldsRaw != "raw" {
		t.Errorf("expected raw fields to be carried, got %q", opt.CustomFieldsRaw)
	}
}
