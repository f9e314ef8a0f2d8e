package command_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/command"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want task.Request
	}{
		{
			name: "folderless list",
			raw:  "simbio.t\ntitle\ndescription\n",
			want: task.Request{
				Location:    task.Location{Space: "simbio", List: "t"},
				Title:       "title",
				Description: "description",
			},
		},
		{
			name: "folderless list with fields",
			raw:  "simbio.t\ntitle\ndescription\npriority=high",
			want: task.Request{
				Location:        task.Location{Space: "simbio", List: "t"},
				Title:           "title",
				Description:     "description",
				CustomFieldsRaw: "priority=high",
			},
		},
		{
			name: "list inside folder",
			raw:  "Engineering.Backend.Sprint 12\nFix login\nUsers get logged out\n{}",
			want: task.Request{
				Location:        task.Location{Space: "Engineering", Folder: "Backend", List: "Sprint 12"},
				Title:           "Fix login",
				Description:     "Users get logged out",
				CustomFieldsRaw: "{}",
			},
		},
		{
			name: "blank lines and CRLF are ignored",
			raw:  "\r\n\nops.infra.oncall\r\n\r\nPage rotation\r\nupdate schedule\r\n\r\nnone\r\n",
			want: task.Request{
				Location:        task.Location{Space: "ops", Folder: "infra", List: "oncall"},
				Title:           "Page rotation",
				Description:     "update schedule",
				CustomFieldsRaw: "none",
			},
		},
		{
			name: "doubled separator means no folder",
			raw:  "simbio..t\ntitle\ndescription\nfields",
			want: task.Request{
				Location:        task.Location{Space: "simbio", List: "t"},
				Title:           "title",
				Description:     "description",
				CustomFieldsRaw: "fields",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_FolderPresence(t *testing.T) {
	oneSep, err := command.Parse("space.list\na\nb\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oneSep.Location.HasFolder() {
		t.Errorf("one separator must yield no folder, got %q", oneSep.Location.Folder)
	}

	twoSep, err := command.Parse("space.folder.list\na\nb\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !twoSep.Location.HasFolder() || twoSep.Location.Folder != "folder" {
		t.Errorf("two separators must yield folder, got %q", twoSep.Location.Folder)
	}
}

func TestParse_WrongLineCount(t *testing.T) {
	for _, raw := range []string{
		"",
		"\n\n\n",
		"simbio.t",
		"simbio.t\ntitle",
		"simbio.t\ntitle\ndescription",
		"simbio.t\ntitle\ndescription\nfields\nextra",
		"a.b\n1\n2\n3\n4\n5\n6",
	} {
		_, err := command.Parse(raw)
		if !errors.Is(err, task.ErrWrongLineCount) {
			t.Errorf("Parse(%q): expected ErrWrongLineCount, got %v", raw, err)
		}
	}
}

func TestParse_MalformedLocation(t *testing.T) {
	for _, meta := range []string{
		"nodots",
		"a.b.c.d",
		"a.b.c.d.e",
		".list",
		"space.",
		"space.folder.",
		".folder.list",
	} {
		_, err := command.Parse(meta + "\ntitle\ndescription\nfields")
		if !errors.Is(err, task.ErrMalformedLocation) {
			t.Errorf("Parse(meta=%q): expected ErrMalformedLocation, got %v", meta, err)
		}
		var pe *task.ParseError
		if errors.As(err, &pe) && pe.Kind != task.MalformedLocation {
			t.Errorf("Parse(meta=%q): kind = %v", meta, pe.Kind)
		}
	}
}
