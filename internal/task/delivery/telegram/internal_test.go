package telegram

import (
	"testing"
	"time"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		text     string
		wantCmd  string
		wantBody string
	}{
		{"/task simbio.t\ntitle", "/task", " simbio.t\ntitle"},
		{"/task\nsimbio.t", "/task", "\nsimbio.t"},
		{"  /TASK@ClickUpBot a.b", "/task", " a.b"},
		{"/usage", "/usage", ""},
		{"hello world", "hello", " world"},
	}

	for _, tt := range tests {
		cmd, body := splitCommand(tt.text)
		if cmd != tt.wantCmd || body != tt.wantBody {
			t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)", tt.text, cmd, body, tt.wantCmd, tt.wantBody)
		}
	}
}

func TestReplayGuard(t *testing.T) {
	g := newReplayGuard(2, time.Minute)
	if !g.firstSeen(1) {
		t.Errorf("first delivery must pass")
	}
	if g.firstSeen(1) {
		t.Errorf("redelivery must be dropped")
	}
	if !g.firstSeen(2) || !g.firstSeen(3) {
		t.Errorf("new ids must pass")
	}
	// Capacity 2: id 1 was evicted.
	if !g.firstSeen(1) {
		t.Errorf("evicted id must pass again")
	}

	disabled := newReplayGuard(0, time.Minute)
	if !disabled.firstSeen(1) || !disabled.firstSeen(1) {
		t.Errorf("disabled guard must pass everything")
	}
}
