package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"scanfmt/internal/driver"
)

func feed(m *progressModel, evs ...driver.Event) {
	for _, ev := range evs {
		m.Update(eventMsg(ev))
	}
}

func TestProgressModelTracksCatalogs(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking", []string{"a.fmt", "b.fmt"}, events).(*progressModel)

	feed(m,
		driver.Event{File: "a.fmt", Stage: driver.StageLoad, Status: driver.StatusDone, Total: 4},
		driver.Event{File: "a.fmt", Stage: driver.StageLex, Status: driver.StatusWorking, Done: 2, Total: 4},
		driver.Event{File: "a.fmt", Stage: driver.StageLex, Status: driver.StatusWorking, Done: 1, Total: 4},
		driver.Event{File: "b.fmt", Stage: driver.StageLoad, Status: driver.StatusError, Elapsed: 3 * time.Millisecond},
	)

	a, b := m.rows[0], m.rows[1]
	if a.done != 2 || a.total != 4 || a.status != driver.StatusWorking {
		t.Fatalf("a = %+v", a)
	}
	if b.status != driver.StatusError {
		t.Fatalf("b = %+v", b)
	}
	if got := m.percent(); got <= 0.5 || got >= 1.0 {
		t.Fatalf("percent = %v", got)
	}
	if done, total := m.entries(); done != 2 || total != 4 {
		t.Fatalf("entries = %d/%d", done, total)
	}

	view := m.View()
	for _, want := range []string{"checking", "lexing 2/4", "error", "3.0ms", "a.fmt", "b.fmt", "2/4 entries"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view misses %q:\n%s", want, view)
		}
	}
}

func TestProgressModelFinalStatusSticks(t *testing.T) {
	m := NewProgressModel("checking", []string{"a.fmt"}, nil).(*progressModel)
	feed(m,
		driver.Event{File: "a.fmt", Stage: driver.StageLex, Status: driver.StatusDone, Done: 3, Total: 3},
		driver.Event{File: "a.fmt", Stage: driver.StageLex, Status: driver.StatusWorking, Done: 2, Total: 3},
		driver.Event{File: "unknown.fmt", Stage: driver.StageLex, Status: driver.StatusError},
	)
	if m.rows[0].status != driver.StatusDone || m.rows[0].done != 3 {
		t.Fatalf("done must not revert, got %+v", m.rows[0])
	}
	if m.percent() != 1.0 {
		t.Fatalf("percent = %v", m.percent())
	}

	m.Update(doneMsg{})
	if !strings.Contains(m.View(), "done: checking") {
		t.Fatalf("final view:\n%s", m.View())
	}
}

func TestRowFraction(t *testing.T) {
	tests := []struct {
		name string
		r    row
		want float64
	}{
		{"queued", row{status: driver.StatusQueued}, 0},
		{"loading", row{stage: driver.StageLoad, status: driver.StatusWorking}, loadShare},
		{"lex without total", row{stage: driver.StageLex, status: driver.StatusWorking}, loadShare},
		{"half lexed", row{stage: driver.StageLex, status: driver.StatusWorking, done: 1, total: 2}, loadShare + (1-loadShare)/2},
		{"error", row{stage: driver.StageLoad, status: driver.StatusError}, 1},
	}
	for _, tt := range tests {
		if got := tt.r.fraction(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: fraction = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := formatElapsed(1500 * time.Microsecond); got != "1.5ms" {
		t.Errorf("formatElapsed(1.5ms) = %q", got)
	}
	if got := formatElapsed(2250 * time.Millisecond); got != "2.25s" {
		t.Errorf("formatElapsed(2.25s) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("catalogs/very/long/path.fmt", 12)
	if runewidth.StringWidth(got) > 12 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 20); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
