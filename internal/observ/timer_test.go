package observ

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Unix(0, 0)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	end := tm.Begin("load")
	end("2 catalogs")
	end("ignored")
	err := tm.Time("lex", func() error { return errors.New("1 failed") })
	if err == nil || err.Error() != "1 failed" {
		t.Fatalf("Time must return fn's error, got %v", err)
	}

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Name != "load" || r.Phases[0].Note != "2 catalogs" || r.Phases[0].DurationMS != 1 {
		t.Fatalf("unexpected phase %+v", r.Phases[0])
	}
	if r.Phases[1].Note != "1 failed" {
		t.Fatalf("error text must become the note, got %q", r.Phases[1].Note)
	}
	if r.TotalMS != 2 || r.Phases[0].Share != 0.5 {
		t.Fatalf("total=%v share=%v", r.TotalMS, r.Phases[0].Share)
	}

	var sb strings.Builder
	if _, err := r.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"timings:\n", "load", " 50.0%", "// 2 catalogs", "  total ", " 2.00 ms\n"} {
		if !strings.Contains(sb.String(), want) {
			t.Fatalf("summary misses %q:\n%s", want, sb.String())
		}
	}
}

func TestOpenPhasesAreSkipped(t *testing.T) {
	tm := NewTimer()
	tm.Begin("still running")
	if r := tm.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("open phase reported: %+v", r)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Begin("x")("")
	called := false
	if err := tm.Time("y", func() error { called = true; return nil }); err != nil || !called {
		t.Fatal("nil timer must still run fn")
	}
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer reported %+v", r)
	}
}

func TestConcurrentPhases(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tm.Time("entry", func() error { return nil })
		}()
	}
	wg.Wait()
	if got := len(tm.Report().Phases); got != 8 {
		t.Fatalf("expected 8 phases, got %d", got)
	}
}
