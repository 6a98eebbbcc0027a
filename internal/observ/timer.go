// Package observ measures how long the stages of a run take.
package observ

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Timer records named phases in the order they start. It is safe for
// concurrent use. A nil *Timer is valid and records nothing.
type Timer struct {
	mu     sync.Mutex
	now    func() time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
	note string
	open bool
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// Begin opens phase name and returns the function that closes it. Closing
// twice keeps the first duration.
func (t *Timer) Begin(name string) (end func(note string)) {
	if t == nil {
		return func(string) {}
	}
	t.mu.Lock()
	start := t.now()
	idx := len(t.phases)
	t.phases = append(t.phases, phase{name: name, open: true})
	t.mu.Unlock()

	return func(note string) {
		t.mu.Lock()
		defer t.mu.Unlock()
		p := &t.phases[idx]
		if !p.open {
			return
		}
		p.open = false
		p.dur = t.now().Sub(start)
		p.note = note
	}
}

// Time runs fn as phase name. The phase note is the error text, if any.
func (t *Timer) Time(name string, fn func() error) error {
	end := t.Begin(name)
	err := fn()
	note := ""
	if err != nil {
		note = err.Error()
	}
	end(note)
	return err
}

// PhaseReport is the serializable view of one phase. Share is the part of
// the total, between 0 and 1.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Share      float64 `json:"share" msgpack:"share"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report is a snapshot of a Timer in milliseconds. Phases still open are
// left out.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var r Report
	var total time.Duration
	for _, p := range t.phases {
		if p.open {
			continue
		}
		total += p.dur
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: millis(p.dur), Note: p.note})
	}
	r.TotalMS = millis(total)
	if total > 0 {
		for i := range r.Phases {
			r.Phases[i].Share = r.Phases[i].DurationMS / r.TotalMS
		}
	}
	return r
}

// WriteTo prints the report as an aligned table.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&sb, "  %-12s %8.2f ms %5.1f%%", p.Name, p.DurationMS, 100*p.Share)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %8.2f ms\n", "total", r.TotalMS)
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
