// Package ui renders interactive progress for check runs.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"scanfmt/internal/driver"
)

// loadShare is the part of a catalog's bar credited once it is loaded.
const loadShare = 0.05

type row struct {
	path    string
	stage   driver.Stage
	status  driver.Status
	done    int
	total   int
	elapsed time.Duration
}

func (r row) final() bool {
	return r.status == driver.StatusDone || r.status == driver.StatusError
}

func (r row) fraction() float64 {
	switch {
	case r.final():
		return 1
	case r.stage == driver.StageLex && r.total > 0:
		return loadShare + (1-loadShare)*float64(r.done)/float64(r.total)
	case r.stage != "":
		return loadShare
	}
	return 0
}

// merge folds ev into r. Workers report out of order, so entry counters
// only grow and a final status is never replaced.
func (r *row) merge(ev driver.Event) {
	if r.final() {
		return
	}
	r.stage = ev.Stage
	r.status = ev.Status
	if ev.Total > 0 {
		r.total = ev.Total
	}
	if ev.Done > r.done {
		r.done = ev.Done
	}
	if ev.Elapsed > 0 {
		r.elapsed = ev.Elapsed
	}
	if ev.Stage == driver.StageLoad && ev.Status == driver.StatusDone {
		r.status = driver.StatusWorking
	}
}

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []row
	byPath  map[string]*row
	width   int
	closed  bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model with one row per catalog.
// The program quits once events is closed.
func NewProgressModel(title string, catalogs []string, events <-chan driver.Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(workingStyle)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultWidth-4)),
		rows:    make([]row, len(catalogs)),
		byPath:  make(map[string]*row, len(catalogs)),
		width:   defaultWidth,
	}
	for i, path := range catalogs {
		m.rows[i] = row{path: path, status: driver.StatusQueued}
		m.byPath[path] = &m.rows[i]
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next)
}

// next blocks for the following event.
func (m *progressModel) next() tea.Msg {
	ev, ok := <-m.events
	if !ok {
		return doneMsg{}
	}
	return eventMsg(ev)
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		var cmd tea.Cmd
		if r := m.byPath[msg.File]; r != nil {
			r.merge(driver.Event(msg))
			cmd = m.bar.SetPercent(m.percent())
		}
		return m, tea.Batch(cmd, m.next)
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += r.fraction()
	}
	return sum / float64(len(m.rows))
}

// entries sums lexed and known entry counts over all catalogs.
func (m *progressModel) entries() (done, total int) {
	for _, r := range m.rows {
		done += r.done
		total += r.total
	}
	return done, total
}
