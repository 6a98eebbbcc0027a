package driver

import "time"

// Stage describes a phase of a check run.
type Stage string

const (
	// StageLoad reads and splits a catalog.
	StageLoad Stage = "load"
	// StageLex lexes the catalog entries.
	StageLex Stage = "lex"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	// StatusError marks a catalog that failed to load or has a failing entry.
	StatusError Status = "error"
)

// Event reports progress for a catalog (or for the whole run when File is empty).
// Done and Total count entries during StageLex.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Done    int
	Total   int
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Check calls OnEvent from worker
// goroutines, so implementations must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
