// Package checkrun drives document checks. It loads files, decodes them
// with the adapter matching their extension, and renders located errors
// into snippet blocks. Directory runs fan out across a worker pool and
// report per-file progress through a ProgressSink.
package checkrun

import "time"

// Stage describes a high-level check phase.
type Stage string

const (
	// StageRead is the file loading stage.
	StageRead Stage = "read"
	// StageValidate is the decoding stage.
	StageValidate Stage = "validate"
	// StageRender is the snippet rendering stage.
	StageRender Stage = "render"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is currently being checked.
	StatusWorking Status = "working"
	// StatusDone indicates the file decoded cleanly.
	StatusDone Status = "done"
	// StatusError indicates the file failed to load or decode.
	StatusError Status = "error"
)

// Event reports progress for one file. Every file receives exactly one
// terminal event (StatusDone or StatusError) with the total elapsed time.
type Event struct {
	Path    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
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

func emit(sink ProgressSink, path string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Path: path, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}

func emitQueued(sink ProgressSink, paths []string) {
	if sink == nil {
		return
	}
	for _, path := range paths {
		sink.OnEvent(Event{Path: path, Stage: StageRead, Status: StatusQueued})
	}
}
