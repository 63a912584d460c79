package tui

import "time"

// Messages for the tea program

// OpDoneMsg is sent when a workflow operation returns
type OpDoneMsg struct {
	Op  string
	Err error
}

// ExportDoneMsg is sent when the export file has been written
type ExportDoneMsg struct {
	Path string
	Err  error
}

// TickMsg is sent periodically to refresh the view from the session state
type TickMsg struct {
	Time time.Time
}
