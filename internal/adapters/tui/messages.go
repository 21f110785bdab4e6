package tui

import "time"

// MsgPlan resets the rows affected by a changed input.
type MsgPlan struct {
	Input string
	Steps []string
}

// MsgStepStart marks a row as running.
type MsgStepStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgStepComplete records the outcome of a running row.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
	Skipped bool
}
