// Package audit describes the records written for every workflow outcome.
package audit

import "time"

// Priority classifies an audit entry for operational triage.
type Priority int

const (
	Low Priority = iota + 1
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Entry is one audit record.
type Entry struct {
	Code         int
	Message      string
	CallerMobile string
	SubjectID    string
	Payload      string
	Priority     Priority
	RecordedAt   time.Time
}
