package outcome

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"zinger/internal/core/domain/model/audit"
	"zinger/internal/core/ports"
)

// Recorder writes outcomes to the audit sink. Sink failures and panics are
// logged and swallowed.
type Recorder struct {
	sink   ports.AuditSink
	logger *slog.Logger
	clock  func() time.Time
}

func NewRecorder(sink ports.AuditSink, logger *slog.Logger) *Recorder {
	return &Recorder{
		sink:   sink,
		logger: logger.With("component", "audit"),
		clock:  time.Now,
	}
}

// Subject identifies what an audit entry is about.
type Subject struct {
	CallerMobile string
	ID           string
	Payload      any
}

// Record writes one audit entry for an outcome.
func Record[T any](ctx context.Context, r *Recorder, o Outcome[T], subject Subject, priority audit.Priority) {
	if r == nil {
		return
	}

	entry := audit.Entry{
		Code:         int(o.Code),
		Message:      o.Message,
		CallerMobile: subject.CallerMobile,
		SubjectID:    subject.ID,
		Payload:      r.encode(subject.Payload),
		Priority:     priority,
		RecordedAt:   r.clock(),
	}

	if err := r.write(ctx, entry); err != nil {
		r.logger.ErrorContext(ctx, "failed to record outcome",
			"code", entry.Code,
			"subject", entry.SubjectID,
			"priority", priority.String(),
			"error", err,
		)
	}
}

// write runs after Guard has already recovered, so a panicking sink is
// turned into an error here.
func (r *Recorder) write(ctx context.Context, entry audit.Entry) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("audit sink panicked: %v", rec)
		}
	}()
	return r.sink.Record(ctx, entry)
}

func (r *Recorder) encode(payload any) string {
	if payload == nil {
		return ""
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%+v", payload)
	}
	return string(b)
}

// Audit records *result at the priority of its code. Use it as
// `defer outcome.Audit(ctx, recorder, subject, &result)` ahead of Guard so
// that a recovered panic is recorded too.
func Audit[T any](ctx context.Context, r *Recorder, subject Subject, result *Outcome[T]) {
	Record(ctx, r, *result, subject, result.Code.Priority())
}

// Guard converts a panic in the calling handler into UnexpectedInternalFault.
// Use it as `defer outcome.Guard(ctx, logger, &result)` with a named result.
func Guard[T any](ctx context.Context, logger *slog.Logger, result *Outcome[T]) {
	if rec := recover(); rec != nil {
		logger.ErrorContext(ctx, "recovered from panic", "panic", fmt.Sprint(rec))
		*result = Fail[T](UnexpectedInternalFault)
	}
}
