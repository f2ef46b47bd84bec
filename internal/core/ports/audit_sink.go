package ports

import (
	"context"

	"zinger/internal/core/domain/model/audit"
)

// AuditSink durably records workflow outcomes. Callers never let its
// failure change the result of the operation being recorded.
type AuditSink interface {
	Record(ctx context.Context, entry audit.Entry) error
}
