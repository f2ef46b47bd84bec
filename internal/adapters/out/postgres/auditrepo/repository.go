// Package auditrepo writes workflow outcome records to the order_logs table.
package auditrepo

import (
	"context"
	"time"

	"zinger/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

type OrderLogDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Code         int       `gorm:"index;not null"`
	Message      string    `gorm:"type:text;not null"`
	CallerMobile string    `gorm:"type:varchar(20);index"`
	SubjectID    string    `gorm:"type:varchar(64);index"`
	Payload      string    `gorm:"type:text"`
	Priority     string    `gorm:"type:varchar(8);not null"`
	RecordedAt   time.Time `gorm:"not null"`
}

func (OrderLogDTO) TableName() string {
	return "order_logs"
}

// GormAuditSink implements ports.AuditSink using GORM. It writes outside of
// any unit of work so an entry survives the rollback of the operation it
// describes.
type GormAuditSink struct {
	db *gorm.DB
}

func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

func (s *GormAuditSink) Record(ctx context.Context, entry audit.Entry) error {
	dto := OrderLogDTO{
		Code:         entry.Code,
		Message:      entry.Message,
		CallerMobile: entry.CallerMobile,
		SubjectID:    entry.SubjectID,
		Payload:      entry.Payload,
		Priority:     entry.Priority.String(),
		RecordedAt:   entry.RecordedAt,
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}
