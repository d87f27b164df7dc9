package store

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// Logs provides access to the audit trail.
type Logs struct {
	db *gorm.DB
}

func NewLogs(db *gorm.DB) *Logs {
	return &Logs{db: db}
}

// Create appends one audit record. Failures are surfaced so the caller
// can decide to ignore them; auditing never blocks the request itself.
func (s *Logs) Create(ctx context.Context, l *models.AuditLog) error {
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// List returns one page of the owner's audit records, newest first.
func (s *Logs) List(ctx context.Context, userID uint, q Query) ([]models.AuditLog, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.AuditLog{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var items []models.AuditLog
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	return items, total, nil
}
