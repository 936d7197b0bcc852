package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"quizzer/internal/models"

	"gorm.io/gorm"
)

const (
	ActionRegister   = "REGISTER"
	ActionLogin      = "LOGIN"
	ActionLogout     = "LOGOUT"
	ActionCreateQuiz = "CREATE_QUIZ"
	ActionUpdateQuiz = "UPDATE_QUIZ"
	ActionDeleteQuiz = "DELETE_QUIZ"
)

type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, 100),
	}
}

// Start consumes queued entries until ctx is cancelled.
func (s *AuditService) Start(ctx context.Context) {
	for {
		select {
		case entry := <-s.entries:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err, "action", entry.Action)
			}
		case <-ctx.Done():
			return
		}
	}
}

// LogAction queues an audit entry. Never blocks the request path; entries are
// dropped when the buffer is full.
func (s *AuditService) LogAction(userID *uint, action, entityID string, details interface{}, ip string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}
