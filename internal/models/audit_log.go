package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `json:"user_id,omitempty"` // Nullable for anonymous
	Action    string    `gorm:"not null;size:50;index" json:"action"`
	EntityID  string    `gorm:"size:100" json:"entity_id"`
	Details   string    `gorm:"type:text" json:"details"` // Stored as JSON string
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
