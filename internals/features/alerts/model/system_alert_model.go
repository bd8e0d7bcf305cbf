package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis alert yang dipakai core
const (
	AlertTypeEventReminder      = "event_reminder"
	AlertTypeWinnerAnnouncement = "winner_announcement"
)

// SystemAlertModel: notifikasi terjadwal. Core ini hanya membuat baris dan
// membalik is_sent saat jatuh tempo; pengiriman email/SMS/push dilakukan
// dispatcher eksternal yang membaca baris sent.
type SystemAlertModel struct {
	// PK
	AlertID uuid.UUID `gorm:"type:uuid;primaryKey;column:alert_id" json:"alert_id"`

	// Target: user spesifik atau role (salah satu boleh kosong)
	AlertUserID     *uuid.UUID `gorm:"type:uuid;index;column:alert_user_id" json:"alert_user_id,omitempty"`
	AlertTargetRole *string    `gorm:"type:varchar(40);column:alert_target_role" json:"alert_target_role,omitempty"`

	// Konteks event (dipakai dedupe reminder)
	AlertEventID *uuid.UUID `gorm:"type:uuid;index;column:alert_event_id" json:"alert_event_id,omitempty"`

	AlertType    string         `gorm:"type:varchar(40);not null;index;column:alert_type" json:"alert_type"`
	AlertTitle   string         `gorm:"type:varchar(150);not null;column:alert_title" json:"alert_title"`
	AlertMessage string         `gorm:"type:text;column:alert_message" json:"alert_message"`
	AlertPayload datatypes.JSON `gorm:"column:alert_payload" json:"alert_payload,omitempty"`

	// Penjadwalan
	AlertScheduledFor *time.Time `gorm:"index;column:alert_scheduled_for" json:"alert_scheduled_for,omitempty"`
	AlertIsSent       bool       `gorm:"not null;default:false;index;column:alert_is_sent" json:"alert_is_sent"`
	AlertIsRead       bool       `gorm:"not null;default:false;column:alert_is_read" json:"alert_is_read"`

	// Audit
	AlertCreatedAt time.Time  `gorm:"column:alert_created_at;autoCreateTime" json:"alert_created_at"`
	AlertUpdatedAt *time.Time `gorm:"column:alert_updated_at;autoUpdateTime" json:"alert_updated_at,omitempty"`
}

func (SystemAlertModel) TableName() string { return "system_alerts" }

func (m *SystemAlertModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlertID == uuid.Nil {
		m.AlertID = uuid.New()
	}
	return nil
}
