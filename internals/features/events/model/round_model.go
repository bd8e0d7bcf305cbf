package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status ronde:
- "scheduled"
- "ongoing"
- "completed"
- "cancelled"
*/
type RoundStatus string

const (
	RoundStatusScheduled RoundStatus = "scheduled"
	RoundStatusOngoing   RoundStatus = "ongoing"
	RoundStatusCompleted RoundStatus = "completed"
	RoundStatusCancelled RoundStatus = "cancelled"
)

func (s *RoundStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RoundStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = RoundStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = RoundStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s RoundStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type RoundModel struct {
	// PK
	RoundID uuid.UUID `gorm:"type:uuid;primaryKey;column:round_id" json:"round_id"`

	// Induk
	RoundEventID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_rounds_event_order;column:round_event_id" json:"round_event_id"`

	// Urutan wajib unik & rapat per event (1,2,3)
	RoundOrder int    `gorm:"not null;uniqueIndex:uq_rounds_event_order;column:round_order" json:"round_order"`
	RoundName  string `gorm:"type:varchar(100);not null;column:round_name" json:"round_name"`

	// Jadwal
	RoundStartTime time.Time  `gorm:"not null;column:round_start_time" json:"round_start_time"`
	RoundEndTime   *time.Time `gorm:"column:round_end_time" json:"round_end_time,omitempty"`

	// Lifecycle
	RoundStatus RoundStatus `gorm:"type:varchar(20);not null;default:'scheduled';column:round_status" json:"round_status"`

	// Audit
	RoundCreatedAt time.Time  `gorm:"column:round_created_at;autoCreateTime" json:"round_created_at"`
	RoundUpdatedAt *time.Time `gorm:"column:round_updated_at;autoUpdateTime" json:"round_updated_at,omitempty"`
}

func (RoundModel) TableName() string { return "rounds" }

func (m *RoundModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoundID == uuid.Nil {
		m.RoundID = uuid.New()
	}
	return nil
}
