package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*
Status event (sesuai ENUM di DB):
- "draft"
- "published"
- "ongoing"
- "completed"
- "cancelled"
*/
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Pastikan selalu lower-case saat scan/save
func (s *EventStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = EventStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = EventStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = EventStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s EventStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type EventModel struct {
	// PK
	EventID uuid.UUID `gorm:"type:uuid;primaryKey;column:event_id" json:"event_id"`

	// Identitas
	EventName        string         `gorm:"type:varchar(150);not null;column:event_name" json:"event_name"`
	EventSlug        string         `gorm:"type:varchar(120);unique;not null;column:event_slug" json:"event_slug"`
	EventDescription *string        `gorm:"column:event_description" json:"event_description,omitempty"`
	EventTags        pq.StringArray `gorm:"type:text[];column:event_tags" json:"event_tags,omitempty"`

	// Jadwal & lokasi
	EventVenue     *string    `gorm:"type:varchar(150);column:event_venue" json:"event_venue,omitempty"`
	EventStartTime time.Time  `gorm:"not null;column:event_start_time" json:"event_start_time"`
	EventEndTime   *time.Time `gorm:"column:event_end_time" json:"event_end_time,omitempty"`

	// Kuota peserta
	EventCapacity int `gorm:"not null;default:0;column:event_capacity" json:"event_capacity"`

	// Lifecycle
	EventStatus      EventStatus `gorm:"type:varchar(20);not null;default:'draft';column:event_status" json:"event_status"`
	EventPublishedAt *time.Time  `gorm:"column:event_published_at" json:"event_published_at,omitempty"`

	// Audit
	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt *time.Time     `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at,omitempty"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
