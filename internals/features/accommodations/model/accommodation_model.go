package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Ketersediaan penginapan:
- "available"
- "unavailable"
- "maintenance"
*/
type AccommodationAvailability string

const (
	AccommodationAvailable   AccommodationAvailability = "available"
	AccommodationUnavailable AccommodationAvailability = "unavailable"
	AccommodationMaintenance AccommodationAvailability = "maintenance"
)

func (s *AccommodationAvailability) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AccommodationAvailability(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AccommodationAvailability(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = AccommodationAvailability(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s AccommodationAvailability) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type AccommodationModel struct {
	// PK
	AccommodationID uuid.UUID `gorm:"type:uuid;primaryKey;column:accommodation_id" json:"accommodation_id"`

	AccommodationName     string `gorm:"type:varchar(150);not null;column:accommodation_name" json:"accommodation_name"`
	AccommodationCapacity int    `gorm:"not null;column:accommodation_capacity" json:"accommodation_capacity"`

	AccommodationAvailability AccommodationAvailability `gorm:"type:varchar(20);not null;default:'available';column:accommodation_availability" json:"accommodation_availability"`

	// Audit
	AccommodationCreatedAt time.Time  `gorm:"column:accommodation_created_at;autoCreateTime" json:"accommodation_created_at"`
	AccommodationUpdatedAt *time.Time `gorm:"column:accommodation_updated_at;autoUpdateTime" json:"accommodation_updated_at,omitempty"`
}

func (AccommodationModel) TableName() string { return "accommodations" }

func (m *AccommodationModel) BeforeCreate(tx *gorm.DB) error {
	if m.AccommodationID == uuid.Nil {
		m.AccommodationID = uuid.New()
	}
	return nil
}
