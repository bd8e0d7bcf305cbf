package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Posisi peserta dalam satu ronde:
- "qualified", "eliminated", "advanced", "winner", "runner_up", "third_place"
*/
type RoundRegistrationStatus string

const (
	RoundRegQualified  RoundRegistrationStatus = "qualified"
	RoundRegEliminated RoundRegistrationStatus = "eliminated"
	RoundRegAdvanced   RoundRegistrationStatus = "advanced"
	RoundRegWinner     RoundRegistrationStatus = "winner"
	RoundRegRunnerUp   RoundRegistrationStatus = "runner_up"
	RoundRegThirdPlace RoundRegistrationStatus = "third_place"
)

func (s *RoundRegistrationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RoundRegistrationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = RoundRegistrationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = RoundRegistrationStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s RoundRegistrationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// RoundRegistrationModel mengikat pendaftaran ke satu ronde.
// Event id ikut disimpan supaya pasangan ronde/pendaftaran lintas event
// tertolak di level constraint, bukan cuma di service.
type RoundRegistrationModel struct {
	// PK
	RoundRegistrationID uuid.UUID `gorm:"type:uuid;primaryKey;column:round_registration_id" json:"round_registration_id"`

	RoundRegistrationRoundID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_round_registrations_pair;column:round_registration_round_id" json:"round_registration_round_id"`
	RoundRegistrationRegistrationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_round_registrations_pair;column:round_registration_registration_id" json:"round_registration_registration_id"`
	RoundRegistrationEventID        uuid.UUID `gorm:"type:uuid;not null;index;column:round_registration_event_id" json:"round_registration_event_id"`

	RoundRegistrationStatus RoundRegistrationStatus `gorm:"type:varchar(20);not null;default:'qualified';column:round_registration_status" json:"round_registration_status"`

	// Snapshot hasil rekap (diisi Scoring Engine)
	RoundRegistrationScore *float64 `gorm:"column:round_registration_score" json:"round_registration_score,omitempty"`
	RoundRegistrationRank  *int     `gorm:"column:round_registration_rank" json:"round_registration_rank,omitempty"`

	// Audit
	RoundRegistrationCreatedAt time.Time  `gorm:"column:round_registration_created_at;autoCreateTime" json:"round_registration_created_at"`
	RoundRegistrationUpdatedAt *time.Time `gorm:"column:round_registration_updated_at;autoUpdateTime" json:"round_registration_updated_at,omitempty"`
}

func (RoundRegistrationModel) TableName() string { return "round_registrations" }

func (m *RoundRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoundRegistrationID == uuid.Nil {
		m.RoundRegistrationID = uuid.New()
	}
	return nil
}
