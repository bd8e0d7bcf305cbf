package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status pendaftaran:
- "pending"
- "confirmed"
- "cancelled"
- "waitlisted"
- "checked_in"
*/
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
	RegistrationStatusWaitlist  RegistrationStatus = "waitlisted"
	RegistrationStatusCheckedIn RegistrationStatus = "checked_in"
)

func (s *RegistrationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s RegistrationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

/*
Status pembayaran pendaftaran (terpisah dari lifecycle):
- "pending", "paid", "failed", "refunded", "not_required"
*/
type RegistrationPaymentStatus string

const (
	RegPaymentPending     RegistrationPaymentStatus = "pending"
	RegPaymentPaid        RegistrationPaymentStatus = "paid"
	RegPaymentFailed      RegistrationPaymentStatus = "failed"
	RegPaymentRefunded    RegistrationPaymentStatus = "refunded"
	RegPaymentNotRequired RegistrationPaymentStatus = "not_required"
)

func (s *RegistrationPaymentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RegistrationPaymentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = RegistrationPaymentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = RegistrationPaymentStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s RegistrationPaymentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type RegistrationModel struct {
	// PK
	RegistrationID uuid.UUID `gorm:"type:uuid;primaryKey;column:registration_id" json:"registration_id"`

	// Satu user hanya boleh daftar sekali per event
	RegistrationEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_registrations_user_event;column:registration_event_id" json:"registration_event_id"`
	RegistrationUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_registrations_user_event;column:registration_user_id" json:"registration_user_id"`

	RegistrationTeamName *string `gorm:"type:varchar(100);column:registration_team_name" json:"registration_team_name,omitempty"`

	// Lifecycle & pembayaran
	RegistrationStatus        RegistrationStatus        `gorm:"type:varchar(20);not null;default:'pending';column:registration_status" json:"registration_status"`
	RegistrationPaymentStatus RegistrationPaymentStatus `gorm:"type:varchar(20);not null;default:'pending';column:registration_payment_status" json:"registration_payment_status"`

	// Audit
	RegistrationCreatedAt time.Time      `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt *time.Time     `gorm:"column:registration_updated_at;autoUpdateTime" json:"registration_updated_at,omitempty"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index" json:"registration_deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string { return "registrations" }

func (m *RegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.RegistrationID == uuid.Nil {
		m.RegistrationID = uuid.New()
	}
	return nil
}
