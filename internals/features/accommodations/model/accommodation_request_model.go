package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status permintaan penginapan:
- "pending", "approved", "rejected", "cancelled", "waitlisted"
Hanya Allocator yang boleh mengubah status ini.
*/
type AccommodationRequestStatus string

const (
	RequestPending    AccommodationRequestStatus = "pending"
	RequestApproved   AccommodationRequestStatus = "approved"
	RequestRejected   AccommodationRequestStatus = "rejected"
	RequestCancelled  AccommodationRequestStatus = "cancelled"
	RequestWaitlisted AccommodationRequestStatus = "waitlisted"
)

func (s *AccommodationRequestStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AccommodationRequestStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AccommodationRequestStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = AccommodationRequestStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s AccommodationRequestStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// AccommodationRequestModel: rentang tanggal [check_in, check_out) — tanggal
// check-out eksklusif, jadi back-to-back booking tidak dianggap bentrok.
type AccommodationRequestModel struct {
	// PK
	RequestID uuid.UUID `gorm:"type:uuid;primaryKey;column:request_id" json:"request_id"`

	RequestUserID         uuid.UUID  `gorm:"type:uuid;not null;index;column:request_user_id" json:"request_user_id"`
	RequestRegistrationID *uuid.UUID `gorm:"type:uuid;index;column:request_registration_id" json:"request_registration_id,omitempty"`

	RequestCheckIn   time.Time `gorm:"type:date;not null;column:request_check_in" json:"request_check_in"`
	RequestCheckOut  time.Time `gorm:"type:date;not null;column:request_check_out" json:"request_check_out"`
	RequestPartySize int       `gorm:"not null;column:request_party_size" json:"request_party_size"`

	RequestStatus          AccommodationRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index;column:request_status" json:"request_status"`
	RequestAccommodationID *uuid.UUID                 `gorm:"type:uuid;index;column:request_accommodation_id" json:"request_accommodation_id,omitempty"`
	RequestDecisionReason  *string                    `gorm:"type:varchar(200);column:request_decision_reason" json:"request_decision_reason,omitempty"`

	// Audit
	RequestCreatedAt time.Time  `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`
	RequestUpdatedAt *time.Time `gorm:"column:request_updated_at;autoUpdateTime" json:"request_updated_at,omitempty"`
}

func (AccommodationRequestModel) TableName() string { return "accommodation_requests" }

func (m *AccommodationRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.RequestID == uuid.Nil {
		m.RequestID = uuid.New()
	}
	return nil
}
