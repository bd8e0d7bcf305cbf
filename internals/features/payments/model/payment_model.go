package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status pembayaran:
- "pending" → "completed" | "failed"
- "completed" → "refunded"
Transisi hanya maju, baris tidak pernah dihapus.
*/
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s *PaymentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = PaymentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = PaymentStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s PaymentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// PaymentModel menunjuk TEPAT SATU target: pendaftaran peserta atau kontrak
// sponsor. Constraint check di DB menjaga XOR-nya, service menolak lebih awal.
type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"type:uuid;primaryKey;column:payment_id" json:"payment_id"`

	// Order id untuk gateway (Midtrans)
	PaymentOrderID string `gorm:"type:varchar(80);unique;not null;column:payment_order_id" json:"payment_order_id"`

	PaymentAmount int64         `gorm:"not null;column:payment_amount" json:"payment_amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';column:payment_status" json:"payment_status"`

	// Target (XOR)
	PaymentRegistrationID *uuid.UUID `gorm:"type:uuid;index;column:payment_registration_id;check:chk_payments_target,(payment_registration_id IS NULL) <> (payment_contract_id IS NULL)" json:"payment_registration_id,omitempty"`
	PaymentContractID     *uuid.UUID `gorm:"type:uuid;index;column:payment_contract_id" json:"payment_contract_id,omitempty"`

	PaymentMethod *string    `gorm:"type:varchar(40);column:payment_method" json:"payment_method,omitempty"`
	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Audit
	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}
