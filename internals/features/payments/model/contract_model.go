package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractModel: kontrak sponsor, target alternatif sebuah payment.
// Statusnya dikelola manual oleh panitia; pelunasan payment TIDAK
// mengubah status kontrak otomatis.
type ContractModel struct {
	ContractID          uuid.UUID `gorm:"type:uuid;primaryKey;column:contract_id" json:"contract_id"`
	ContractSponsorName string    `gorm:"type:varchar(150);not null;column:contract_sponsor_name" json:"contract_sponsor_name"`
	ContractAmount      int64     `gorm:"not null;column:contract_amount" json:"contract_amount"`
	ContractStatus      string    `gorm:"type:varchar(20);not null;default:'draft';column:contract_status" json:"contract_status"`

	ContractCreatedAt time.Time  `gorm:"column:contract_created_at;autoCreateTime" json:"contract_created_at"`
	ContractUpdatedAt *time.Time `gorm:"column:contract_updated_at;autoUpdateTime" json:"contract_updated_at,omitempty"`
}

func (ContractModel) TableName() string { return "contracts" }

func (m *ContractModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContractID == uuid.Nil {
		m.ContractID = uuid.New()
	}
	return nil
}
