// internals/features/registrations/service/cascade_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	evModel "lombaku_backend/internals/features/events/model"
	regModel "lombaku_backend/internals/features/registrations/model"
	helper "lombaku_backend/internals/helpers"
)

var (
	ErrEventNotFound         = errors.New("event tidak ditemukan")
	ErrEventClosed           = errors.New("event tidak menerima pendaftaran")
	ErrDuplicateRegistration = errors.New("user sudah terdaftar di event ini")
)

// CreateRegistration menyimpan pendaftaran lalu meng-cascade ke semua ronde
// yang sudah ada pada event tersebut (status awal qualified), satu transaksi.
//
// Catatan perilaku: pendaftaran sebelum event dipublikasikan sah, tapi masuk
// 0 ronde dan TIDAK di-backfill ketika bootstrap ronde jalan belakangan.
// rounds_joined di response membuat kondisi itu terlihat oleh pemanggil.
func CreateRegistration(db *gorm.DB, eventID, userID uuid.UUID, teamName *string) (*regModel.RegistrationModel, int, error) {
	var reg regModel.RegistrationModel
	joined := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		var ev evModel.EventModel
		if err := tx.First(&ev, "event_id = ?", eventID).Error; err != nil {
			if helper.IsNotFound(err) {
				return ErrEventNotFound
			}
			return err
		}
		if ev.EventStatus == evModel.EventStatusCancelled || ev.EventStatus == evModel.EventStatusCompleted {
			return ErrEventClosed
		}

		reg = regModel.RegistrationModel{
			RegistrationEventID:       eventID,
			RegistrationUserID:        userID,
			RegistrationTeamName:      teamName,
			RegistrationStatus:        regModel.RegistrationStatusPending,
			RegistrationPaymentStatus: regModel.RegPaymentPending,
		}
		if err := tx.Create(&reg).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return ErrDuplicateRegistration
			}
			return err
		}

		var rounds []evModel.RoundModel
		if err := tx.Where("round_event_id = ?", eventID).
			Order("round_order ASC").
			Find(&rounds).Error; err != nil {
			return err
		}

		for i := range rounds {
			rr := regModel.RoundRegistrationModel{
				RoundRegistrationRoundID:        rounds[i].RoundID,
				RoundRegistrationRegistrationID: reg.RegistrationID,
				RoundRegistrationEventID:        eventID,
				RoundRegistrationStatus:         regModel.RoundRegQualified,
			}
			if err := tx.Create(&rr).Error; err != nil {
				return err
			}
			joined++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &reg, joined, nil
}

// ListByEvent untuk dashboard panitia.
func ListByEvent(db *gorm.DB, eventID uuid.UUID, limit, offset int) ([]regModel.RegistrationModel, int64, error) {
	var total int64
	q := db.Model(&regModel.RegistrationModel{}).Where("registration_event_id = ?", eventID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var regs []regModel.RegistrationModel
	err := q.Order("registration_created_at ASC").Limit(limit).Offset(offset).Find(&regs).Error
	return regs, total, err
}
