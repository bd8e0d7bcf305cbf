// internals/features/scoring/service/declare_winners_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	alertModel "lombaku_backend/internals/features/alerts/model"
	regModel "lombaku_backend/internals/features/registrations/model"
	helper "lombaku_backend/internals/helpers"
)

// DeclaredWinner adalah hasil akhir pemeringkatan batch.
type DeclaredWinner struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	AvgScore       float64   `json:"avg_score"`
	Position       int       `json:"position"`
}

// DeclareWinners adalah sumber kebenaran penentuan juara.
//
// Rata-rata nilai per pendaftaran dihitung lintas juri, diurutkan avg DESC
// lalu registration_id ASC supaya deterministik. Posisi memakai competition
// ranking: rata-rata yang sama berbagi posisi (dua teratas seri → dua-duanya
// posisi 1). Hanya posisi 1-3 yang di-flag. Reset + assign berjalan dalam
// satu transaksi, jadi mengulang operasi dengan skor yang sama menghasilkan
// assignment yang identik.
func DeclareWinners(db *gorm.DB, eventID uuid.UUID, roundID *uuid.UUID) ([]DeclaredWinner, error) {
	var winners []DeclaredWinner

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.AdvisoryXactLock(tx, scopeLockKey(eventID, roundID)); err != nil {
			return err
		}

		type avgRow struct {
			RegistrationID uuid.UUID `gorm:"column:registration_id"`
			AvgValue       float64   `gorm:"column:avg_value"`
		}
		var rows []avgRow
		if err := scoreScope(tx, eventID, roundID).
			Select("score_registration_id AS registration_id, AVG(score_value) AS avg_value").
			Where("score_registration_id IS NOT NULL").
			Group("score_registration_id").
			Order("avg_value DESC, score_registration_id ASC").
			Scan(&rows).Error; err != nil {
			return err
		}

		// reset semua flag lama dalam scope
		if err := scoreScope(tx, eventID, roundID).
			Updates(map[string]interface{}{
				"score_is_winner":       false,
				"score_winner_position": nil,
			}).Error; err != nil {
			return err
		}
		if roundID != nil {
			if err := tx.Model(&regModel.RoundRegistrationModel{}).
				Where("round_registration_round_id = ?", *roundID).
				Updates(map[string]interface{}{
					"round_registration_rank":  nil,
					"round_registration_score": nil,
				}).Error; err != nil {
				return err
			}
			// juara lama yang terlempar dari top-3 kembali qualified,
			// jangan sampai ada status winner tersisa tanpa rank
			if err := tx.Model(&regModel.RoundRegistrationModel{}).
				Where("round_registration_round_id = ?", *roundID).
				Where("round_registration_status IN ?", []regModel.RoundRegistrationStatus{
					regModel.RoundRegWinner, regModel.RoundRegRunnerUp, regModel.RoundRegThirdPlace,
				}).
				Update("round_registration_status", regModel.RoundRegQualified).Error; err != nil {
				return err
			}
		}

		pos := 0
		var prevAvg float64
		for i, row := range rows {
			if i == 0 || row.AvgValue < prevAvg {
				pos = i + 1
			}
			prevAvg = row.AvgValue
			if pos > 3 {
				break
			}

			if err := scoreScope(tx, eventID, roundID).
				Where("score_registration_id = ?", row.RegistrationID).
				Updates(map[string]interface{}{
					"score_is_winner":       true,
					"score_winner_position": pos,
				}).Error; err != nil {
				return err
			}

			if roundID != nil {
				if err := tx.Model(&regModel.RoundRegistrationModel{}).
					Where("round_registration_round_id = ? AND round_registration_registration_id = ?", *roundID, row.RegistrationID).
					Updates(map[string]interface{}{
						"round_registration_status": roundStatusForPosition(pos),
						"round_registration_rank":   pos,
						"round_registration_score":  row.AvgValue,
					}).Error; err != nil {
					return err
				}
			}

			if err := announceWinner(tx, eventID, row.RegistrationID, pos); err != nil {
				return err
			}

			winners = append(winners, DeclaredWinner{
				RegistrationID: row.RegistrationID,
				AvgScore:       row.AvgValue,
				Position:       pos,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return winners, nil
}

func roundStatusForPosition(pos int) regModel.RoundRegistrationStatus {
	switch pos {
	case 1:
		return regModel.RoundRegWinner
	case 2:
		return regModel.RoundRegRunnerUp
	default:
		return regModel.RoundRegThirdPlace
	}
}

// announceWinner membuat satu notifikasi pengumuman per juara (top-3).
func announceWinner(tx *gorm.DB, eventID, registrationID uuid.UUID, pos int) error {
	var reg regModel.RegistrationModel
	if err := tx.First(&reg, "registration_id = ?", registrationID).Error; err != nil {
		// pendaftaran hilang (soft delete) → lewati pengumuman, jangan gagalkan rekap
		if helper.IsNotFound(err) {
			return nil
		}
		return err
	}

	// rekap ulang tidak boleh menumpuk pengumuman yang sama
	var dup int64
	if err := tx.Model(&alertModel.SystemAlertModel{}).
		Where("alert_type = ? AND alert_user_id = ? AND alert_event_id = ?",
			alertModel.AlertTypeWinnerAnnouncement, reg.RegistrationUserID, eventID).
		Count(&dup).Error; err != nil {
		return err
	}
	if dup > 0 {
		return nil
	}

	now := time.Now()
	alert := alertModel.SystemAlertModel{
		AlertUserID:       &reg.RegistrationUserID,
		AlertEventID:      &eventID,
		AlertType:         alertModel.AlertTypeWinnerAnnouncement,
		AlertTitle:        "Pengumuman Pemenang",
		AlertMessage:      fmt.Sprintf("Selamat! Kamu meraih posisi %d.", pos),
		AlertScheduledFor: &now,
	}
	return tx.Create(&alert).Error
}
