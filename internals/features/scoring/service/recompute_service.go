// internals/features/scoring/service/recompute_service.go
package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scoreModel "lombaku_backend/internals/features/scoring/model"
	helper "lombaku_backend/internals/helpers"
)

var ErrScoreValue = errors.New("nilai skor tidak valid")

// scoreScope membatasi query ke (event, ronde-atau-null).
func scoreScope(tx *gorm.DB, eventID uuid.UUID, roundID *uuid.UUID) *gorm.DB {
	q := tx.Model(&scoreModel.ScoreModel{}).Where("score_event_id = ?", eventID)
	if roundID == nil {
		return q.Where("score_round_id IS NULL")
	}
	return q.Where("score_round_id = ?", *roundID)
}

func scopeLockKey(eventID uuid.UUID, roundID *uuid.UUID) string {
	if roundID == nil {
		return fmt.Sprintf("score:%s", eventID)
	}
	return fmt.Sprintf("score:%s:%s", eventID, *roundID)
}

// SubmitScore menyimpan (atau memperbarui) nilai juri lalu langsung
// menghitung ulang flag pemenang dalam scope yang sama. Rekap ini cuma
// nilai sementara untuk tampilan live; DeclareWinners yang final.
func SubmitScore(db *gorm.DB, in *scoreModel.ScoreModel) (*scoreModel.ScoreModel, error) {
	if in.ScoreValue < 0 {
		return nil, ErrScoreValue
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// serialisasi per scope: dua submit bersamaan tidak boleh
		// saling menimpa hasil recompute
		if err := helper.AdvisoryXactLock(tx, scopeLockKey(in.ScoreEventID, in.ScoreRoundID)); err != nil {
			return err
		}

		// satu juri satu nilai per peserta per scope → update kalau sudah ada
		existing := scoreModel.ScoreModel{}
		q := scoreScope(tx, in.ScoreEventID, in.ScoreRoundID).
			Where("score_judge_id = ?", in.ScoreJudgeID)
		if in.ScoreRegistrationID == nil {
			q = q.Where("score_registration_id IS NULL")
		} else {
			q = q.Where("score_registration_id = ?", *in.ScoreRegistrationID)
		}
		err := q.First(&existing).Error
		switch {
		case err == nil:
			existing.ScoreValue = in.ScoreValue
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*in = existing
		case helper.IsNotFound(err):
			if err := tx.Create(in).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return RecomputeWinnerFlags(tx, in.ScoreEventID, in.ScoreRoundID)
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

// RecomputeWinnerFlags meniru perilaku incremental lama: semua skor yang
// menyentuh nilai maksimum di-flag is_winner, dan winner_position diisi
// JUMLAH skor yang seri di maksimum (1→1, 2→2, 3→3, lebih→null).
//
// Semantik "posisi = jumlah seri" memang aneh; dipertahankan sebagai nilai
// preview live dan selalu ditimpa oleh DeclareWinners.
func RecomputeWinnerFlags(tx *gorm.DB, eventID uuid.UUID, roundID *uuid.UUID) error {
	var max sql.NullFloat64
	if err := scoreScope(tx, eventID, roundID).
		Select("MAX(score_value)").Scan(&max).Error; err != nil {
		return err
	}
	if !max.Valid {
		return nil
	}

	var tied int64
	if err := scoreScope(tx, eventID, roundID).
		Where("score_value = ?", max.Float64).
		Count(&tied).Error; err != nil {
		return err
	}

	var pos *int
	if tied >= 1 && tied <= 3 {
		p := int(tied)
		pos = &p
	}

	if err := scoreScope(tx, eventID, roundID).
		Updates(map[string]interface{}{
			"score_is_winner":       false,
			"score_winner_position": nil,
		}).Error; err != nil {
		return err
	}
	return scoreScope(tx, eventID, roundID).
		Where("score_value = ?", max.Float64).
		Updates(map[string]interface{}{
			"score_is_winner":       true,
			"score_winner_position": pos,
		}).Error
}

// ListScores untuk dashboard: skor dalam satu scope, terbaru dulu.
func ListScores(db *gorm.DB, eventID uuid.UUID, roundID *uuid.UUID, limit, offset int) ([]scoreModel.ScoreModel, int64, error) {
	var total int64
	if err := scoreScope(db, eventID, roundID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var scores []scoreModel.ScoreModel
	err := scoreScope(db, eventID, roundID).
		Order("score_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&scores).Error
	return scores, total, err
}
