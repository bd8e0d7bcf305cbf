package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	alertModel "lombaku_backend/internals/features/alerts/model"
	regModel "lombaku_backend/internals/features/registrations/model"
	scoreModel "lombaku_backend/internals/features/scoring/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&scoreModel.ScoreModel{},
		&regModel.RegistrationModel{}, &regModel.RoundRegistrationModel{},
		&alertModel.SystemAlertModel{},
	))
	return db
}

func submit(t *testing.T, db *gorm.DB, eventID uuid.UUID, roundID *uuid.UUID, regID uuid.UUID, value float64) *scoreModel.ScoreModel {
	t.Helper()
	s, err := SubmitScore(db, &scoreModel.ScoreModel{
		ScoreEventID:        eventID,
		ScoreRoundID:        roundID,
		ScoreRegistrationID: &regID,
		ScoreJudgeID:        uuid.New(),
		ScoreValue:          value,
	})
	require.NoError(t, err)
	return s
}

func scoresInScope(t *testing.T, db *gorm.DB, eventID uuid.UUID, roundID *uuid.UUID) []scoreModel.ScoreModel {
	t.Helper()
	var out []scoreModel.ScoreModel
	require.NoError(t, scoreScope(db, eventID, roundID).Order("score_value DESC").Find(&out).Error)
	return out
}

// Semantik lama yang dipertahankan: winner_position = JUMLAH skor yang seri
// di nilai maksimum. 95/95/80 → dua skor 95 dapat is_winner dan posisi 2.
func TestRecomputeTieCountSemantics(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	submit(t, db, eventID, &roundID, uuid.New(), 95)
	submit(t, db, eventID, &roundID, uuid.New(), 95)
	submit(t, db, eventID, &roundID, uuid.New(), 80)

	got := scoresInScope(t, db, eventID, &roundID)
	require.Len(t, got, 3)

	require.True(t, got[0].ScoreIsWinner)
	require.True(t, got[1].ScoreIsWinner)
	require.NotNil(t, got[0].ScoreWinnerPosition)
	require.NotNil(t, got[1].ScoreWinnerPosition)
	require.Equal(t, 2, *got[0].ScoreWinnerPosition)
	require.Equal(t, 2, *got[1].ScoreWinnerPosition)

	require.False(t, got[2].ScoreIsWinner)
	require.Nil(t, got[2].ScoreWinnerPosition)
}

func TestRecomputeSingleMaxGetsPositionOne(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()

	submit(t, db, eventID, nil, uuid.New(), 70)
	submit(t, db, eventID, nil, uuid.New(), 90)

	got := scoresInScope(t, db, eventID, nil)
	require.True(t, got[0].ScoreIsWinner)
	require.Equal(t, 1, *got[0].ScoreWinnerPosition)
	require.False(t, got[1].ScoreIsWinner)
}

// Lebih dari tiga yang seri → posisi null, flag tetap menyala.
func TestRecomputeFourWayTieHasNullPosition(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	for i := 0; i < 4; i++ {
		submit(t, db, eventID, &roundID, uuid.New(), 88)
	}

	got := scoresInScope(t, db, eventID, &roundID)
	require.Len(t, got, 4)
	for _, s := range got {
		require.True(t, s.ScoreIsWinner)
		require.Nil(t, s.ScoreWinnerPosition)
	}
}

// Scope (event, ronde-null) dan (event, ronde) terpisah: recompute satu
// scope tidak menyentuh scope lain.
func TestRecomputeScopesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	submit(t, db, eventID, nil, uuid.New(), 50)
	submit(t, db, eventID, &roundID, uuid.New(), 99)

	nullScope := scoresInScope(t, db, eventID, nil)
	require.Len(t, nullScope, 1)
	require.True(t, nullScope[0].ScoreIsWinner)
	require.Equal(t, 1, *nullScope[0].ScoreWinnerPosition)
}

// Satu juri submit ulang untuk peserta yang sama → nilai diperbarui,
// bukan baris baru, dan flag dihitung ulang.
func TestSubmitScoreUpsertsPerJudge(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	regID := uuid.New()
	judgeID := uuid.New()

	first, err := SubmitScore(db, &scoreModel.ScoreModel{
		ScoreEventID:        eventID,
		ScoreRegistrationID: &regID,
		ScoreJudgeID:        judgeID,
		ScoreValue:          60,
	})
	require.NoError(t, err)

	second, err := SubmitScore(db, &scoreModel.ScoreModel{
		ScoreEventID:        eventID,
		ScoreRegistrationID: &regID,
		ScoreJudgeID:        judgeID,
		ScoreValue:          75,
	})
	require.NoError(t, err)
	require.Equal(t, first.ScoreID, second.ScoreID)

	var total int64
	require.NoError(t, db.Model(&scoreModel.ScoreModel{}).Count(&total).Error)
	require.EqualValues(t, 1, total)

	got := scoresInScope(t, db, eventID, nil)
	require.Equal(t, 75.0, got[0].ScoreValue)
}

func TestSubmitScoreRejectsNegativeValue(t *testing.T) {
	db := newTestDB(t)
	_, err := SubmitScore(db, &scoreModel.ScoreModel{
		ScoreEventID: uuid.New(),
		ScoreJudgeID: uuid.New(),
		ScoreValue:   -1,
	})
	require.ErrorIs(t, err, ErrScoreValue)
}
