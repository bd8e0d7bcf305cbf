package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	alertModel "lombaku_backend/internals/features/alerts/model"
	regModel "lombaku_backend/internals/features/registrations/model"
	scoreModel "lombaku_backend/internals/features/scoring/model"
)

// fixture: pendaftaran + round_registration + skor dari beberapa juri
func seedContestant(t *testing.T, db *gorm.DB, eventID, roundID uuid.UUID, values ...float64) *regModel.RegistrationModel {
	t.Helper()
	reg := &regModel.RegistrationModel{
		RegistrationEventID: eventID,
		RegistrationUserID:  uuid.New(),
		RegistrationStatus:  regModel.RegistrationStatusConfirmed,
	}
	require.NoError(t, db.Create(reg).Error)
	require.NoError(t, db.Create(&regModel.RoundRegistrationModel{
		RoundRegistrationRoundID:        roundID,
		RoundRegistrationRegistrationID: reg.RegistrationID,
		RoundRegistrationEventID:        eventID,
		RoundRegistrationStatus:         regModel.RoundRegQualified,
	}).Error)

	for _, v := range values {
		require.NoError(t, db.Create(&scoreModel.ScoreModel{
			ScoreEventID:        eventID,
			ScoreRoundID:        &roundID,
			ScoreRegistrationID: &reg.RegistrationID,
			ScoreJudgeID:        uuid.New(),
			ScoreValue:          v,
		}).Error)
	}
	return reg
}

func TestDeclareWinnersRanksByAverage(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	first := seedContestant(t, db, eventID, roundID, 90, 100)  // avg 95
	second := seedContestant(t, db, eventID, roundID, 80, 90)  // avg 85
	third := seedContestant(t, db, eventID, roundID, 70, 80)   // avg 75
	seedContestant(t, db, eventID, roundID, 50, 60)            // avg 55 → di luar top-3

	winners, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)
	require.Len(t, winners, 3)

	require.Equal(t, first.RegistrationID, winners[0].RegistrationID)
	require.Equal(t, 1, winners[0].Position)
	require.Equal(t, second.RegistrationID, winners[1].RegistrationID)
	require.Equal(t, 2, winners[1].Position)
	require.Equal(t, third.RegistrationID, winners[2].RegistrationID)
	require.Equal(t, 3, winners[2].Position)

	// status round_registration ikut diperbarui
	var rr regModel.RoundRegistrationModel
	require.NoError(t, db.First(&rr,
		"round_registration_registration_id = ?", first.RegistrationID).Error)
	require.Equal(t, regModel.RoundRegWinner, rr.RoundRegistrationStatus)
	require.NotNil(t, rr.RoundRegistrationRank)
	require.Equal(t, 1, *rr.RoundRegistrationRank)
	require.NotNil(t, rr.RoundRegistrationScore)
	require.Equal(t, 95.0, *rr.RoundRegistrationScore)

	// skor peserta keempat tidak di-flag
	var loserFlags int64
	require.NoError(t, db.Model(&scoreModel.ScoreModel{}).
		Where("score_is_winner = ?", true).Count(&loserFlags).Error)
	require.EqualValues(t, 6, loserFlags) // 3 pemenang × 2 skor
}

// Rata-rata yang sama berbagi posisi (competition ranking): dua teratas
// seri → dua-duanya posisi 1, bukan 1 dan 2.
func TestDeclareWinnersTiedAveragesSharePosition(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	a := seedContestant(t, db, eventID, roundID, 95)
	b := seedContestant(t, db, eventID, roundID, 95)
	c := seedContestant(t, db, eventID, roundID, 80)

	winners, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)
	require.Len(t, winners, 3)

	pos := map[uuid.UUID]int{}
	for _, w := range winners {
		pos[w.RegistrationID] = w.Position
	}
	require.Equal(t, 1, pos[a.RegistrationID])
	require.Equal(t, 1, pos[b.RegistrationID])
	require.Equal(t, 3, pos[c.RegistrationID])
}

// Mengulang operasi dengan skor tak berubah menghasilkan assignment identik
// dan tidak menumpuk pengumuman.
func TestDeclareWinnersIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	seedContestant(t, db, eventID, roundID, 90)
	seedContestant(t, db, eventID, roundID, 85)
	seedContestant(t, db, eventID, roundID, 80)

	first, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)
	second, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)
	require.Equal(t, first, second)

	var alerts int64
	require.NoError(t, db.Model(&alertModel.SystemAlertModel{}).
		Where("alert_type = ?", alertModel.AlertTypeWinnerAnnouncement).
		Count(&alerts).Error)
	require.EqualValues(t, 3, alerts)
}

// Rekap ulang dengan skor berubah: juara lama yang terlempar dari top-3
// kembali qualified, bukan menyisakan status winner tanpa rank.
func TestDeclareWinnersDemotesFormerWinner(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	old := seedContestant(t, db, eventID, roundID, 100)
	runnerUp := seedContestant(t, db, eventID, roundID, 90)
	seedContestant(t, db, eventID, roundID, 80)
	fourth := seedContestant(t, db, eventID, roundID, 70)

	_, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)

	var before regModel.RoundRegistrationModel
	require.NoError(t, db.First(&before,
		"round_registration_registration_id = ?", old.RegistrationID).Error)
	require.Equal(t, regModel.RoundRegWinner, before.RoundRegistrationStatus)

	// nilai juara lama anjlok sebelum rekap berikutnya
	require.NoError(t, db.Model(&scoreModel.ScoreModel{}).
		Where("score_registration_id = ?", old.RegistrationID).
		Update("score_value", 10).Error)

	winners, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)
	require.Len(t, winners, 3)
	require.Equal(t, runnerUp.RegistrationID, winners[0].RegistrationID)

	var demoted regModel.RoundRegistrationModel
	require.NoError(t, db.First(&demoted,
		"round_registration_registration_id = ?", old.RegistrationID).Error)
	require.Equal(t, regModel.RoundRegQualified, demoted.RoundRegistrationStatus)
	require.Nil(t, demoted.RoundRegistrationRank)
	require.Nil(t, demoted.RoundRegistrationScore)

	// peserta keempat naik mengisi posisi tiga
	var promoted regModel.RoundRegistrationModel
	require.NoError(t, db.First(&promoted,
		"round_registration_registration_id = ?", fourth.RegistrationID).Error)
	require.Equal(t, regModel.RoundRegThirdPlace, promoted.RoundRegistrationStatus)
}

// Batch adalah sumber kebenaran: hasil preview incremental ditimpa.
func TestDeclareWinnersOverridesIncrementalFlags(t *testing.T) {
	db := newTestDB(t)
	eventID := uuid.New()
	roundID := uuid.New()

	reg := seedContestant(t, db, eventID, roundID, 0) // skor seed 0
	// submit lewat jalur incremental → flag preview terpasang
	submit(t, db, eventID, &roundID, reg.RegistrationID, 77)

	winners, err := DeclareWinners(db, eventID, &roundID)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	require.Equal(t, 1, winners[0].Position)

	got := scoresInScope(t, db, eventID, &roundID)
	for _, s := range got {
		require.True(t, s.ScoreIsWinner)
		require.Equal(t, 1, *s.ScoreWinnerPosition)
	}
}

func TestDeclareWinnersEmptyScopeIsNoop(t *testing.T) {
	db := newTestDB(t)

	winners, err := DeclareWinners(db, uuid.New(), nil)
	require.NoError(t, err)
	require.Empty(t, winners)
}
