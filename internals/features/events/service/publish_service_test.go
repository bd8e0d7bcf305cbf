package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	evModel "lombaku_backend/internals/features/events/model"
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

	require.NoError(t, db.AutoMigrate(&evModel.EventModel{}, &evModel.RoundModel{}))
	return db
}

func newDraftEvent(t *testing.T, db *gorm.DB, start time.Time) *evModel.EventModel {
	t.Helper()
	ev := &evModel.EventModel{
		EventName:      "Lomba Robotik Nasional",
		EventSlug:      "lomba-robotik-" + uuid.NewString()[:8],
		EventStartTime: start,
		EventCapacity:  100,
		EventStatus:    evModel.EventStatusDraft,
	}
	require.NoError(t, db.Create(ev).Error)
	return ev
}

func TestPublishEventBootstrapsThreeRounds(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	ev := newDraftEvent(t, db, start)

	got, rounds, err := PublishEvent(db, ev.EventID)
	require.NoError(t, err)
	require.Equal(t, evModel.EventStatusPublished, got.EventStatus)
	require.NotNil(t, got.EventPublishedAt)

	require.Len(t, rounds, 3)
	require.Equal(t, []int{1, 2, 3}, []int{rounds[0].RoundOrder, rounds[1].RoundOrder, rounds[2].RoundOrder})
	require.Equal(t, "Prelims", rounds[0].RoundName)
	require.Equal(t, "Semi-Finals", rounds[1].RoundName)
	require.Equal(t, "Finals", rounds[2].RoundName)

	// jadwal ronde diturunkan dari waktu mulai event
	require.WithinDuration(t, start, rounds[0].RoundStartTime, time.Second)
	require.WithinDuration(t, start.Add(24*time.Hour), rounds[1].RoundStartTime, time.Second)
	require.WithinDuration(t, start.Add(48*time.Hour), rounds[2].RoundStartTime, time.Second)

	for _, r := range rounds {
		require.Equal(t, evModel.RoundStatusScheduled, r.RoundStatus)
	}
}

func TestPublishEventTwiceNeverDuplicatesRounds(t *testing.T) {
	db := newTestDB(t)
	ev := newDraftEvent(t, db, time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC))

	_, _, err := PublishEvent(db, ev.EventID)
	require.NoError(t, err)

	// publish ulang (termasuk setelah kembali ke draft) → no-op untuk ronde
	require.NoError(t, db.Model(&evModel.EventModel{}).
		Where("event_id = ?", ev.EventID).
		Update("event_status", evModel.EventStatusDraft).Error)

	_, rounds, err := PublishEvent(db, ev.EventID)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	var total int64
	require.NoError(t, db.Model(&evModel.RoundModel{}).
		Where("round_event_id = ?", ev.EventID).Count(&total).Error)
	require.EqualValues(t, 3, total)
}

func TestPublishEventNotFound(t *testing.T) {
	db := newTestDB(t)
	_, _, err := PublishEvent(db, uuid.New())
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestPublishCancelledEventRejected(t *testing.T) {
	db := newTestDB(t)
	ev := newDraftEvent(t, db, time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, db.Model(&evModel.EventModel{}).
		Where("event_id = ?", ev.EventID).
		Update("event_status", evModel.EventStatusCancelled).Error)

	_, _, err := PublishEvent(db, ev.EventID)
	require.ErrorIs(t, err, ErrEventCancelled)

	var total int64
	require.NoError(t, db.Model(&evModel.RoundModel{}).Count(&total).Error)
	require.EqualValues(t, 0, total)
}
