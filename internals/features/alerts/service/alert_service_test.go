package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	alertModel "lombaku_backend/internals/features/alerts/model"
	evModel "lombaku_backend/internals/features/events/model"
	regModel "lombaku_backend/internals/features/registrations/model"
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
		&evModel.EventModel{}, &regModel.RegistrationModel{},
		&alertModel.SystemAlertModel{},
	))
	return db
}

func newAlert(t *testing.T, db *gorm.DB, scheduledFor *time.Time, sent bool) *alertModel.SystemAlertModel {
	t.Helper()
	userID := uuid.New()
	a := &alertModel.SystemAlertModel{
		AlertUserID:       &userID,
		AlertType:         alertModel.AlertTypeEventReminder,
		AlertTitle:        "Pengingat Event",
		AlertMessage:      "Tes",
		AlertScheduledFor: scheduledFor,
		AlertIsSent:       sent,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func newPublishedEvent(t *testing.T, db *gorm.DB, slug string, start time.Time) *evModel.EventModel {
	t.Helper()
	ev := &evModel.EventModel{
		EventName:      "Lomba " + slug,
		EventSlug:      slug,
		EventStartTime: start,
		EventStatus:    evModel.EventStatusPublished,
	}
	require.NoError(t, db.Create(ev).Error)
	return ev
}

func newConfirmedRegistration(t *testing.T, db *gorm.DB, eventID uuid.UUID) *regModel.RegistrationModel {
	t.Helper()
	reg := &regModel.RegistrationModel{
		RegistrationEventID: eventID,
		RegistrationUserID:  uuid.New(),
		RegistrationStatus:  regModel.RegistrationStatusConfirmed,
	}
	require.NoError(t, db.Create(reg).Error)
	return reg
}

func TestDueSweepMarksOnlyDueUnsent(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	due := newAlert(t, db, &past, false)
	alreadySent := newAlert(t, db, &past, true)
	notYet := newAlert(t, db, &future, false)
	unscheduled := newAlert(t, db, nil, false)

	marked, err := RunDueSweep(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, 1, marked)

	isSent := func(id uuid.UUID) bool {
		var a alertModel.SystemAlertModel
		require.NoError(t, db.First(&a, "alert_id = ?", id).Error)
		return a.AlertIsSent
	}
	require.True(t, isSent(due.AlertID))
	require.True(t, isSent(alreadySent.AlertID))
	require.False(t, isSent(notYet.AlertID))
	require.False(t, isSent(unscheduled.AlertID))
}

func TestDueSweepSecondRunIsNoop(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	past := now.Add(-time.Hour)
	newAlert(t, db, &past, false)

	marked, err := RunDueSweep(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, 1, marked)

	marked, err = RunDueSweep(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, 0, marked)
}

func TestReminderSweepTargetsEventsInThreeDays(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	// hari kalender yang sama dengan yang dihitung sweep
	dayStart := now.Add(reminderLeadTime).Truncate(24 * time.Hour)

	inThree := newPublishedEvent(t, db, "h-minus-3", dayStart.Add(12*time.Hour))
	inTwo := newPublishedEvent(t, db, "h-minus-2", now.Add(48*time.Hour))

	reg := newConfirmedRegistration(t, db, inThree.EventID)
	newConfirmedRegistration(t, db, inTwo.EventID)

	created, err := RunReminderSweep(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	var alerts []alertModel.SystemAlertModel
	require.NoError(t, db.Find(&alerts, "alert_type = ?", alertModel.AlertTypeEventReminder).Error)
	require.Len(t, alerts, 1)
	require.Equal(t, reg.RegistrationUserID, *alerts[0].AlertUserID)
	require.Equal(t, inThree.EventID, *alerts[0].AlertEventID)
}

func TestReminderSweepSkipsUnconfirmedAndUnpublished(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	start := now.Add(reminderLeadTime).Truncate(24 * time.Hour).Add(12 * time.Hour)

	published := newPublishedEvent(t, db, "published", start)
	pendingReg := &regModel.RegistrationModel{
		RegistrationEventID: published.EventID,
		RegistrationUserID:  uuid.New(),
		RegistrationStatus:  regModel.RegistrationStatusPending,
	}
	require.NoError(t, db.Create(pendingReg).Error)

	draft := &evModel.EventModel{
		EventName:      "Lomba Draft",
		EventSlug:      "draft",
		EventStartTime: start,
		EventStatus:    evModel.EventStatusDraft,
	}
	require.NoError(t, db.Create(draft).Error)
	newConfirmedRegistration(t, db, draft.EventID)

	created, err := RunReminderSweep(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, 0, created)
}

// Run harian yang tumpang tindih tidak boleh menggandakan reminder.
func TestReminderSweepDedupesWithinWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	ev := newPublishedEvent(t, db, "dedupe", now.Add(reminderLeadTime).Truncate(24*time.Hour).Add(12*time.Hour))
	newConfirmedRegistration(t, db, ev.EventID)

	created, err := RunReminderSweep(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	created, err = RunReminderSweep(context.Background(), db, now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, created)

	var total int64
	require.NoError(t, db.Model(&alertModel.SystemAlertModel{}).
		Where("alert_type = ?", alertModel.AlertTypeEventReminder).
		Count(&total).Error)
	require.EqualValues(t, 1, total)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	a := newAlert(t, db, &now, false)

	require.ErrorIs(t, MarkRead(db, a.AlertID, uuid.New()), gorm.ErrRecordNotFound)
	require.NoError(t, MarkRead(db, a.AlertID, *a.AlertUserID))

	var got alertModel.SystemAlertModel
	require.NoError(t, db.First(&got, "alert_id = ?", a.AlertID).Error)
	require.True(t, got.AlertIsRead)
}
