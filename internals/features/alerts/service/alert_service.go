// internals/features/alerts/service/alert_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	alertModel "lombaku_backend/internals/features/alerts/model"
	evModel "lombaku_backend/internals/features/events/model"
	regModel "lombaku_backend/internals/features/registrations/model"
)

const (
	// reminder dikirim saat event mulai tepat 3 hari lagi
	reminderLeadTime = 72 * time.Hour
	// alert identik (type, user, event) dalam jendela ini tidak dibuat ulang
	reminderDedupeWindow = 48 * time.Hour

	sweepBatchSize = 500
)

// RunDueSweep menandai alert yang sudah jatuh tempo sebagai sent.
// Pengiriman nyata dilakukan dispatcher eksternal; job ini cuma membalik flag.
// Gagal satu baris → dicatat dan dilewati, run tetap lanjut.
func RunDueSweep(ctx context.Context, db *gorm.DB, now time.Time) (int, error) {
	var due []alertModel.SystemAlertModel
	if err := db.WithContext(ctx).
		Where("alert_scheduled_for IS NOT NULL AND alert_scheduled_for <= ? AND alert_is_sent = ?", now, false).
		Limit(sweepBatchSize).
		Find(&due).Error; err != nil {
		return 0, err
	}

	marked := 0
	for i := range due {
		if err := db.WithContext(ctx).
			Model(&alertModel.SystemAlertModel{}).
			Where("alert_id = ? AND alert_is_sent = ?", due[i].AlertID, false).
			Update("alert_is_sent", true).Error; err != nil {
			log.Printf("[SWEEP ERROR] alert %s gagal ditandai: %v", due[i].AlertID, err)
			continue
		}
		marked++
	}
	return marked, nil
}

// RunReminderSweep membuat satu alert event_reminder untuk tiap pendaftaran
// confirmed pada event published yang mulai tepat 3 hari lagi (per hari
// kalender), kecuali alert identik sudah dibuat dalam 2 hari terakhir.
func RunReminderSweep(ctx context.Context, db *gorm.DB, now time.Time) (int, error) {
	dayStart := now.Add(reminderLeadTime).Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var events []evModel.EventModel
	if err := db.WithContext(ctx).
		Where("event_status = ?", evModel.EventStatusPublished).
		Where("event_start_time >= ? AND event_start_time < ?", dayStart, dayEnd).
		Find(&events).Error; err != nil {
		return 0, err
	}

	created := 0
	for i := range events {
		ev := &events[i]

		var regs []regModel.RegistrationModel
		if err := db.WithContext(ctx).
			Where("registration_event_id = ?", ev.EventID).
			Where("registration_status = ?", regModel.RegistrationStatusConfirmed).
			Find(&regs).Error; err != nil {
			log.Printf("[REMINDER ERROR] event %s: gagal ambil pendaftaran: %v", ev.EventID, err)
			continue
		}

		for j := range regs {
			n, err := createReminderIfMissing(ctx, db, ev, &regs[j], now)
			if err != nil {
				log.Printf("[REMINDER ERROR] registrasi %s: %v", regs[j].RegistrationID, err)
				continue
			}
			created += n
		}
	}
	return created, nil
}

func createReminderIfMissing(ctx context.Context, db *gorm.DB, ev *evModel.EventModel, reg *regModel.RegistrationModel, now time.Time) (int, error) {
	var dup int64
	if err := db.WithContext(ctx).
		Model(&alertModel.SystemAlertModel{}).
		Where("alert_type = ? AND alert_user_id = ? AND alert_event_id = ?",
			alertModel.AlertTypeEventReminder, reg.RegistrationUserID, ev.EventID).
		Where("alert_created_at > ?", now.Add(-reminderDedupeWindow)).
		Count(&dup).Error; err != nil {
		return 0, err
	}
	if dup > 0 {
		return 0, nil
	}

	alert := alertModel.SystemAlertModel{
		AlertUserID:       &reg.RegistrationUserID,
		AlertEventID:      &ev.EventID,
		AlertType:         alertModel.AlertTypeEventReminder,
		AlertTitle:        "Pengingat Event",
		AlertMessage:      fmt.Sprintf("%s dimulai 3 hari lagi. Sampai jumpa!", ev.EventName),
		AlertScheduledFor: &now,
	}
	if err := db.WithContext(ctx).Create(&alert).Error; err != nil {
		return 0, err
	}
	return 1, nil
}

// ListForUser: alert milik user, terbaru dulu.
func ListForUser(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]alertModel.SystemAlertModel, int64, error) {
	q := db.Model(&alertModel.SystemAlertModel{}).Where("alert_user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var alerts []alertModel.SystemAlertModel
	err := q.Order("alert_created_at DESC").Limit(limit).Offset(offset).Find(&alerts).Error
	return alerts, total, err
}

// MarkRead menandai alert milik user sebagai terbaca.
func MarkRead(db *gorm.DB, alertID, userID uuid.UUID) error {
	res := db.Model(&alertModel.SystemAlertModel{}).
		Where("alert_id = ? AND alert_user_id = ?", alertID, userID).
		Update("alert_is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
