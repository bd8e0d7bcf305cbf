// internals/features/events/service/publish_service.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"

	evModel "lombaku_backend/internals/features/events/model"
	helper "lombaku_backend/internals/helpers"
)

var (
	ErrEventNotFound  = errors.New("event tidak ditemukan")
	ErrEventCancelled = errors.New("event sudah dibatalkan")
)

// Ronde baku yang dibuat saat publish: offset dihitung dari event_start_time.
// Tiga tahap tetap: Prelims → Semi-Finals → Finals.
var defaultRoundPlan = []struct {
	Name        string
	Order       int
	StartOffset time.Duration
	Duration    time.Duration
}{
	{Name: "Prelims", Order: 1, StartOffset: 0, Duration: 4 * time.Hour},
	{Name: "Semi-Finals", Order: 2, StartOffset: 24 * time.Hour, Duration: 3 * time.Hour},
	{Name: "Finals", Order: 3, StartOffset: 48 * time.Hour, Duration: 2 * time.Hour},
}

// PublishEvent menset status published dan membuat tiga ronde baku
// jika event belum punya ronde sama sekali.
//
// Publish ulang (published→draft→published) tidak boleh menambah ronde:
// cek jumlah ronde dilakukan setelah baris event dikunci, jadi dua publish
// bersamaan hanya menghasilkan satu bootstrap; yang kalah jadi no-op.
func PublishEvent(db *gorm.DB, eventID uuid.UUID) (*evModel.EventModel, []evModel.RoundModel, error) {
	var ev evModel.EventModel
	var rounds []evModel.RoundModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.ForUpdate(tx).First(&ev, "event_id = ?", eventID).Error; err != nil {
			if helper.IsNotFound(err) {
				return ErrEventNotFound
			}
			return err
		}
		if ev.EventStatus == evModel.EventStatusCancelled {
			return ErrEventCancelled
		}

		if ev.EventStatus != evModel.EventStatusPublished {
			now := time.Now()
			ev.EventStatus = evModel.EventStatusPublished
			ev.EventPublishedAt = &now
			if err := tx.Model(&evModel.EventModel{}).
				Where("event_id = ?", ev.EventID).
				Updates(map[string]interface{}{
					"event_status":       ev.EventStatus,
					"event_published_at": ev.EventPublishedAt,
				}).Error; err != nil {
				return err
			}
		}

		// bootstrap hanya jika belum ada ronde sama sekali
		var n int64
		if err := tx.Model(&evModel.RoundModel{}).
			Where("round_event_id = ?", ev.EventID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			for _, p := range defaultRoundPlan {
				start := ev.EventStartTime.Add(p.StartOffset)
				end := start.Add(p.Duration)
				r := evModel.RoundModel{
					RoundEventID:   ev.EventID,
					RoundOrder:     p.Order,
					RoundName:      p.Name,
					RoundStartTime: start,
					RoundEndTime:   &end,
					RoundStatus:    evModel.RoundStatusScheduled,
				}
				if err := tx.Create(&r).Error; err != nil {
					return err
				}
			}
		}

		return tx.Where("round_event_id = ?", ev.EventID).
			Order("round_order ASC").
			Find(&rounds).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &ev, rounds, nil
}

// ListRounds mengembalikan ronde sebuah event terurut round_order.
func ListRounds(db *gorm.DB, eventID uuid.UUID) ([]evModel.RoundModel, error) {
	var rounds []evModel.RoundModel
	err := db.Where("round_event_id = ?", eventID).
		Order("round_order ASC").
		Find(&rounds).Error
	return rounds, err
}
