// internals/features/alerts/scheduler/alert_scheduler.go
package scheduler

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	alertService "lombaku_backend/internals/features/alerts/service"
)

const (
	dueSweepInterval = 1 * time.Hour
	reminderInterval = 24 * time.Hour

	dueSweepTimeout = 2 * time.Minute
	reminderTimeout = 5 * time.Minute
)

// AlertScheduler menjalankan due-sweep (tiap jam) dan reminder generator
// (tiap hari). Tiap job punya guard skip-if-running: run yang masih jalan
// tidak boleh ditimpa run berikutnya, dan tiap run dibatasi timeout.
type AlertScheduler struct {
	DB *gorm.DB

	sweepRunning    atomic.Bool
	reminderRunning atomic.Bool
}

func StartAlertScheduler(db *gorm.DB) *AlertScheduler {
	s := &AlertScheduler{DB: db}

	go s.loop(dueSweepInterval, s.runDueSweep)
	go s.loop(reminderInterval, s.runReminderSweep)

	return s
}

func (s *AlertScheduler) loop(interval time.Duration, job func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	job() // sekali saat start, lalu per interval
	for range ticker.C {
		job()
	}
}

func (s *AlertScheduler) runDueSweep() {
	if !s.sweepRunning.CompareAndSwap(false, true) {
		log.Println("[SWEEP] run sebelumnya masih jalan, skip")
		return
	}
	defer s.sweepRunning.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), dueSweepTimeout)
	defer cancel()

	n, err := alertService.RunDueSweep(ctx, s.DB, time.Now())
	if err != nil {
		log.Printf("[SWEEP ERROR] %v", err)
		return
	}
	if n > 0 {
		log.Printf("[SWEEP] %d alert ditandai sent", n)
	}
}

func (s *AlertScheduler) runReminderSweep() {
	if !s.reminderRunning.CompareAndSwap(false, true) {
		log.Println("[REMINDER] run sebelumnya masih jalan, skip")
		return
	}
	defer s.reminderRunning.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
	defer cancel()

	n, err := alertService.RunReminderSweep(ctx, s.DB, time.Now())
	if err != nil {
		log.Printf("[REMINDER ERROR] %v", err)
		return
	}
	if n > 0 {
		log.Printf("[REMINDER] %d reminder dibuat", n)
	}
}
