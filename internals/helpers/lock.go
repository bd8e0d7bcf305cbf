package helper

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate menambahkan SELECT ... FOR UPDATE pada Postgres.
// Di SQLite (test) clause ini tidak didukung; writer di sana memang tunggal.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// AdvisoryXactLock serialisasi per-scope (mis. event+round saat rekap skor).
// Lock lepas otomatis saat transaksi commit/rollback.
func AdvisoryXactLock(tx *gorm.DB, key string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}
