package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	accModel "lombaku_backend/internals/features/accommodations/model"
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
		&accModel.AccommodationModel{}, &accModel.AccommodationRequestModel{},
	))
	return db
}

func newAccommodation(t *testing.T, db *gorm.DB, name string, capacity int, avail accModel.AccommodationAvailability) *accModel.AccommodationModel {
	t.Helper()
	m := &accModel.AccommodationModel{
		AccommodationName:         name,
		AccommodationCapacity:     capacity,
		AccommodationAvailability: avail,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

func request(userID uuid.UUID, in, out time.Time, party int) *accModel.AccommodationRequestModel {
	return &accModel.AccommodationRequestModel{
		RequestUserID:    userID,
		RequestCheckIn:   in,
		RequestCheckOut:  out,
		RequestPartySize: party,
	}
}

func TestAllocatorPicksBestFit(t *testing.T) {
	db := newTestDB(t)
	newAccommodation(t, db, "Aula Besar", 200, accModel.AccommodationAvailable)
	small := newAccommodation(t, db, "Wisma Kecil", 10, accModel.AccommodationAvailable)

	got, err := RequestAccommodation(db, request(uuid.New(), day(1), day(3), 4))
	require.NoError(t, err)
	require.Equal(t, accModel.RequestApproved, got.RequestStatus)
	require.NotNil(t, got.RequestAccommodationID)
	require.Equal(t, small.AccommodationID, *got.RequestAccommodationID)
}

// Skenario GuestHouse: sudah ada booking approved 15–18 Mei, permintaan baru
// 16–17 Mei harus ditolak GuestHouse dan dialihkan ke alternatif terkecil
// berikutnya yang tersedia.
func TestAllocatorRoutesAroundOverlap(t *testing.T) {
	db := newTestDB(t)
	guestHouse := newAccommodation(t, db, "GuestHouse", 50, accModel.AccommodationAvailable)
	lodge := newAccommodation(t, db, "Lodge", 80, accModel.AccommodationAvailable)

	first, err := RequestAccommodation(db, request(uuid.New(), day(15), day(18), 2))
	require.NoError(t, err)
	require.Equal(t, guestHouse.AccommodationID, *first.RequestAccommodationID)

	second, err := RequestAccommodation(db, request(uuid.New(), day(16), day(17), 2))
	require.NoError(t, err)
	require.Equal(t, accModel.RequestApproved, second.RequestStatus)
	require.Equal(t, lodge.AccommodationID, *second.RequestAccommodationID)
}

// Checkout eksklusif: booking yang bersambungan (out == in berikutnya)
// bukan bentrok.
func TestAllocatorBackToBackIsNotOverlap(t *testing.T) {
	db := newTestDB(t)
	gh := newAccommodation(t, db, "GuestHouse", 50, accModel.AccommodationAvailable)

	first, err := RequestAccommodation(db, request(uuid.New(), day(10), day(12), 2))
	require.NoError(t, err)
	require.Equal(t, gh.AccommodationID, *first.RequestAccommodationID)

	second, err := RequestAccommodation(db, request(uuid.New(), day(12), day(14), 2))
	require.NoError(t, err)
	require.Equal(t, accModel.RequestApproved, second.RequestStatus)
	require.Equal(t, gh.AccommodationID, *second.RequestAccommodationID)
}

func TestAllocatorRejectsWhenNoCandidate(t *testing.T) {
	db := newTestDB(t)
	newAccommodation(t, db, "Wisma Kecil", 4, accModel.AccommodationAvailable)
	newAccommodation(t, db, "Wisma Tutup", 100, accModel.AccommodationUnavailable)

	got, err := RequestAccommodation(db, request(uuid.New(), day(1), day(2), 10))
	require.NoError(t, err)
	require.Equal(t, accModel.RequestRejected, got.RequestStatus)
	require.Nil(t, got.RequestAccommodationID)
	require.NotNil(t, got.RequestDecisionReason)
}

// Maintenance bukan unavailable → tetap kandidat.
func TestAllocatorMaintenanceStillCandidate(t *testing.T) {
	db := newTestDB(t)
	m := newAccommodation(t, db, "Wisma Renovasi", 20, accModel.AccommodationMaintenance)

	got, err := RequestAccommodation(db, request(uuid.New(), day(1), day(2), 5))
	require.NoError(t, err)
	require.Equal(t, accModel.RequestApproved, got.RequestStatus)
	require.Equal(t, m.AccommodationID, *got.RequestAccommodationID)
}

func TestAllocatorValidatesInput(t *testing.T) {
	db := newTestDB(t)

	_, err := RequestAccommodation(db, request(uuid.New(), day(3), day(3), 2))
	require.ErrorIs(t, err, ErrBadDateRange)

	_, err = RequestAccommodation(db, request(uuid.New(), day(3), day(4), 0))
	require.ErrorIs(t, err, ErrBadPartySize)
}

func TestCancelRequestIsStatusTransition(t *testing.T) {
	db := newTestDB(t)
	newAccommodation(t, db, "Wisma", 10, accModel.AccommodationAvailable)
	userID := uuid.New()

	got, err := RequestAccommodation(db, request(userID, day(1), day(3), 2))
	require.NoError(t, err)

	cancelled, err := CancelRequest(db, got.RequestID, userID)
	require.NoError(t, err)
	require.Equal(t, accModel.RequestCancelled, cancelled.RequestStatus)

	// baris tidak dihapus
	var total int64
	require.NoError(t, db.Model(&accModel.AccommodationRequestModel{}).Count(&total).Error)
	require.EqualValues(t, 1, total)

	_, err = CancelRequest(db, got.RequestID, userID)
	require.ErrorIs(t, err, ErrRequestNotPending)
}
