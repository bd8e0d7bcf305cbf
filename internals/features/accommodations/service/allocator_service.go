// internals/features/accommodations/service/allocator_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	accModel "lombaku_backend/internals/features/accommodations/model"
	helper "lombaku_backend/internals/helpers"
)

var (
	ErrBadDateRange      = errors.New("rentang tanggal tidak valid")
	ErrBadPartySize      = errors.New("jumlah rombongan tidak valid")
	ErrRequestNotFound   = errors.New("permintaan tidak ditemukan")
	ErrRequestNotPending = errors.New("permintaan sudah diputuskan")
)

const reasonNoCandidate = "Tidak ada penginapan dengan kapasitas cukup pada tanggal tersebut"

// RequestAccommodation menyimpan permintaan lalu langsung mengalokasikan:
// kandidat = kapasitas ≥ rombongan dan tidak unavailable, dikurangi yang punya
// permintaan approved dengan tanggal bentrok; sisanya dipilih best-fit
// (kapasitas terkecil), seri dipecah dengan accommodation_id terkecil.
//
// Baris kandidat dikunci FOR UPDATE dulu sebelum cek bentrok, supaya dua
// permintaan bersamaan untuk tanggal yang sama tersusun berurutan dan tidak
// dua-duanya lolos cek (check-then-act race).
func RequestAccommodation(db *gorm.DB, req *accModel.AccommodationRequestModel) (*accModel.AccommodationRequestModel, error) {
	if !req.RequestCheckIn.Before(req.RequestCheckOut) {
		return nil, ErrBadDateRange
	}
	if req.RequestPartySize <= 0 {
		return nil, ErrBadPartySize
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		req.RequestStatus = accModel.RequestPending
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		return allocate(tx, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// allocate memutuskan approved/rejected untuk satu permintaan pending.
func allocate(tx *gorm.DB, req *accModel.AccommodationRequestModel) error {
	var candidates []accModel.AccommodationModel
	if err := helper.ForUpdate(tx).
		Where("accommodation_availability <> ?", accModel.AccommodationUnavailable).
		Where("accommodation_capacity >= ?", req.RequestPartySize).
		Order("accommodation_capacity ASC, accommodation_id ASC").
		Find(&candidates).Error; err != nil {
		return err
	}

	for i := range candidates {
		var clash int64
		// overlap: existing_in < new_out AND existing_out > new_in
		if err := tx.Model(&accModel.AccommodationRequestModel{}).
			Where("request_accommodation_id = ?", candidates[i].AccommodationID).
			Where("request_status = ?", accModel.RequestApproved).
			Where("request_check_in < ? AND request_check_out > ?", req.RequestCheckOut, req.RequestCheckIn).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			continue
		}

		req.RequestStatus = accModel.RequestApproved
		req.RequestAccommodationID = &candidates[i].AccommodationID
		req.RequestDecisionReason = nil
		return tx.Model(&accModel.AccommodationRequestModel{}).
			Where("request_id = ?", req.RequestID).
			Updates(map[string]interface{}{
				"request_status":           req.RequestStatus,
				"request_accommodation_id": req.RequestAccommodationID,
				"request_decision_reason":  nil,
			}).Error
	}

	reason := reasonNoCandidate
	req.RequestStatus = accModel.RequestRejected
	req.RequestDecisionReason = &reason
	return tx.Model(&accModel.AccommodationRequestModel{}).
		Where("request_id = ?", req.RequestID).
		Updates(map[string]interface{}{
			"request_status":          req.RequestStatus,
			"request_decision_reason": reason,
		}).Error
}

// CancelRequest: pembatalan adalah transisi status, baris tidak dihapus.
func CancelRequest(db *gorm.DB, requestID, userID uuid.UUID) (*accModel.AccommodationRequestModel, error) {
	var req accModel.AccommodationRequestModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.ForUpdate(tx).
			First(&req, "request_id = ? AND request_user_id = ?", requestID, userID).Error; err != nil {
			if helper.IsNotFound(err) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.RequestStatus != accModel.RequestPending && req.RequestStatus != accModel.RequestApproved {
			return ErrRequestNotPending
		}
		req.RequestStatus = accModel.RequestCancelled
		return tx.Model(&accModel.AccommodationRequestModel{}).
			Where("request_id = ?", req.RequestID).
			Update("request_status", accModel.RequestCancelled).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests untuk dashboard user.
func ListRequests(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]accModel.AccommodationRequestModel, int64, error) {
	q := db.Model(&accModel.AccommodationRequestModel{}).Where("request_user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reqs []accModel.AccommodationRequestModel
	err := q.Order("request_created_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error
	return reqs, total, err
}
