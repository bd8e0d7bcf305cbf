// internals/features/payments/service/reconciler_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	payModel "lombaku_backend/internals/features/payments/model"
	regModel "lombaku_backend/internals/features/registrations/model"
	helper "lombaku_backend/internals/helpers"
)

var (
	ErrPaymentTarget   = errors.New("payment harus menunjuk tepat satu target")
	ErrPaymentAmount   = errors.New("nominal pembayaran tidak valid")
	ErrPaymentNotFound = errors.New("payment tidak ditemukan")
	ErrBadTransition   = errors.New("transisi status pembayaran tidak diizinkan")
	ErrTargetNotFound  = errors.New("target pembayaran tidak ditemukan")
)

// CreatePayment memvalidasi invariant XOR target sebelum simpan:
// dua target atau nol target ditolak, tidak pernah sampai ke DB.
func CreatePayment(db *gorm.DB, m *payModel.PaymentModel) error {
	if (m.PaymentRegistrationID == nil) == (m.PaymentContractID == nil) {
		return ErrPaymentTarget
	}
	if m.PaymentAmount <= 0 {
		return ErrPaymentAmount
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// target harus ada
		if m.PaymentRegistrationID != nil {
			var n int64
			if err := tx.Model(&regModel.RegistrationModel{}).
				Where("registration_id = ?", *m.PaymentRegistrationID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrTargetNotFound
			}
		} else {
			var n int64
			if err := tx.Model(&payModel.ContractModel{}).
				Where("contract_id = ?", *m.PaymentContractID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrTargetNotFound
			}
		}

		m.PaymentStatus = payModel.PaymentStatusPending
		if m.PaymentOrderID == "" {
			m.PaymentOrderID = fmt.Sprintf("LMB-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
		}
		return tx.Create(m).Error
	})
}

// ApplyPaymentStatus menjalankan rekonsiliasi: saat payment ber-target
// pendaftaran berubah ke completed dan pendaftarannya masih pending /
// waitlisted, pendaftaran dikonfirmasi + ditandai paid dalam transaksi yang
// sama. Observasi completed yang berulang tidak mengubah apa-apa lagi.
func ApplyPaymentStatus(db *gorm.DB, orderID string, newStatus payModel.PaymentStatus) (*payModel.PaymentModel, error) {
	var pay payModel.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.ForUpdate(tx).First(&pay, "payment_order_id = ?", orderID).Error; err != nil {
			if helper.IsNotFound(err) {
				return ErrPaymentNotFound
			}
			return err
		}

		// idempoten: status sama → no-op
		if pay.PaymentStatus == newStatus {
			return nil
		}
		if !allowedTransition(pay.PaymentStatus, newStatus) {
			return ErrBadTransition
		}

		updates := map[string]interface{}{"payment_status": newStatus}
		if newStatus == payModel.PaymentStatusCompleted {
			now := time.Now()
			pay.PaymentPaidAt = &now
			updates["payment_paid_at"] = &now
		}
		if err := tx.Model(&payModel.PaymentModel{}).
			Where("payment_id = ?", pay.PaymentID).
			Updates(updates).Error; err != nil {
			return err
		}
		pay.PaymentStatus = newStatus

		if newStatus == payModel.PaymentStatusCompleted && pay.PaymentRegistrationID != nil {
			return confirmRegistration(tx, *pay.PaymentRegistrationID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pay, nil
}

func allowedTransition(from, to payModel.PaymentStatus) bool {
	switch from {
	case payModel.PaymentStatusPending:
		return to == payModel.PaymentStatusCompleted || to == payModel.PaymentStatusFailed
	case payModel.PaymentStatusCompleted:
		return to == payModel.PaymentStatusRefunded
	default:
		return false
	}
}

// confirmRegistration: hanya pendaftaran pending/waitlisted yang dinaikkan;
// status lain (cancelled, sudah confirmed) dibiarkan.
func confirmRegistration(tx *gorm.DB, registrationID uuid.UUID) error {
	return tx.Model(&regModel.RegistrationModel{}).
		Where("registration_id = ?", registrationID).
		Where("registration_status IN ?", []regModel.RegistrationStatus{
			regModel.RegistrationStatusPending,
			regModel.RegistrationStatusWaitlist,
		}).
		Updates(map[string]interface{}{
			"registration_status":         regModel.RegistrationStatusConfirmed,
			"registration_payment_status": regModel.RegPaymentPaid,
		}).Error
}
