// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	payModel "lombaku_backend/internals/features/payments/model"
)

// HandlePaymentStatusWebhook memetakan transaction_status Midtrans ke
// transisi status payment internal lalu menjalankan rekonsiliasi.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var target payModel.PaymentStatus
	switch status {
	case "capture", "settlement":
		target = payModel.PaymentStatusCompleted
	case "expire", "cancel", "deny":
		target = payModel.PaymentStatusFailed
	case "refund", "partial_refund":
		target = payModel.PaymentStatusRefunded
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if _, err := ApplyPaymentStatus(db, orderID, target); err != nil {
		log.Printf("[ERROR] Rekonsiliasi payment %s gagal: %v", orderID, err)
		return err
	}
	return nil
}
