// internals/features/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	payModel "lombaku_backend/internals/features/payments/model"
)

/* ===================== REQUESTS ===================== */

type CreatePaymentRequest struct {
	Amount         int64   `json:"amount" validate:"required,gt=0"`
	RegistrationID *string `json:"registration_id" validate:"omitempty,uuid4"`
	ContractID     *string `json:"contract_id" validate:"omitempty,uuid4"`
	Method         *string `json:"method" validate:"omitempty,max=40"`

	// untuk Snap token (opsional)
	PayerName  *string `json:"payer_name" validate:"omitempty,max=100"`
	PayerEmail *string `json:"payer_email" validate:"omitempty,email"`
}

func (r *CreatePaymentRequest) ToModel() (*payModel.PaymentModel, error) {
	m := &payModel.PaymentModel{
		PaymentAmount: r.Amount,
		PaymentMethod: r.Method,
	}
	if r.RegistrationID != nil {
		id, err := uuid.Parse(*r.RegistrationID)
		if err != nil {
			return nil, err
		}
		m.PaymentRegistrationID = &id
	}
	if r.ContractID != nil {
		id, err := uuid.Parse(*r.ContractID)
		if err != nil {
			return nil, err
		}
		m.PaymentContractID = &id
	}
	return m, nil
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed failed refunded"`
}

/* ===================== RESPONSES ===================== */

type PaymentResponse struct {
	PaymentID      string     `json:"payment_id"`
	OrderID        string     `json:"order_id"`
	Amount         int64      `json:"amount"`
	Status         string     `json:"status"`
	RegistrationID *string    `json:"registration_id,omitempty"`
	ContractID     *string    `json:"contract_id,omitempty"`
	Method         *string    `json:"method,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`

	// Snap (hanya saat create dengan Midtrans aktif)
	SnapToken   *string `json:"snap_token,omitempty"`
	RedirectURL *string `json:"redirect_url,omitempty"`
}

func NewPaymentResponse(m *payModel.PaymentModel) *PaymentResponse {
	resp := &PaymentResponse{
		PaymentID: m.PaymentID.String(),
		OrderID:   m.PaymentOrderID,
		Amount:    m.PaymentAmount,
		Status:    string(m.PaymentStatus),
		Method:    m.PaymentMethod,
		PaidAt:    m.PaymentPaidAt,
		CreatedAt: m.PaymentCreatedAt,
	}
	if m.PaymentRegistrationID != nil {
		s := m.PaymentRegistrationID.String()
		resp.RegistrationID = &s
	}
	if m.PaymentContractID != nil {
		s := m.PaymentContractID.String()
		resp.ContractID = &s
	}
	return resp
}
