// internals/features/registrations/dto/registration_dto.go
package dto

import (
	"time"

	regModel "lombaku_backend/internals/features/registrations/model"
)

/* ===================== REQUESTS ===================== */

type CreateRegistrationRequest struct {
	EventID  string  `json:"event_id" validate:"required,uuid4"`
	TeamName *string `json:"team_name" validate:"omitempty,min=2,max=100"`
}

/* ===================== RESPONSES ===================== */

type RegistrationResponse struct {
	RegistrationID string     `json:"registration_id"`
	EventID        string     `json:"event_id"`
	UserID         string     `json:"user_id"`
	TeamName       *string    `json:"team_name,omitempty"`
	Status         string     `json:"status"`
	PaymentStatus  string     `json:"payment_status"`
	CreatedAt      time.Time  `json:"created_at"`

	// jumlah ronde yang otomatis diikuti saat mendaftar
	RoundsJoined *int `json:"rounds_joined,omitempty"`
}

func NewRegistrationResponse(m *regModel.RegistrationModel, roundsJoined *int) *RegistrationResponse {
	return &RegistrationResponse{
		RegistrationID: m.RegistrationID.String(),
		EventID:        m.RegistrationEventID.String(),
		UserID:         m.RegistrationUserID.String(),
		TeamName:       m.RegistrationTeamName,
		Status:         string(m.RegistrationStatus),
		PaymentStatus:  string(m.RegistrationPaymentStatus),
		CreatedAt:      m.RegistrationCreatedAt,
		RoundsJoined:   roundsJoined,
	}
}
