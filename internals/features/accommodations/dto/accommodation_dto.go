// internals/features/accommodations/dto/accommodation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	accModel "lombaku_backend/internals/features/accommodations/model"
)

/* ===================== REQUESTS ===================== */

type CreateAccommodationRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

func (r *CreateAccommodationRequest) ToModel() *accModel.AccommodationModel {
	return &accModel.AccommodationModel{
		AccommodationName:         r.Name,
		AccommodationCapacity:     r.Capacity,
		AccommodationAvailability: accModel.AccommodationAvailable,
	}
}

type UpdateAvailabilityRequest struct {
	Availability string `json:"availability" validate:"required,oneof=available unavailable maintenance"`
}

type RequestAccommodationRequest struct {
	RegistrationID *string   `json:"registration_id" validate:"omitempty,uuid4"`
	CheckIn        time.Time `json:"check_in" validate:"required"`
	CheckOut       time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
	PartySize      int       `json:"party_size" validate:"required,gt=0"`
}

func (r *RequestAccommodationRequest) ToModel(userID uuid.UUID) (*accModel.AccommodationRequestModel, error) {
	m := &accModel.AccommodationRequestModel{
		RequestUserID:    userID,
		RequestCheckIn:   r.CheckIn,
		RequestCheckOut:  r.CheckOut,
		RequestPartySize: r.PartySize,
	}
	if r.RegistrationID != nil {
		id, err := uuid.Parse(*r.RegistrationID)
		if err != nil {
			return nil, err
		}
		m.RequestRegistrationID = &id
	}
	return m, nil
}

/* ===================== RESPONSES ===================== */

type AccommodationResponse struct {
	AccommodationID string `json:"accommodation_id"`
	Name            string `json:"name"`
	Capacity        int    `json:"capacity"`
	Availability    string `json:"availability"`
}

func NewAccommodationResponse(m *accModel.AccommodationModel) *AccommodationResponse {
	return &AccommodationResponse{
		AccommodationID: m.AccommodationID.String(),
		Name:            m.AccommodationName,
		Capacity:        m.AccommodationCapacity,
		Availability:    string(m.AccommodationAvailability),
	}
}

type AccommodationRequestResponse struct {
	RequestID       string     `json:"request_id"`
	UserID          string     `json:"user_id"`
	RegistrationID  *string    `json:"registration_id,omitempty"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	PartySize       int        `json:"party_size"`
	Status          string     `json:"status"`
	AccommodationID *string    `json:"accommodation_id,omitempty"`
	DecisionReason  *string    `json:"decision_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewAccommodationRequestResponse(m *accModel.AccommodationRequestModel) *AccommodationRequestResponse {
	resp := &AccommodationRequestResponse{
		RequestID:      m.RequestID.String(),
		UserID:         m.RequestUserID.String(),
		CheckIn:        m.RequestCheckIn,
		CheckOut:       m.RequestCheckOut,
		PartySize:      m.RequestPartySize,
		Status:         string(m.RequestStatus),
		DecisionReason: m.RequestDecisionReason,
		CreatedAt:      m.RequestCreatedAt,
	}
	if m.RequestRegistrationID != nil {
		s := m.RequestRegistrationID.String()
		resp.RegistrationID = &s
	}
	if m.RequestAccommodationID != nil {
		s := m.RequestAccommodationID.String()
		resp.AccommodationID = &s
	}
	return resp
}
