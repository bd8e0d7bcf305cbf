// internals/features/events/dto/event_dto.go
package dto

import (
	"time"

	evModel "lombaku_backend/internals/features/events/model"
)

/* ===================== REQUESTS ===================== */

type CreateEventRequest struct {
	EventName        string     `json:"event_name" validate:"required,min=3,max=150"`
	EventSlug        string     `json:"event_slug" validate:"required,min=3,max=120"`
	EventDescription *string    `json:"event_description" validate:"omitempty"`
	EventTags        []string   `json:"event_tags" validate:"omitempty,dive,min=1,max=40"`
	EventVenue       *string    `json:"event_venue" validate:"omitempty,max=150"`
	EventStartTime   time.Time  `json:"event_start_time" validate:"required"`
	EventEndTime     *time.Time `json:"event_end_time" validate:"omitempty"`
	EventCapacity    int        `json:"event_capacity" validate:"required,gt=0"`
}

func (r *CreateEventRequest) ToModel() *evModel.EventModel {
	return &evModel.EventModel{
		EventName:        r.EventName,
		EventSlug:        r.EventSlug,
		EventDescription: r.EventDescription,
		EventTags:        r.EventTags,
		EventVenue:       r.EventVenue,
		EventStartTime:   r.EventStartTime,
		EventEndTime:     r.EventEndTime,
		EventCapacity:    r.EventCapacity,
		EventStatus:      evModel.EventStatusDraft,
	}
}

type UpdateEventRequest struct {
	EventName        *string    `json:"event_name" validate:"omitempty,min=3,max=150"`
	EventDescription *string    `json:"event_description" validate:"omitempty"`
	EventTags        []string   `json:"event_tags" validate:"omitempty,dive,min=1,max=40"`
	EventVenue       *string    `json:"event_venue" validate:"omitempty,max=150"`
	EventStartTime   *time.Time `json:"event_start_time" validate:"omitempty"`
	EventEndTime     *time.Time `json:"event_end_time" validate:"omitempty"`
	EventCapacity    *int       `json:"event_capacity" validate:"omitempty,gt=0"`
}

func (r *UpdateEventRequest) ApplyToModel(m *evModel.EventModel) {
	if r.EventName != nil {
		m.EventName = *r.EventName
	}
	if r.EventDescription != nil {
		m.EventDescription = r.EventDescription
	}
	if r.EventTags != nil {
		m.EventTags = r.EventTags
	}
	if r.EventVenue != nil {
		m.EventVenue = r.EventVenue
	}
	if r.EventStartTime != nil {
		m.EventStartTime = *r.EventStartTime
	}
	if r.EventEndTime != nil {
		m.EventEndTime = r.EventEndTime
	}
	if r.EventCapacity != nil {
		m.EventCapacity = *r.EventCapacity
	}
}

/* ===================== RESPONSES ===================== */

type EventResponse struct {
	EventID          string     `json:"event_id"`
	EventName        string     `json:"event_name"`
	EventSlug        string     `json:"event_slug"`
	EventDescription *string    `json:"event_description,omitempty"`
	EventTags        []string   `json:"event_tags,omitempty"`
	EventVenue       *string    `json:"event_venue,omitempty"`
	EventStartTime   time.Time  `json:"event_start_time"`
	EventEndTime     *time.Time `json:"event_end_time,omitempty"`
	EventCapacity    int        `json:"event_capacity"`
	EventStatus      string     `json:"event_status"`
	EventPublishedAt *time.Time `json:"event_published_at,omitempty"`
}

func NewEventResponse(m *evModel.EventModel) *EventResponse {
	return &EventResponse{
		EventID:          m.EventID.String(),
		EventName:        m.EventName,
		EventSlug:        m.EventSlug,
		EventDescription: m.EventDescription,
		EventTags:        m.EventTags,
		EventVenue:       m.EventVenue,
		EventStartTime:   m.EventStartTime,
		EventEndTime:     m.EventEndTime,
		EventCapacity:    m.EventCapacity,
		EventStatus:      string(m.EventStatus),
		EventPublishedAt: m.EventPublishedAt,
	}
}

type RoundResponse struct {
	RoundID        string     `json:"round_id"`
	RoundEventID   string     `json:"round_event_id"`
	RoundOrder     int        `json:"round_order"`
	RoundName      string     `json:"round_name"`
	RoundStartTime time.Time  `json:"round_start_time"`
	RoundEndTime   *time.Time `json:"round_end_time,omitempty"`
	RoundStatus    string     `json:"round_status"`
}

func NewRoundResponse(m *evModel.RoundModel) *RoundResponse {
	return &RoundResponse{
		RoundID:        m.RoundID.String(),
		RoundEventID:   m.RoundEventID.String(),
		RoundOrder:     m.RoundOrder,
		RoundName:      m.RoundName,
		RoundStartTime: m.RoundStartTime,
		RoundEndTime:   m.RoundEndTime,
		RoundStatus:    string(m.RoundStatus),
	}
}

func NewRoundResponses(ms []evModel.RoundModel) []RoundResponse {
	out := make([]RoundResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewRoundResponse(&ms[i]))
	}
	return out
}

type PublishEventResponse struct {
	Event  *EventResponse  `json:"event"`
	Rounds []RoundResponse `json:"rounds"`
}
