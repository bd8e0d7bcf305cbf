// internals/features/alerts/dto/alert_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	alertModel "lombaku_backend/internals/features/alerts/model"
)

type AlertResponse struct {
	AlertID      string         `json:"alert_id"`
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Message      string         `json:"message"`
	Payload      datatypes.JSON `json:"payload,omitempty"`
	EventID      *string        `json:"event_id,omitempty"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	IsSent       bool           `json:"is_sent"`
	IsRead       bool           `json:"is_read"`
	CreatedAt    time.Time      `json:"created_at"`
}

func NewAlertResponse(m *alertModel.SystemAlertModel) *AlertResponse {
	resp := &AlertResponse{
		AlertID:      m.AlertID.String(),
		Type:         m.AlertType,
		Title:        m.AlertTitle,
		Message:      m.AlertMessage,
		Payload:      m.AlertPayload,
		ScheduledFor: m.AlertScheduledFor,
		IsSent:       m.AlertIsSent,
		IsRead:       m.AlertIsRead,
		CreatedAt:    m.AlertCreatedAt,
	}
	if m.AlertEventID != nil {
		s := m.AlertEventID.String()
		resp.EventID = &s
	}
	return resp
}

func NewAlertResponses(ms []alertModel.SystemAlertModel) []AlertResponse {
	out := make([]AlertResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewAlertResponse(&ms[i]))
	}
	return out
}
