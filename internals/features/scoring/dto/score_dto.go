// internals/features/scoring/dto/score_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	scoreModel "lombaku_backend/internals/features/scoring/model"
)

/* ===================== REQUESTS ===================== */

type SubmitScoreRequest struct {
	EventID        string  `json:"event_id" validate:"required,uuid4"`
	RoundID        *string `json:"round_id" validate:"omitempty,uuid4"`
	RegistrationID *string `json:"registration_id" validate:"omitempty,uuid4"`
	Value          float64 `json:"value" validate:"required,gte=0,lte=100"`
}

func (r *SubmitScoreRequest) ToModel(judgeID uuid.UUID) (*scoreModel.ScoreModel, error) {
	eventID, err := uuid.Parse(r.EventID)
	if err != nil {
		return nil, err
	}
	m := &scoreModel.ScoreModel{
		ScoreEventID: eventID,
		ScoreJudgeID: judgeID,
		ScoreValue:   r.Value,
	}
	if r.RoundID != nil {
		id, err := uuid.Parse(*r.RoundID)
		if err != nil {
			return nil, err
		}
		m.ScoreRoundID = &id
	}
	if r.RegistrationID != nil {
		id, err := uuid.Parse(*r.RegistrationID)
		if err != nil {
			return nil, err
		}
		m.ScoreRegistrationID = &id
	}
	return m, nil
}

/* ===================== RESPONSES ===================== */

type ScoreResponse struct {
	ScoreID        string     `json:"score_id"`
	EventID        string     `json:"event_id"`
	RoundID        *string    `json:"round_id,omitempty"`
	RegistrationID *string    `json:"registration_id,omitempty"`
	JudgeID        string     `json:"judge_id"`
	Value          float64    `json:"value"`
	IsWinner       bool       `json:"is_winner"`
	WinnerPosition *int       `json:"winner_position,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewScoreResponse(m *scoreModel.ScoreModel) *ScoreResponse {
	resp := &ScoreResponse{
		ScoreID:        m.ScoreID.String(),
		EventID:        m.ScoreEventID.String(),
		JudgeID:        m.ScoreJudgeID.String(),
		Value:          m.ScoreValue,
		IsWinner:       m.ScoreIsWinner,
		WinnerPosition: m.ScoreWinnerPosition,
		CreatedAt:      m.ScoreCreatedAt,
	}
	if m.ScoreRoundID != nil {
		s := m.ScoreRoundID.String()
		resp.RoundID = &s
	}
	if m.ScoreRegistrationID != nil {
		s := m.ScoreRegistrationID.String()
		resp.RegistrationID = &s
	}
	return resp
}

func NewScoreResponses(ms []scoreModel.ScoreModel) []ScoreResponse {
	out := make([]ScoreResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewScoreResponse(&ms[i]))
	}
	return out
}
