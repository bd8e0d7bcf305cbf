package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreModel menyimpan nilai dari satu juri untuk satu peserta dalam
// scope (event, ronde-atau-null). is_winner/winner_position adalah
// kolom turunan milik Scoring Engine, jangan ditulis dari controller.
type ScoreModel struct {
	// PK
	ScoreID uuid.UUID `gorm:"type:uuid;primaryKey;column:score_id" json:"score_id"`

	// Scope
	ScoreEventID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_scores_scope;column:score_event_id" json:"score_event_id"`
	ScoreRoundID        *uuid.UUID `gorm:"type:uuid;index:idx_scores_scope;column:score_round_id" json:"score_round_id,omitempty"`
	ScoreRegistrationID *uuid.UUID `gorm:"type:uuid;index;column:score_registration_id" json:"score_registration_id,omitempty"`
	ScoreJudgeID        uuid.UUID  `gorm:"type:uuid;not null;column:score_judge_id" json:"score_judge_id"`

	// Nilai
	ScoreValue float64 `gorm:"not null;column:score_value" json:"score_value"`

	// Turunan (diisi Scoring Engine)
	ScoreIsWinner       bool `gorm:"not null;default:false;column:score_is_winner" json:"score_is_winner"`
	ScoreWinnerPosition *int `gorm:"column:score_winner_position" json:"score_winner_position,omitempty"`

	// Audit
	ScoreCreatedAt time.Time  `gorm:"column:score_created_at;autoCreateTime" json:"score_created_at"`
	ScoreUpdatedAt *time.Time `gorm:"column:score_updated_at;autoUpdateTime" json:"score_updated_at,omitempty"`
}

func (ScoreModel) TableName() string { return "scores" }

func (m *ScoreModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScoreID == uuid.Nil {
		m.ScoreID = uuid.New()
	}
	return nil
}
