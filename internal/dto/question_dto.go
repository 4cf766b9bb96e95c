package dto

import "time"

type ChoiceCreateDTO struct {
	ChoiceText string `json:"choice_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuestionCreateDTO creates a question together with its choices. Updates use the
// same shape; existing choices are replaced wholesale.
type QuestionCreateDTO struct {
	QuestionText string            `json:"question_text" binding:"required"`
	Score        float64           `json:"score" binding:"required,gt=0"`
	Choices      []ChoiceCreateDTO `json:"choices" binding:"required,min=2,dive"`
}

// ChoiceResponseDTO carries IsCorrect as a pointer so non-admin reads can mask it
// to null instead of leaking the answer key.
type ChoiceResponseDTO struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
	IsCorrect  *bool  `json:"is_correct"`
}

type QuestionResponseDTO struct {
	ID           uint                `json:"id"`
	QuestionText string              `json:"question_text"`
	Score        float64             `json:"score"`
	CreatorID    uint                `json:"creator_id"`
	Choices      []ChoiceResponseDTO `json:"choices"`
	CreatedAt    time.Time           `json:"created_at"`
}
