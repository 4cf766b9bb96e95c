package dto

import "time"

// QuizCreateDTO creates or updates a quiz. QuestionIDs reference existing
// questions; their order is the order the quiz presents them in.
type QuizCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	TimeLimit   int    `json:"time_limit" binding:"omitempty,gt=0"`
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1"`
}

// QuizSummaryDTO lists quizzes without their question bodies.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Difficulty    string    `json:"difficulty"`
	TimeLimit     int       `json:"time_limit"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizDetailDTO is the fully denormalized quiz -> questions -> choices structure
// delivered in a single response. IsCorrect is present unconditionally here; the
// question read paths do the role masking, not this one.
type QuizDetailDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Category    string                `json:"category,omitempty"`
	Difficulty  string                `json:"difficulty"`
	TimeLimit   int                   `json:"time_limit"`
	CreatorID   uint                  `json:"creator_id"`
	Questions   []QuestionResponseDTO `json:"questions"`
	CreatedAt   time.Time             `json:"created_at"`
}
