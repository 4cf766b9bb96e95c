package dto

import "time"

type AnswerCreateDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	ChoiceID   uint `json:"choice_id" binding:"required"`
}

type AnswerResponseDTO struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	QuestionID uint      `json:"question_id"`
	ChoiceID   uint      `json:"choice_id"`
	Score      float64   `json:"score"`
	IsCorrect  bool      `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuizAnswersResetDTO reports how many of a quiz's questions actually had an
// answer to reset for this user.
type QuizAnswersResetDTO struct {
	ResetCount     int `json:"reset_count"`
	TotalQuestions int `json:"total_questions"`
}
