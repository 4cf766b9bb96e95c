package dto

import "time"

// QuizScoreSubmitDTO is the summary a client reports when a user finishes a quiz.
type QuizScoreSubmitDTO struct {
	Score          float64 `json:"score" binding:"min=0"`
	TotalQuestions int     `json:"total_questions" binding:"required,gt=0"`
	CorrectAnswers int     `json:"correct_answers" binding:"min=0"`
}

type QuizScoreResponseDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	QuizID         uint      `json:"quiz_id"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	CompletedAt    time.Time `json:"completed_at"`
}

// LeaderboardEntryDTO is one row of a quiz leaderboard, highest score first.
type LeaderboardEntryDTO struct {
	UserID         uint      `json:"user_id"`
	Username       string    `json:"username"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	CompletedAt    time.Time `json:"completed_at"`
}
