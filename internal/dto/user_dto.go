package dto

import "time"

// UserResponse is the full user view, returned to the user themselves and to admins.
type UserResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	TotalScore float64   `json:"total_score"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserPublic is the reduced view returned to guests and non-admin users.
type UserPublic struct {
	Username   string  `json:"username"`
	TotalScore float64 `json:"total_score"`
}

// UserStatsResponse backs the /my-stats dashboard widgets.
type UserStatsResponse struct {
	QuizzesTaken      int64   `json:"quizzes_taken"`
	QuestionsAnswered int64   `json:"questions_answered"`
	CorrectAnswers    int64   `json:"correct_answers"`
	AverageScore      float64 `json:"average_score"` // percent of answered questions that were correct
}
