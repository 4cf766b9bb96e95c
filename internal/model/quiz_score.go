package model

import "time"

// QuizScore summarizes one user's completed attempt at one quiz. A retake updates
// the row in place, unlike Answer which is deleted and recreated.
type QuizScore struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_quiz_scores_user_quiz"`
	QuizID         uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_scores_user_quiz"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Score          float64   `json:"score" gorm:"not null;default:0"`
	TotalQuestions int       `json:"total_questions" gorm:"not null;default:0"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null;default:0"`
	CompletedAt    time.Time `json:"completed_at"`
}
