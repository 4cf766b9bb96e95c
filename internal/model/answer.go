package model

import "time"

// Answer records one user's choice for one question. The composite unique index
// makes the at-most-one-answer-per-(user,question) invariant a real constraint
// rather than something only the workflow logic upholds; a racing double submit
// fails the second insert instead of double-counting.
type Answer struct {
	ID         uint `gorm:"primarykey" json:"id"`
	UserID     uint `json:"user_id" gorm:"not null;uniqueIndex:idx_answers_user_question"`
	QuestionID uint `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_user_question"`
	ChoiceID   uint `json:"choice_id" gorm:"not null"`
	// Score is the points awarded for this answer, fixed at creation: the
	// question's score if the chosen choice was correct, otherwise 0.
	Score     float64   `json:"score" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
