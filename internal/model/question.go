package model

import "time"

type Question struct {
	ID           uint     `gorm:"primarykey" json:"id"`
	QuestionText string   `json:"question_text" gorm:"type:text;not null"`
	Score        float64  `json:"score" gorm:"not null"` // points awarded for a correct answer
	CreatorID    uint     `json:"creator_id" gorm:"index"`
	Choices      []Choice `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	// Deleting a question removes its answers too, so no answer can reference a
	// missing question.
	Answers       []Answer       `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	QuizQuestions []QuizQuestion `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
