package model

import "time"

type Quiz struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	Category      string         `json:"category,omitempty"`
	Difficulty    string         `json:"difficulty" gorm:"default:'medium'"` // "easy", "medium", "hard"
	TimeLimit     int            `json:"time_limit" gorm:"default:15"`       // minutes
	CreatorID     uint           `json:"creator_id" gorm:"index"`
	QuizQuestions []QuizQuestion `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	QuizScores    []QuizScore    `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
