package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Username string `json:"username" gorm:"not null;uniqueIndex"`
	Email    string `json:"email" gorm:"not null;uniqueIndex"`
	Password string `json:"-" gorm:"not null"`
	// TotalScore is a running aggregate maintained by the answer and quiz score
	// workflows. It is never recomputed from answer rows.
	TotalScore float64   `json:"total_score" gorm:"not null;default:0"`
	Role       string    `json:"role" gorm:"not null;default:'user'"` // "user", "admin"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
