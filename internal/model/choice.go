package model

type Choice struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	ChoiceText string `json:"choice_text" gorm:"type:text;not null"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}
