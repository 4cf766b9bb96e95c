package repository

import (
	"github.com/quizki/quizki/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindAllByUser(userID uint) ([]AnswerWithCorrect, error)
	CountByUser(userID uint) (int64, error)
	CountCorrectByUser(userID uint) (int64, error)
}

// AnswerWithCorrect pairs an answer with the is_correct flag of the choice it
// recorded. The flag is false when the choice has since been deleted.
type AnswerWithCorrect struct {
	model.Answer
	IsCorrect bool `json:"is_correct"`
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindAllByUser(userID uint) ([]AnswerWithCorrect, error) {
	var answers []AnswerWithCorrect
	err := r.db.Model(&model.Answer{}).
		Select("answers.*, COALESCE(choices.is_correct, ?) AS is_correct", false).
		Joins("LEFT JOIN choices ON choices.id = answers.choice_id").
		Where("answers.user_id = ?", userID).
		Order("answers.created_at DESC").
		Scan(&answers).Error
	return answers, err
}

func (r *answerRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountCorrectByUser counts answers whose recorded choice is marked correct.
// Correctness comes from the choice row, not the awarded score, so a correct
// answer to a zero-point question still counts.
func (r *answerRepository) CountCorrectByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Joins("JOIN choices ON choices.id = answers.choice_id").
		Where("answers.user_id = ? AND choices.is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}
