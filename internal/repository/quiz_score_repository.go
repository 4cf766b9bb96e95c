package repository

import (
	"github.com/quizki/quizki/internal/model"
	"gorm.io/gorm"
)

type QuizScoreRepository interface {
	FindAllByQuizOrdered(quizID uint) ([]model.QuizScore, error)
	CountByUser(userID uint) (int64, error)
}

type quizScoreRepository struct {
	db *gorm.DB
}

func NewQuizScoreRepository(db *gorm.DB) QuizScoreRepository {
	return &quizScoreRepository{db: db}
}

// FindAllByQuizOrdered returns every completion for a quiz, best score first.
// Ties fall back to row ID so repeated reads agree on the order.
func (r *quizScoreRepository) FindAllByQuizOrdered(quizID uint) ([]model.QuizScore, error) {
	var scores []model.QuizScore
	err := r.db.Preload("User").
		Where("quiz_id = ?", quizID).
		Order("score DESC, id ASC").
		Find(&scores).Error
	return scores, err
}

func (r *quizScoreRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizScore{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
