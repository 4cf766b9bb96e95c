package repository

import (
	"github.com/quizki/quizki/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	FindByID(id uint) (*model.Quiz, error)
	FindAllWithQuestionCount() ([]QuizWithQuestionCount, error)
	FindQuestionIDs(quizID uint) ([]uint, error)
	Delete(id uint) error
}

type QuizWithQuestionCount struct {
	model.Quiz
	QuestionCount int
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllWithQuestionCount() ([]QuizWithQuestionCount, error) {
	var results []QuizWithQuestionCount
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM quiz_questions WHERE quiz_questions.quiz_id = quizzes.id) as question_count").
		Order("quizzes.created_at DESC").
		Scan(&results).Error
	return results, err
}

// FindQuestionIDs returns the quiz's question IDs in presentation order.
func (r *quizRepository) FindQuestionIDs(quizID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.QuizQuestion{}).
		Where("quiz_id = ?", quizID).
		Order("position ASC, question_id ASC").
		Pluck("question_id", &ids).Error
	return ids, err
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Delete(&model.Quiz{}, id).Error
}
