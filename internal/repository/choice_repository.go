package repository

import (
	"github.com/quizki/quizki/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	FindByID(id uint) (*model.Choice, error)
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) FindByID(id uint) (*model.Choice, error) {
	var choice model.Choice
	if err := r.db.First(&choice, id).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}
