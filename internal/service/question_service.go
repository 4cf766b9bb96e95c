package service

import (
	"errors"
	"fmt"

	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService manages questions and their choices. Read paths mask
// is_correct to null unless the caller is an admin; that is the only place the
// answer key is gated.
type QuestionService interface {
	CreateQuestion(creatorID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(questionID uint, admin bool) (*dto.QuestionResponseDTO, error)
	GetQuestions(offset, limit int, admin bool) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(questionID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(questionID uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewQuestionService(questionRepo repository.QuestionRepository, db *gorm.DB) QuestionService {
	return &questionService{questionRepo: questionRepo, db: db}
}

func (s *questionService) CreateQuestion(creatorID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.Question{
		QuestionText: req.QuestionText,
		Score:        req.Score,
		CreatorID:    creatorID,
	}
	for _, choice := range req.Choices {
		question.Choices = append(question.Choices, model.Choice{
			ChoiceText: choice.ChoiceText,
			IsCorrect:  choice.IsCorrect,
		})
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: database error")
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	resp := questionToDTO(&question, true)
	return &resp, nil
}

func (s *questionService) GetQuestion(questionID uint, admin bool) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByIDWithChoices(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up question %d: %w", questionID, err)
	}
	resp := questionToDTO(question, admin)
	return &resp, nil
}

func (s *questionService) GetQuestions(offset, limit int, admin bool) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindAllWithChoices(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, questionToDTO(&questions[i], admin))
	}
	return dtos, nil
}

// UpdateQuestion replaces the question text, score, and the whole choice set.
// Choices are deleted and recreated rather than diffed.
func (s *questionService) UpdateQuestion(questionID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up question %d: %w", questionID, err)
	}

	question.QuestionText = req.QuestionText
	question.Score = req.Score

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(question).Error; err != nil {
			return fmt.Errorf("updating question: %w", err)
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Choice{}).Error; err != nil {
			return fmt.Errorf("clearing choices: %w", err)
		}
		for _, choice := range req.Choices {
			newChoice := model.Choice{
				ChoiceText: choice.ChoiceText,
				QuestionID: questionID,
				IsCorrect:  choice.IsCorrect,
			}
			if err := tx.Create(&newChoice).Error; err != nil {
				return fmt.Errorf("creating choice: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: transaction rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	return s.GetQuestion(questionID, true)
}

// DeleteQuestion removes the question; choices, answers and quiz links cascade
// with it. The points any cascaded answers contributed stay on the users'
// totals, matching how deletion has always behaved here.
func (s *questionService) DeleteQuestion(questionID uint) error {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("looking up question %d: %w", questionID, err)
	}
	if err := s.questionRepo.Delete(questionID); err != nil {
		return fmt.Errorf("deleting question %d: %w", questionID, err)
	}
	log.Info().Uint("questionID", questionID).Msg("Question deleted")
	return nil
}

func questionToDTO(question *model.Question, admin bool) dto.QuestionResponseDTO {
	choices := make([]dto.ChoiceResponseDTO, 0, len(question.Choices))
	for _, choice := range question.Choices {
		choiceDTO := dto.ChoiceResponseDTO{
			ID:         choice.ID,
			ChoiceText: choice.ChoiceText,
		}
		if admin {
			isCorrect := choice.IsCorrect
			choiceDTO.IsCorrect = &isCorrect
		}
		choices = append(choices, choiceDTO)
	}
	return dto.QuestionResponseDTO{
		ID:           question.ID,
		QuestionText: question.QuestionText,
		Score:        question.Score,
		CreatorID:    question.CreatorID,
		Choices:      choices,
		CreatedAt:    question.CreatedAt,
	}
}
