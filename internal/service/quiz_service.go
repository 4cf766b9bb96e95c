package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService manages quizzes and assembles the denormalized quiz detail view.
type QuizService interface {
	CreateQuiz(creatorID uint, req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
	UpdateQuiz(quizID uint, req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
	DeleteQuiz(quizID uint) error
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetail(quizID uint) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewQuizService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository, db *gorm.DB) QuizService {
	return &quizService{quizRepo: quizRepo, questionRepo: questionRepo, db: db}
}

func (s *quizService) CreateQuiz(creatorID uint, req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	if err := s.validateQuestionIDs(req.QuestionIDs); err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		TimeLimit:   req.TimeLimit,
		CreatorID:   creatorID,
	}
	if quiz.Difficulty == "" {
		quiz.Difficulty = "medium"
	}
	if quiz.TimeLimit == 0 {
		quiz.TimeLimit = 15
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return fmt.Errorf("creating quiz: %w", err)
		}
		return createQuizLinks(tx, quiz.ID, req.QuestionIDs)
	})
	if err != nil {
		log.Error().Err(err).Msg("CreateQuiz: transaction rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	return s.GetQuizDetail(quiz.ID)
}

// UpdateQuiz replaces the quiz metadata and its question links wholesale, the
// same way a question update replaces its choices.
func (s *quizService) UpdateQuiz(quizID uint, req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up quiz %d: %w", quizID, err)
	}
	if err := s.validateQuestionIDs(req.QuestionIDs); err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Category = req.Category
	if req.Difficulty != "" {
		quiz.Difficulty = req.Difficulty
	}
	if req.TimeLimit != 0 {
		quiz.TimeLimit = req.TimeLimit
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(quiz).Error; err != nil {
			return fmt.Errorf("updating quiz: %w", err)
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizQuestion{}).Error; err != nil {
			return fmt.Errorf("clearing quiz questions: %w", err)
		}
		return createQuizLinks(tx, quizID, req.QuestionIDs)
	})
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("UpdateQuiz: transaction rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	return s.GetQuizDetail(quizID)
}

func (s *quizService) DeleteQuiz(quizID uint) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("looking up quiz %d: %w", quizID, err)
	}
	if err := s.quizRepo.Delete(quizID); err != nil {
		return fmt.Errorf("deleting quiz %d: %w", quizID, err)
	}
	log.Info().Uint("quizID", quizID).Msg("Quiz deleted")
	return nil
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:            q.Quiz.ID,
			Title:         q.Quiz.Title,
			Description:   q.Quiz.Description,
			Category:      q.Quiz.Category,
			Difficulty:    q.Quiz.Difficulty,
			TimeLimit:     q.Quiz.TimeLimit,
			QuestionCount: q.QuestionCount,
			CreatedAt:     q.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

// GetQuizDetail resolves the quiz, its ordered question set, and every
// question's choices into one nested structure. Link rows pointing at deleted
// questions are skipped, not errors. is_correct is included as-is; role masking
// belongs to the question read paths.
func (s *quizService) GetQuizDetail(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up quiz %d: %w", quizID, err)
	}

	questionIDs, err := s.quizRepo.FindQuestionIDs(quizID)
	if err != nil {
		return nil, fmt.Errorf("resolving questions for quiz %d: %w", quizID, err)
	}

	questions := make([]dto.QuestionResponseDTO, 0, len(questionIDs))
	for _, questionID := range questionIDs {
		question, err := s.questionRepo.FindByIDWithChoices(questionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Uint("quizID", quizID).Uint("questionID", questionID).
				Msg("GetQuizDetail: dangling quiz question link, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading question %d: %w", questionID, err)
		}

		var questionDTO dto.QuestionResponseDTO
		if err := copier.Copy(&questionDTO, question); err != nil {
			return nil, fmt.Errorf("preparing question %d: %w", questionID, err)
		}
		questions = append(questions, questionDTO)
	}

	resp := dto.QuizDetailDTO{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Category:    quiz.Category,
		Difficulty:  quiz.Difficulty,
		TimeLimit:   quiz.TimeLimit,
		CreatorID:   quiz.CreatorID,
		Questions:   questions,
		CreatedAt:   quiz.CreatedAt,
	}
	return &resp, nil
}

func (s *quizService) validateQuestionIDs(ids []uint) error {
	for _, id := range ids {
		if _, err := s.questionRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", ErrNotFound, id)
			}
			return fmt.Errorf("looking up question %d: %w", id, err)
		}
	}
	return nil
}

func createQuizLinks(tx *gorm.DB, quizID uint, questionIDs []uint) error {
	for i, questionID := range questionIDs {
		link := model.QuizQuestion{QuizID: quizID, QuestionID: questionID, Position: i}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("linking question %d: %w", questionID, err)
		}
	}
	return nil
}
