package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService is the answer submission workflow: it validates a (user,
// question, choice) tuple, records the answer, and keeps the user's running
// total consistent with it. At most one answer row exists per (user, question);
// a retake deletes the old row and recreates it.
type AnswerService interface {
	SubmitAnswer(userID, questionID, choiceID uint) (*dto.AnswerResponseDTO, error)
	ResetAnswer(userID, questionID uint) (bool, error)
	ResetQuizAnswers(userID, quizID uint) (*dto.QuizAnswersResetDTO, error)
	GetUserAnswers(userID uint) ([]dto.AnswerResponseDTO, error)
}

type answerService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
	answerRepo   repository.AnswerRepository
	quizRepo     repository.QuizRepository
	db           *gorm.DB // transactions for the submit/reset workflows
}

func NewAnswerService(
	questionRepo repository.QuestionRepository,
	choiceRepo repository.ChoiceRepository,
	answerRepo repository.AnswerRepository,
	quizRepo repository.QuizRepository,
	db *gorm.DB,
) AnswerService {
	return &answerService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
		answerRepo:   answerRepo,
		quizRepo:     quizRepo,
		db:           db,
	}
}

// SubmitAnswer records one user's choice for one question and adds the awarded
// points to the user's total. Validation happens before any write: a choice
// that does not exist or belongs to a different question rejects the submission
// without touching the answer table or the score.
func (s *answerService) SubmitAnswer(userID, questionID, choiceID uint) (*dto.AnswerResponseDTO, error) {
	// The choice is validated first: a choice that is missing or belongs to a
	// different question is InvalidChoice even when the question id is bogus too.
	choice, err := s.choiceRepo.FindByID(choiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidChoice
		}
		return nil, fmt.Errorf("looking up choice %d: %w", choiceID, err)
	}
	if choice.QuestionID != questionID {
		log.Warn().Uint("choiceID", choiceID).Uint("questionID", questionID).
			Uint("choiceQuestionID", choice.QuestionID).Msg("SubmitAnswer: choice belongs to a different question")
		return nil, ErrInvalidChoice
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up question %d: %w", questionID, err)
	}

	score := 0.0
	if choice.IsCorrect {
		score = question.Score
	}

	answer := model.Answer{
		UserID:     userID,
		QuestionID: questionID,
		ChoiceID:   choiceID,
		Score:      score,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return fmt.Errorf("loading user %d: %w", userID, err)
		}

		// Retake: retract the previous answer's contribution (clamped at zero,
		// same as a standalone reset) before recording the new one.
		var existing model.Answer
		findErr := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&existing).Error
		switch {
		case findErr == nil:
			user.TotalScore = math.Max(0, user.TotalScore-existing.Score)
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("deleting previous answer: %w", err)
			}
		case !errors.Is(findErr, gorm.ErrRecordNotFound):
			return findErr
		}

		if err := tx.Create(&answer).Error; err != nil {
			return fmt.Errorf("creating answer: %w", err)
		}

		user.TotalScore += score
		return tx.Save(&user).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", questionID).
			Msg("SubmitAnswer: transaction rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	log.Info().Uint("userID", userID).Uint("questionID", questionID).Float64("score", score).
		Msg("Answer recorded")
	return &dto.AnswerResponseDTO{
		ID:         answer.ID,
		UserID:     answer.UserID,
		QuestionID: answer.QuestionID,
		ChoiceID:   answer.ChoiceID,
		Score:      answer.Score,
		IsCorrect:  choice.IsCorrect,
		CreatedAt:  answer.CreatedAt,
	}, nil
}

// ResetAnswer deletes the user's answer for a question, retracting its points
// from the running total. The retraction clamps at zero: if the total has
// drifted below the answer's score it becomes 0, never negative. Returns false
// when no answer existed.
func (s *answerService) ResetAnswer(userID, questionID uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = resetAnswerTx(tx, userID, questionID)
		return err
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", questionID).
			Msg("ResetAnswer: transaction rolled back")
		return false, err
	}
	return found, nil
}

// resetAnswerTx deletes the user's answer for a question and retracts its
// points, clamped at zero, within the caller's transaction. Returns false when
// no answer existed.
func resetAnswerTx(tx *gorm.DB, userID, questionID uint) (bool, error) {
	var answer model.Answer
	findErr := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&answer).Error
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if findErr != nil {
		return false, findErr
	}

	var user model.User
	if err := tx.First(&user, userID).Error; err != nil {
		return false, fmt.Errorf("loading user %d: %w", userID, err)
	}
	user.TotalScore = math.Max(0, user.TotalScore-answer.Score)
	if err := tx.Save(&user).Error; err != nil {
		return false, err
	}
	return true, tx.Delete(&answer).Error
}

// ResetQuizAnswers resets the user's answers for every question linked to the
// quiz, all within one transaction. Questions the user never answered are
// skipped, not errors. Fails with ErrNotFound when the quiz has no linked
// questions at all.
func (s *answerService) ResetQuizAnswers(userID, quizID uint) (*dto.QuizAnswersResetDTO, error) {
	questionIDs, err := s.quizRepo.FindQuestionIDs(quizID)
	if err != nil {
		return nil, fmt.Errorf("resolving questions for quiz %d: %w", quizID, err)
	}
	if len(questionIDs) == 0 {
		return nil, ErrNotFound
	}

	resetCount := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, questionID := range questionIDs {
			found, err := resetAnswerTx(tx, userID, questionID)
			if err != nil {
				return fmt.Errorf("resetting answer for question %d: %w", questionID, err)
			}
			if found {
				resetCount++
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).
			Msg("ResetQuizAnswers: transaction rolled back")
		return nil, err
	}

	log.Info().Uint("userID", userID).Uint("quizID", quizID).Int("resetCount", resetCount).
		Int("totalQuestions", len(questionIDs)).Msg("Quiz answers reset")
	return &dto.QuizAnswersResetDTO{
		ResetCount:     resetCount,
		TotalQuestions: len(questionIDs),
	}, nil
}

func (s *answerService) GetUserAnswers(userID uint) ([]dto.AnswerResponseDTO, error) {
	answers, err := s.answerRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching answers for user %d: %w", userID, err)
	}

	dtos := make([]dto.AnswerResponseDTO, 0, len(answers))
	for _, answer := range answers {
		dtos = append(dtos, dto.AnswerResponseDTO{
			ID:         answer.ID,
			UserID:     answer.UserID,
			QuestionID: answer.QuestionID,
			ChoiceID:   answer.ChoiceID,
			Score:      answer.Score,
			IsCorrect:  answer.IsCorrect,
			CreatedAt:  answer.CreatedAt,
		})
	}
	return dtos, nil
}
