package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizScoreService aggregates quiz completions into one QuizScore row per
// (user, quiz). Unlike answers, a retake updates the existing row in place
// and replaces its contribution to the user's total.
type QuizScoreService interface {
	SubmitQuizScore(userID, quizID uint, req dto.QuizScoreSubmitDTO) (*dto.QuizScoreResponseDTO, error)
	DeleteQuizScore(userID, quizID uint) (bool, error)
	GetQuizLeaderboard(quizID uint) ([]dto.LeaderboardEntryDTO, error)
}

type quizScoreService struct {
	quizRepo      repository.QuizRepository
	quizScoreRepo repository.QuizScoreRepository
	db            *gorm.DB
}

func NewQuizScoreService(
	quizRepo repository.QuizRepository,
	quizScoreRepo repository.QuizScoreRepository,
	db *gorm.DB,
) QuizScoreService {
	return &quizScoreService{quizRepo: quizRepo, quizScoreRepo: quizScoreRepo, db: db}
}

// SubmitQuizScore records or replaces the user's completion result for a quiz.
// On a retake the total is adjusted by (new - old) without clamping; it can go
// negative if the old score exceeded the current total through unrelated
// deductions. That mirrors the first-completion increment and is deliberate.
func (s *quizScoreService) SubmitQuizScore(userID, quizID uint, req dto.QuizScoreSubmitDTO) (*dto.QuizScoreResponseDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up quiz %d: %w", quizID, err)
	}

	var result model.QuizScore
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return fmt.Errorf("loading user %d: %w", userID, err)
		}

		var existing model.QuizScore
		findErr := tx.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&existing).Error
		switch {
		case findErr == nil:
			oldScore := existing.Score
			existing.Score = req.Score
			existing.TotalQuestions = req.TotalQuestions
			existing.CorrectAnswers = req.CorrectAnswers
			existing.CompletedAt = time.Now()
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("updating quiz score: %w", err)
			}
			user.TotalScore = user.TotalScore - oldScore + req.Score
			result = existing
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			created := model.QuizScore{
				UserID:         userID,
				QuizID:         quizID,
				Score:          req.Score,
				TotalQuestions: req.TotalQuestions,
				CorrectAnswers: req.CorrectAnswers,
				CompletedAt:    time.Now(),
			}
			if err := tx.Create(&created).Error; err != nil {
				return fmt.Errorf("creating quiz score: %w", err)
			}
			user.TotalScore += req.Score
			result = created
		default:
			return findErr
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).
			Msg("SubmitQuizScore: transaction rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	log.Info().Uint("userID", userID).Uint("quizID", quizID).Float64("score", result.Score).
		Msg("Quiz score recorded")
	return &dto.QuizScoreResponseDTO{
		ID:             result.ID,
		UserID:         result.UserID,
		QuizID:         result.QuizID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		CompletedAt:    result.CompletedAt,
	}, nil
}

// DeleteQuizScore removes the user's completion record for a quiz, retracting
// its points with the same clamp-at-zero rule as an answer reset. Returns false
// when no record existed.
func (s *quizScoreService) DeleteQuizScore(userID, quizID uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var score model.QuizScore
		findErr := tx.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&score).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil
		}
		if findErr != nil {
			return findErr
		}
		found = true

		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return fmt.Errorf("loading user %d: %w", userID, err)
		}
		user.TotalScore = math.Max(0, user.TotalScore-score.Score)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return tx.Delete(&score).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).
			Msg("DeleteQuizScore: transaction rolled back")
		return false, err
	}
	return found, nil
}

func (s *quizScoreService) GetQuizLeaderboard(quizID uint) ([]dto.LeaderboardEntryDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up quiz %d: %w", quizID, err)
	}

	scores, err := s.quizScoreRepo.FindAllByQuizOrdered(quizID)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard for quiz %d: %w", quizID, err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(scores))
	for _, score := range scores {
		entries = append(entries, dto.LeaderboardEntryDTO{
			UserID:         score.UserID,
			Username:       score.User.Username,
			Score:          score.Score,
			TotalQuestions: score.TotalQuestions,
			CorrectAnswers: score.CorrectAnswers,
			CompletedAt:    score.CompletedAt,
		})
	}
	return entries, nil
}
