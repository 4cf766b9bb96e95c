package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"gorm.io/gorm"
)

// UserService serves user reads. Listing is ordered by running total, which
// makes it the global leaderboard; guests get the reduced public shape.
type UserService interface {
	GetUser(requestorID uint, requestorRole string, userID uint) (*dto.UserResponse, error)
	GetUserList(offset, limit int, admin bool) (full []dto.UserResponse, public []dto.UserPublic, err error)
	GetUserStats(userID uint) (*dto.UserStatsResponse, error)
}

type userService struct {
	userRepo      repository.UserRepository
	answerRepo    repository.AnswerRepository
	quizScoreRepo repository.QuizScoreRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	answerRepo repository.AnswerRepository,
	quizScoreRepo repository.QuizScoreRepository,
) UserService {
	return &userService{userRepo: userRepo, answerRepo: answerRepo, quizScoreRepo: quizScoreRepo}
}

// GetUser returns the full user view. Callers may only read themselves unless
// they are admins.
func (s *userService) GetUser(requestorID uint, requestorRole string, userID uint) (*dto.UserResponse, error) {
	if requestorID != userID && requestorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user %d: %w", userID, err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("preparing user response: %w", err)
	}
	return &resp, nil
}

// GetUserList returns users ordered by total score descending. Admins get the
// full view; everyone else (including guests) gets username and score only.
func (s *userService) GetUserList(offset, limit int, admin bool) ([]dto.UserResponse, []dto.UserPublic, error) {
	users, err := s.userRepo.FindAllOrderedByScore(offset, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching users: %w", err)
	}

	if admin {
		full := make([]dto.UserResponse, 0, len(users))
		for i := range users {
			var resp dto.UserResponse
			if err := copier.Copy(&resp, &users[i]); err != nil {
				return nil, nil, fmt.Errorf("preparing user response: %w", err)
			}
			full = append(full, resp)
		}
		return full, nil, nil
	}

	public := make([]dto.UserPublic, 0, len(users))
	for _, user := range users {
		public = append(public, dto.UserPublic{
			Username:   user.Username,
			TotalScore: user.TotalScore,
		})
	}
	return nil, public, nil
}

func (s *userService) GetUserStats(userID uint) (*dto.UserStatsResponse, error) {
	quizzesTaken, err := s.quizScoreRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("counting quiz scores: %w", err)
	}
	answered, err := s.answerRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("counting answers: %w", err)
	}
	correct, err := s.answerRepo.CountCorrectByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("counting correct answers: %w", err)
	}

	average := 0.0
	if answered > 0 {
		average = float64(correct) / float64(answered) * 100
	}
	return &dto.UserStatsResponse{
		QuizzesTaken:      quizzesTaken,
		QuestionsAnswered: answered,
		CorrectAnswers:    correct,
		AverageScore:      average,
	}, nil
}
