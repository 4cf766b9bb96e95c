package service_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/quizki/quizki/config"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"github.com/quizki/quizki/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Choice{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.Answer{},
		&model.QuizScore{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func newAnswerService(db *gorm.DB) service.AnswerService {
	return service.NewAnswerService(
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuizRepository(db),
		db,
	)
}

func newQuizScoreService(db *gorm.DB) service.QuizScoreService {
	return service.NewQuizScoreService(
		repository.NewQuizRepository(db),
		repository.NewQuizScoreRepository(db),
		db,
	)
}

func newQuizService(db *gorm.DB) service.QuizService {
	return service.NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		db,
	)
}

func newQuestionService(db *gorm.DB) service.QuestionService {
	return service.NewQuestionService(repository.NewQuestionRepository(db), db)
}

func newAuthService(db *gorm.DB) service.AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1
	return service.NewAuthService(repository.NewUserRepository(db), cfg)
}

func newUserService(db *gorm.DB) service.UserService {
	return service.NewUserService(
		repository.NewUserRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuizScoreRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, username string, totalScore float64) model.User {
	t.Helper()
	user := model.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   "hashed",
		TotalScore: totalScore,
		Role:       model.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user %s: %v", username, err)
	}
	return user
}

// seedQuestion creates a question worth the given points with one correct and
// one wrong choice. Choices[0] is correct, Choices[1] is wrong.
func seedQuestion(t *testing.T, db *gorm.DB, text string, points float64) model.Question {
	t.Helper()
	question := model.Question{
		QuestionText: text,
		Score:        points,
		Choices: []model.Choice{
			{ChoiceText: "right", IsCorrect: true},
			{ChoiceText: "wrong", IsCorrect: false},
		},
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seeding question: %v", err)
	}
	return question
}

func seedQuiz(t *testing.T, db *gorm.DB, title string, questionIDs ...uint) model.Quiz {
	t.Helper()
	quiz := model.Quiz{Title: title, Difficulty: "medium", TimeLimit: 15}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}
	for i, questionID := range questionIDs {
		link := model.QuizQuestion{QuizID: quiz.ID, QuestionID: questionID, Position: i}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("seeding quiz question link: %v", err)
		}
	}
	return quiz
}

func userTotal(t *testing.T, db *gorm.DB, userID uint) float64 {
	t.Helper()
	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		t.Fatalf("loading user %d: %v", userID, err)
	}
	return user.TotalScore
}

func answerCount(t *testing.T, db *gorm.DB, userID, questionID uint) int64 {
	t.Helper()
	var count int64
	err := db.Model(&model.Answer{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("counting answers: %v", err)
	}
	return count
}
