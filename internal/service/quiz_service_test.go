package service_test

import (
	"errors"
	"testing"

	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/service"
)

func TestCreateQuizLinksQuestionsInOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	q1 := seedQuestion(t, db, "first", 5)
	q2 := seedQuestion(t, db, "second", 3)

	detail, err := svc.CreateQuiz(1, dto.QuizCreateDTO{
		Title:       "Basics",
		Difficulty:  "easy",
		TimeLimit:   10,
		QuestionIDs: []uint{q2.ID, q1.ID},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(detail.Questions))
	}
	// Questions come back in the submitted order, not id order.
	if detail.Questions[0].ID != q2.ID || detail.Questions[1].ID != q1.ID {
		t.Fatalf("expected order [%d %d], got [%d %d]",
			q2.ID, q1.ID, detail.Questions[0].ID, detail.Questions[1].ID)
	}
}

func TestCreateQuizUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	q1 := seedQuestion(t, db, "first", 5)

	_, err := svc.CreateQuiz(1, dto.QuizCreateDTO{
		Title:       "Broken",
		QuestionIDs: []uint{q1.ID, 9999},
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var count int64
	if err := db.Model(&model.Quiz{}).Count(&count).Error; err != nil {
		t.Fatalf("counting quizzes: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no quiz created, got %d", count)
	}
}

func TestGetQuizDetailIncludesChoices(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	question := seedQuestion(t, db, "q", 5)
	quiz := seedQuiz(t, db, "Basics", question.ID)

	detail, err := svc.GetQuizDetail(quiz.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if len(detail.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(detail.Questions))
	}
	choices := detail.Questions[0].Choices
	if len(choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(choices))
	}
	// The quiz detail is the quiz-taking payload; correctness flags are present.
	if choices[0].IsCorrect == nil || !*choices[0].IsCorrect {
		t.Fatalf("expected first choice marked correct, got %+v", choices[0])
	}
}

func TestGetQuizDetailSkipsDanglingLinks(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	question := seedQuestion(t, db, "kept", 5)
	quiz := seedQuiz(t, db, "Basics", question.ID)
	// Forge a link row pointing at a question that no longer exists.
	if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		t.Fatalf("disabling foreign keys: %v", err)
	}
	if err := db.Exec("INSERT INTO quiz_questions (quiz_id, question_id, position) VALUES (?, ?, ?)", quiz.ID, 9999, 1).Error; err != nil {
		t.Fatalf("inserting dangling link: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("re-enabling foreign keys: %v", err)
	}

	detail, err := svc.GetQuizDetail(quiz.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if len(detail.Questions) != 1 || detail.Questions[0].ID != question.ID {
		t.Fatalf("expected only the surviving question, got %+v", detail.Questions)
	}
}

func TestGetQuizDetailNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	_, err := svc.GetQuizDetail(42)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateQuizReplacesLinks(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	q1 := seedQuestion(t, db, "first", 5)
	q2 := seedQuestion(t, db, "second", 3)
	quiz := seedQuiz(t, db, "Basics", q1.ID)

	detail, err := svc.UpdateQuiz(quiz.ID, dto.QuizCreateDTO{
		Title:       "Basics v2",
		QuestionIDs: []uint{q2.ID},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if detail.Title != "Basics v2" {
		t.Fatalf("expected updated title, got %q", detail.Title)
	}
	if len(detail.Questions) != 1 || detail.Questions[0].ID != q2.ID {
		t.Fatalf("expected links replaced with question %d, got %+v", q2.ID, detail.Questions)
	}
	var count int64
	if err := db.Model(&model.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).Count(&count).Error; err != nil {
		t.Fatalf("counting links: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 link row after update, got %d", count)
	}
}

func TestGetAllQuizzesReportsQuestionCount(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	q1 := seedQuestion(t, db, "first", 5)
	q2 := seedQuestion(t, db, "second", 3)
	seedQuiz(t, db, "Two questions", q1.ID, q2.ID)
	seedQuiz(t, db, "Empty")

	summaries, err := svc.GetAllQuizzes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(summaries))
	}
	counts := map[string]int{}
	for _, s := range summaries {
		counts[s.Title] = s.QuestionCount
	}
	if counts["Two questions"] != 2 || counts["Empty"] != 0 {
		t.Fatalf("unexpected question counts: %v", counts)
	}
}

func TestDeleteQuizRemovesLinksAndScores(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	question := seedQuestion(t, db, "q", 5)
	quiz := seedQuiz(t, db, "Basics", question.ID)
	user := seedUser(t, db, "alice", 0)
	score := model.QuizScore{UserID: user.ID, QuizID: quiz.ID, Score: 10, TotalQuestions: 1, CorrectAnswers: 1}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("seeding quiz score: %v", err)
	}

	if err := svc.DeleteQuiz(quiz.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var links, scores int64
	if err := db.Model(&model.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).Count(&links).Error; err != nil {
		t.Fatalf("counting links: %v", err)
	}
	if err := db.Model(&model.QuizScore{}).Where("quiz_id = ?", quiz.ID).Count(&scores).Error; err != nil {
		t.Fatalf("counting scores: %v", err)
	}
	if links != 0 || scores != 0 {
		t.Fatalf("expected cascade to remove links and scores, got %d links %d scores", links, scores)
	}
	// The question itself survives.
	var q model.Question
	if err := db.First(&q, question.ID).Error; err != nil {
		t.Fatalf("expected question to survive quiz delete: %v", err)
	}
}
