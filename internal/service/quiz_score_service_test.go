package service_test

import (
	"errors"
	"testing"

	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/service"
)

func TestSubmitQuizScoreFirstCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	user := seedUser(t, db, "alice", 10)
	quiz := seedQuiz(t, db, "Geography")

	result, err := svc.SubmitQuizScore(user.ID, quiz.ID, dto.QuizScoreSubmitDTO{
		Score: 20, TotalQuestions: 5, CorrectAnswers: 4,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 20 || result.TotalQuestions != 5 || result.CorrectAnswers != 4 {
		t.Fatalf("unexpected score record: %+v", result)
	}
	if got := userTotal(t, db, user.ID); got != 30 {
		t.Fatalf("expected total_score 30, got %v", got)
	}
}

func TestSubmitQuizScoreReplacesPrevious(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	user := seedUser(t, db, "alice", 0)
	quiz := seedQuiz(t, db, "Geography")

	first, err := svc.SubmitQuizScore(user.ID, quiz.ID, dto.QuizScoreSubmitDTO{
		Score: 20, TotalQuestions: 5, CorrectAnswers: 4,
	})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := svc.SubmitQuizScore(user.ID, quiz.ID, dto.QuizScoreSubmitDTO{
		Score: 35, TotalQuestions: 5, CorrectAnswers: 5,
	})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	// Same record updated in place, not a second row.
	if second.ID != first.ID {
		t.Fatalf("expected the same record to be updated, got id %d then %d", first.ID, second.ID)
	}
	var count int64
	if err := db.Model(&model.QuizScore{}).Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Count(&count).Error; err != nil {
		t.Fatalf("counting quiz scores: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 quiz score row, got %d", count)
	}
	// Net contribution is the latest score only.
	if got := userTotal(t, db, user.ID); got != 35 {
		t.Fatalf("expected total_score 35, got %v", got)
	}
}

func TestSubmitQuizScoreLowerRetakeLowersTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	user := seedUser(t, db, "alice", 0)
	quiz := seedQuiz(t, db, "Geography")

	if _, err := svc.SubmitQuizScore(user.ID, quiz.ID, dto.QuizScoreSubmitDTO{Score: 40, TotalQuestions: 5, CorrectAnswers: 5}); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.SubmitQuizScore(user.ID, quiz.ID, dto.QuizScoreSubmitDTO{Score: 10, TotalQuestions: 5, CorrectAnswers: 1}); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if got := userTotal(t, db, user.ID); got != 10 {
		t.Fatalf("expected total_score 10 after lower retake, got %v", got)
	}
}

func TestSubmitQuizScoreUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	user := seedUser(t, db, "alice", 0)

	_, err := svc.SubmitQuizScore(user.ID, 42, dto.QuizScoreSubmitDTO{Score: 10, TotalQuestions: 5})
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuizScoreRetractsAndClamps(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	user := seedUser(t, db, "alice", 0)
	quiz := seedQuiz(t, db, "Geography")

	if _, err := svc.SubmitQuizScore(user.ID, quiz.ID, dto.QuizScoreSubmitDTO{Score: 25, TotalQuestions: 5, CorrectAnswers: 3}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// Drift the total below the recorded score to exercise the clamp.
	if err := db.Model(&model.User{}).Where("id = ?", user.ID).Update("total_score", 10).Error; err != nil {
		t.Fatalf("forcing total_score: %v", err)
	}

	found, err := svc.DeleteQuizScore(user.ID, quiz.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !found {
		t.Fatal("expected delete to find the score")
	}
	if got := userTotal(t, db, user.ID); got != 0 {
		t.Fatalf("expected total_score clamped to 0, got %v", got)
	}
}

func TestDeleteQuizScoreNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	user := seedUser(t, db, "alice", 0)
	quiz := seedQuiz(t, db, "Geography")

	found, err := svc.DeleteQuizScore(user.ID, quiz.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if found {
		t.Fatal("expected delete to report not found")
	}
}

func TestQuizLeaderboardOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)
	quiz := seedQuiz(t, db, "Geography")
	alice := seedUser(t, db, "alice", 0)
	bob := seedUser(t, db, "bob", 0)
	carol := seedUser(t, db, "carol", 0)

	if _, err := svc.SubmitQuizScore(bob.ID, quiz.ID, dto.QuizScoreSubmitDTO{Score: 30, TotalQuestions: 5, CorrectAnswers: 3}); err != nil {
		t.Fatalf("submit for bob failed: %v", err)
	}
	if _, err := svc.SubmitQuizScore(carol.ID, quiz.ID, dto.QuizScoreSubmitDTO{Score: 10, TotalQuestions: 5, CorrectAnswers: 1}); err != nil {
		t.Fatalf("submit for carol failed: %v", err)
	}
	if _, err := svc.SubmitQuizScore(alice.ID, quiz.ID, dto.QuizScoreSubmitDTO{Score: 50, TotalQuestions: 5, CorrectAnswers: 5}); err != nil {
		t.Fatalf("submit for alice failed: %v", err)
	}

	entries, err := svc.GetQuizLeaderboard(quiz.ID)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantUsers := []string{"alice", "bob", "carol"}
	wantScores := []float64{50, 30, 10}
	for i := range entries {
		if entries[i].Username != wantUsers[i] || entries[i].Score != wantScores[i] {
			t.Fatalf("entry %d: expected %s/%v, got %s/%v",
				i, wantUsers[i], wantScores[i], entries[i].Username, entries[i].Score)
		}
	}
}

func TestQuizLeaderboardUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizScoreService(db)

	_, err := svc.GetQuizLeaderboard(42)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
