package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/middleware"
	"github.com/quizki/quizki/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizScoreController struct {
	quizScoreService service.QuizScoreService
}

func NewQuizScoreController(quizScoreService service.QuizScoreService) *QuizScoreController {
	return &QuizScoreController{quizScoreService: quizScoreService}
}

// SubmitQuizScore godoc
// @Summary Record the caller's completion result for a quiz
// @Description A resubmission replaces the previous result and adjusts the running total by the difference.
// @Tags Quiz Scores
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param score body dto.QuizScoreSubmitDTO true "Completion summary"
// @Success 200 {object} dto.QuizScoreResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Score could not be recorded"
// @Router /quizzes/{quiz_id}/scores [post]
func (c *QuizScoreController) SubmitQuizScore(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuizScoreSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuizScore: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	identity, _ := middleware.CurrentIdentity(ctx)
	score, err := c.quizScoreService.SubmitQuizScore(identity.UserID, quizID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, score)
}

// DeleteQuizScore godoc
// @Summary Delete the caller's completion result for a quiz
// @Description Retracts the score from the running total, clamped at zero.
// @Tags Quiz Scores
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "No score to delete"
// @Router /quizzes/{quiz_id}/scores [delete]
func (c *QuizScoreController) DeleteQuizScore(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(ctx)
	found, err := c.quizScoreService.DeleteQuizScore(identity.UserID, quizID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No quiz score found for this quiz"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz score deleted successfully"})
}

// GetQuizLeaderboard godoc
// @Summary Get a quiz's leaderboard
// @Description All completion results for the quiz, highest score first.
// @Tags Quiz Scores
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/leaderboard [get]
func (c *QuizScoreController) GetQuizLeaderboard(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	entries, err := c.quizScoreService.GetQuizLeaderboard(quizID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
