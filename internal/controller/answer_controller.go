package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/middleware"
	"github.com/quizki/quizki/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// SubmitAnswer godoc
// @Summary Submit an answer to a question
// @Description Records the choice and adds the awarded points to the running total. Answering an already-answered question replaces the previous answer.
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer body dto.AnswerCreateDTO true "Question and chosen choice"
// @Success 201 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Choice does not belong to the question"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Submission could not be recorded"
// @Router /answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	identity, _ := middleware.CurrentIdentity(ctx)
	answer, err := c.answerService.SubmitAnswer(identity.UserID, req.QuestionID, req.ChoiceID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, answer)
}

// ResetAnswer godoc
// @Summary Delete the caller's answer to a question
// @Description Retracts the answer's points from the running total, clamped at zero.
// @Tags Answers
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "No answer to reset"
// @Router /answers/{question_id} [delete]
func (c *AnswerController) ResetAnswer(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(ctx)
	found, err := c.answerService.ResetAnswer(identity.UserID, questionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No answer found for this question"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Answer reset successfully"})
}

// ResetQuizAnswers godoc
// @Summary Delete the caller's answers for every question in a quiz
// @Description Lets the user retake the quiz from scratch. Questions without an answer are skipped.
// @Tags Answers
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizAnswersResetDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz has no questions"
// @Router /quizzes/{quiz_id}/answers [delete]
func (c *AnswerController) ResetQuizAnswers(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(ctx)
	result, err := c.answerService.ResetQuizAnswers(identity.UserID, quizID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyAnswers godoc
// @Summary List the caller's answers
// @Tags Answers
// @Produce json
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /my-answers [get]
func (c *AnswerController) GetMyAnswers(ctx *gin.Context) {
	identity, _ := middleware.CurrentIdentity(ctx)
	answers, err := c.answerService.GetUserAnswers(identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}
