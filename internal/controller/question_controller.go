package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/middleware"
	"github.com/quizki/quizki/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question with its choices
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	identity, _ := middleware.CurrentIdentity(ctx)
	question, err := c.questionService.CreateQuestion(identity.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetQuestion godoc
// @Summary Get a question with its choices
// @Description is_correct is null on every choice unless the caller is an admin.
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(ctx)
	question, err := c.questionService.GetQuestion(questionID, identity.IsAdmin())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetQuestions godoc
// @Summary List questions
// @Description is_correct is masked for non-admin callers, as on single reads.
// @Tags Questions
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	skip := parseQueryInt(ctx, "skip", 0)
	limit := parseQueryInt(ctx, "limit", 100)

	identity, _ := middleware.CurrentIdentity(ctx)
	questions, err := c.questionService.GetQuestions(skip, limit, identity.IsAdmin())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question, replacing its choices
// @Tags Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "New question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(questionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Choices, answers and quiz links are deleted with it.
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(questionID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
