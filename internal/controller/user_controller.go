package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizki/quizki/internal/middleware"
	"github.com/quizki/quizki/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers godoc
// @Summary List users ordered by total score
// @Description Guests and regular users see username and score only; admins see the full record.
// @Tags Users
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.UserPublic
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	skip := parseQueryInt(ctx, "skip", 0)
	limit := parseQueryInt(ctx, "limit", 100)

	identity, _ := middleware.CurrentIdentity(ctx)
	full, public, err := c.userService.GetUserList(skip, limit, identity.IsAdmin())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if identity.IsAdmin() {
		ctx.JSON(http.StatusOK, full)
		return
	}
	ctx.JSON(http.StatusOK, public)
}

// GetUser godoc
// @Summary Get a user by ID
// @Description Users may read themselves; admins may read anyone.
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Not enough permissions"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{user_id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(ctx)
	user, err := c.userService.GetUser(identity.UserID, identity.Role, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetMe godoc
// @Summary Get the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	identity, _ := middleware.CurrentIdentity(ctx)
	user, err := c.userService.GetUser(identity.UserID, identity.Role, identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetMyStats godoc
// @Summary Get the authenticated user's quiz statistics
// @Tags Users
// @Produce json
// @Success 200 {object} dto.UserStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /my-stats [get]
func (c *UserController) GetMyStats(ctx *gin.Context) {
	identity, _ := middleware.CurrentIdentity(ctx)
	stats, err := c.userService.GetUserStats(identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
