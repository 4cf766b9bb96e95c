package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizki/quizki/config"
	"github.com/quizki/quizki/database"
	_ "github.com/quizki/quizki/docs" // Swagger docs
	"github.com/quizki/quizki/internal/controller"
	"github.com/quizki/quizki/internal/logger"
	"github.com/quizki/quizki/internal/middleware"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/repository"
	"github.com/quizki/quizki/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizKi API
// @version 1.0
// @description Quiz application API: users, questions, quizzes, answers and scoring.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
			repository.NewQuizRepository,
			repository.NewAnswerRepository,
			repository.NewQuizScoreRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewQuestionService,
			service.NewQuizService,
			service.NewAnswerService,
			service.NewQuizScoreService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewQuestionController,
			controller.NewQuizController,
			controller.NewAnswerController,
			controller.NewQuizScoreController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP server
// lifecycle through fx.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	questionCtrl *controller.QuestionController,
	quizCtrl *controller.QuizController,
	answerCtrl *controller.AnswerController,
	quizScoreCtrl *controller.QuizScoreController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)

		api.GET("/users", middleware.OptionalAuth(authService), userCtrl.GetUsers)
		api.GET("/users/:user_id", middleware.RequireAuth(authService), userCtrl.GetUser)
		api.GET("/me", middleware.RequireAuth(authService), userCtrl.GetMe)
		api.GET("/my-stats", middleware.RequireAuth(authService), userCtrl.GetMyStats)

		api.GET("/questions", middleware.OptionalAuth(authService), questionCtrl.GetQuestions)
		api.GET("/questions/:question_id", middleware.OptionalAuth(authService), questionCtrl.GetQuestion)
		api.POST("/questions", middleware.RequireAdmin(authService), questionCtrl.CreateQuestion)
		api.PUT("/questions/:question_id", middleware.RequireAdmin(authService), questionCtrl.UpdateQuestion)
		api.DELETE("/questions/:question_id", middleware.RequireAdmin(authService), questionCtrl.DeleteQuestion)

		api.GET("/quizzes", quizCtrl.GetQuizzes)
		api.GET("/quizzes/:quiz_id", quizCtrl.GetQuizDetail)
		api.POST("/quizzes", middleware.RequireAdmin(authService), quizCtrl.CreateQuiz)
		api.PUT("/quizzes/:quiz_id", middleware.RequireAdmin(authService), quizCtrl.UpdateQuiz)
		api.DELETE("/quizzes/:quiz_id", middleware.RequireAdmin(authService), quizCtrl.DeleteQuiz)

		api.POST("/answers", middleware.RequireAuth(authService), answerCtrl.SubmitAnswer)
		api.GET("/my-answers", middleware.RequireAuth(authService), answerCtrl.GetMyAnswers)
		api.DELETE("/answers/:question_id", middleware.RequireAuth(authService), answerCtrl.ResetAnswer)
		api.DELETE("/quizzes/:quiz_id/answers", middleware.RequireAuth(authService), answerCtrl.ResetQuizAnswers)

		api.POST("/quizzes/:quiz_id/scores", middleware.RequireAuth(authService), quizScoreCtrl.SubmitQuizScore)
		api.DELETE("/quizzes/:quiz_id/scores", middleware.RequireAuth(authService), quizScoreCtrl.DeleteQuizScore)
		api.GET("/quizzes/:quiz_id/leaderboard", quizScoreCtrl.GetQuizLeaderboard)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizKi API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Choice{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.Answer{},
		&model.QuizScore{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}
