package routes

import (
	"fmt"
	"time"

	"fourdx-backend/internal/api/handlers"
	"fourdx-backend/internal/api/middleware"
	"fourdx-backend/internal/auth"
	"fourdx-backend/internal/calendar"
	"fourdx-backend/internal/config"
	"fourdx-backend/internal/metrics"
	"fourdx-backend/internal/repository"
	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// Services bundles the domain services behind the HTTP API
type Services struct {
	Team         *service.TeamService
	User         *service.UserService
	Goal         *service.GoalService
	Measure      *service.MeasureService
	WeeklyRecord *service.WeeklyRecordService
	Scoreboard   *service.ScoreboardService
}

// NewServices wires repositories and services over one store
func NewServices(store *repository.Store, clock calendar.Clock) *Services {
	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(store.Teams)
	userRepo := repository.NewUserRepository(store.Users)
	goalRepo := repository.NewGoalRepository(store.Goals)
	measureRepo := repository.NewMeasureRepository(store.Measures)
	weekRepo := repository.NewWeeklyRecordRepository(store.WeeklyRecords)

	return &Services{
		Team:         service.NewTeamService(teamRepo, validator),
		User:         service.NewUserService(userRepo, teamRepo, validator),
		Goal:         service.NewGoalService(goalRepo, validator),
		Measure:      service.NewMeasureService(measureRepo, validator),
		WeeklyRecord: service.NewWeeklyRecordService(weekRepo, validator, clock),
		Scoreboard:   service.NewScoreboardService(goalRepo, measureRepo, weekRepo, clock),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(store *repository.Store, cfg *config.Config) (*gin.Engine, error) {
	return setupRoutes(store, cfg, calendar.SystemClock(cfg.Location()))
}

func setupRoutes(store *repository.Store, cfg *config.Config, clock calendar.Clock) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.Middleware())

	services := NewServices(store, clock)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, cfg.StoreDriver, Version)
	teamHandler := handlers.NewTeamHandler(services.Team)
	userHandler := handlers.NewUserHandler(services.User)
	goalHandler := handlers.NewGoalHandler(services.Goal)
	measureHandler := handlers.NewMeasureHandler(services.Measure)
	weekHandler := handlers.NewWeeklyRecordHandler(services.WeeklyRecord)
	scoreboardHandler := handlers.NewScoreboardHandler(services.Scoreboard)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler())

	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(cfg.JWTSecret, time.Hour)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize auth: %w", err)
		}
		authHandler := auth.NewAuthHandler(authService, services.User)

		// Token issuing stays reachable without a token
		v1.POST("/auth/token", authHandler.Token)
		v1.Use(auth.NewAuthMiddleware(authService).RequireAuth())
		v1.GET("/auth/me", authHandler.Me)
	}

	{
		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
		}

		// Goal routes
		goals := v1.Group("/goals")
		{
			goals.GET("", goalHandler.ListGoals)
			goals.PUT("", goalHandler.UpsertGoal)
			goals.GET("/:responsible", goalHandler.GetGoal)
			goals.DELETE("/:responsible", goalHandler.DeleteGoal)
		}

		// Measure routes
		measures := v1.Group("/measures")
		{
			measures.GET("", measureHandler.ListMeasures)
			measures.POST("", measureHandler.CreateMeasures)
			measures.PUT("", measureHandler.UpdateMeasure)
			measures.DELETE("", measureHandler.DeleteMeasure)
		}

		// Weekly cadence routes
		weeks := v1.Group("/weeks")
		{
			weeks.GET("", weekHandler.GetWeeks)
			weeks.POST("", weekHandler.RecordWeek)
			weeks.GET("/current", weekHandler.CurrentWeeks)
			weeks.POST("/current", weekHandler.CommitCurrentWeek)
			weeks.POST("/previous", weekHandler.ConfirmPreviousWeek)
		}

		v1.GET("/scoreboard", scoreboardHandler.GetScoreboard)
	}

	return router, nil
}
