package main

import (
	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/config"
	"github.com/timetrackhq/timesheet-api/internal/database"
	"github.com/timetrackhq/timesheet-api/internal/handlers"
	"github.com/timetrackhq/timesheet-api/internal/logger"
	"github.com/timetrackhq/timesheet-api/internal/middleware"
	"github.com/timetrackhq/timesheet-api/internal/repository"
	"github.com/timetrackhq/timesheet-api/internal/services"
)

func main() {
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if cfg.SeedData {
		if err := database.Seed(database.GetDB()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	timesheetRepo := repository.NewTimesheetRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokenRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	timesheetService := services.NewTimesheetService(timesheetRepo, userRepo, projectRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Timesheet API is running",
		})
	})

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(authService))
		{
			protected.POST("/logout", authHandler.Logout)

			protected.GET("/users", userHandler.List)
			protected.POST("/users", userHandler.Create)
			protected.GET("/users/:id", userHandler.Get)
			protected.PUT("/users/update", userHandler.Update)
			protected.POST("/users/delete", userHandler.Delete)

			protected.GET("/projects", projectHandler.List)
			protected.POST("/projects", projectHandler.Create)
			protected.GET("/projects/:id", projectHandler.Get)
			protected.PUT("/projects/update", projectHandler.Update)
			protected.POST("/projects/delete", projectHandler.Delete)
			protected.POST("/projects/assign-user", projectHandler.AssignUser)

			protected.GET("/timesheets", timesheetHandler.List)
			protected.POST("/timesheets", timesheetHandler.Create)
			protected.GET("/timesheets/:id", timesheetHandler.Get)
			protected.PUT("/timesheets/update", timesheetHandler.Update)
			protected.POST("/timesheets/delete", timesheetHandler.Delete)
		}
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
