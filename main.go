package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assignment-tracker/config"
	"assignment-tracker/constants"
	"assignment-tracker/controllers"
	"assignment-tracker/infra"
	"assignment-tracker/middlewares"
	"assignment-tracker/models"
	"assignment-tracker/observability"
	"assignment-tracker/repositories"
	"assignment-tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, cfg)
	authController := controllers.NewAuthController(authService)

	assignmentRepository := repositories.NewAssignmentRepository(db)
	submissionRepository := repositories.NewSubmissionRepository(db)
	assignmentService := services.NewAssignmentService(assignmentRepository, submissionRepository)
	assignmentController := controllers.NewAssignmentController(assignmentService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(observability.Middleware())
	r.Use(cors.Default())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/signup", authController.Signup)
	r.POST("/token", authController.Login)
	r.POST("/login", authController.Login)

	teacherRouter := r.Group("/assignments", middlewares.AuthMiddleware(authService), middlewares.RoleBasedAccessControl(constants.RoleTeacher))
	studentRouter := r.Group("/assignments", middlewares.AuthMiddleware(authService), middlewares.RoleBasedAccessControl(constants.RoleStudent))

	teacherRouter.POST("", assignmentController.Create)
	teacherRouter.GET("/:id/submissions", assignmentController.FindSubmissions)
	studentRouter.POST("/:id/submit", assignmentController.Submit)

	return r
}

func initDB() *gorm.DB {
	db := infra.SetupDB()

	targetDBName := "assignment_tracker"
	currentDBName := os.Getenv("DB_NAME")

	if currentDBName == "postgres" {
		var exists int
		db.Raw("SELECT 1 FROM pg_database WHERE datname = ?", targetDBName).Scan(&exists)
		if exists == 0 {
			if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", targetDBName)).Error; err != nil {
				log.Error().Err(err).Msg("failed to create database")
			} else {
				log.Info().Str("db", targetDBName).Msg("created database")
			}
		}

		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if os.Getenv("ENV") == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Tokyo connect_timeout=10",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			targetDBName,
			os.Getenv("DB_PORT"),
			sslmode,
		)

		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal().Err(err).Str("db", targetDBName).Msg("failed to connect to database")
		}
		log.Info().Str("db", targetDBName).Msg("connected to database")
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Assignment{}, &models.Submission{}); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	return db
}

func main() {
	infra.Initialize()
	infra.SetupLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db := initDB()
	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
