package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SanjayFlutterTrainer/post-server/internal/api"
	"github.com/SanjayFlutterTrainer/post-server/internal/auth"
	"github.com/SanjayFlutterTrainer/post-server/internal/config"
	"github.com/SanjayFlutterTrainer/post-server/internal/database"
	"github.com/SanjayFlutterTrainer/post-server/internal/logger"
	"github.com/SanjayFlutterTrainer/post-server/internal/services"
	"github.com/SanjayFlutterTrainer/post-server/internal/websocket"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// The token manager owns the signing secret; nothing else in the process
	// holds it.
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up the activity feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(db, hub)
	userService := services.NewUserService(db)
	taskService := services.NewTaskService(db, eventService)
	postService := services.NewPostService(db, eventService)
	productService := services.NewProductService(db, eventService)
	cartService := services.NewCartService(db, eventService)
	feedbackService := services.NewFeedbackService(db)

	// Set up router
	router := api.NewRouter(api.RouterDeps{
		Tokens:   tokens,
		Hub:      hub,
		Users:    userService,
		Tasks:    taskService,
		Posts:    postService,
		Products: productService,
		Cart:     cartService,
		Feedback: feedbackService,
		Events:   eventService,

		AllowedOrigin: cfg.FrontendURL,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
