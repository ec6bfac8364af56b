package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/config"
	"atelier/cron"
	"atelier/database"
	bookingRepo "atelier/database/repository/booking"
	chatlogRepo "atelier/database/repository/chatlog"
	contentRepo "atelier/database/repository/content"
	credentialRepo "atelier/database/repository/credential"
	memberRepo "atelier/database/repository/member"
	"atelier/handlers"
	"atelier/middleware"
	"atelier/routes"
	"atelier/services/auth"
	"atelier/services/booking"
	"atelier/services/chat"
	"atelier/services/content"
	"atelier/services/member"
	"atelier/services/schedule"
	"atelier/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// sitePrompt grounds the chat concierge in what the studio actually offers.
const sitePrompt = `You are the assistant for a personal design studio website.
Answer questions about the portfolio, services and availability briefly and
warmly. When a visitor wants to meet, point them at the booking page.`

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatContextCache()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	credRepo := credentialRepo.NewMongoCredentialRepo()
	contRepo := contentRepo.NewMongoContentRepo()
	chatRepo := chatlogRepo.NewMongoChatLogRepo()
	membRepo := memberRepo.NewMongoMemberRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()

	// credential gate with its attempt sweeper.
	attempts := auth.NewAttemptStore()
	attempts.StartSweeper(ctx)
	gate := auth.NewCredentialGate(credRepo, attempts)
	if seed := os.Getenv("ADMIN_INITIAL_PASSWORD"); seed != "" {
		if err := gate.SeedSecret(ctx, seed); err != nil {
			logger.Sugar().Fatalf("main: failed to seed admin credential: %v", err)
		}
	}

	// booking engine against the live calendar.
	calendarClient, err := booking.NewGoogleCalendarClient(ctx,
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.GoogleCalendarID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}
	bookingService := &booking.DefaultBookingService{
		Calendar:  calendarClient,
		Calc:      schedule.NewCalculator(),
		Repo:      bookRepo,
		Reminders: booking.NewReminderScheduler(),
	}

	// chat concierge.
	gemini, err := chat.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	chatService := &chat.DefaultChatService{
		Gen:        gemini,
		Context:    chat.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute),
		Log:        chatRepo,
		SitePrompt: sitePrompt,
	}

	contentService := &content.DefaultContentService{Repo: contRepo}
	memberService := &member.DefaultMemberService{Repo: membRepo, Content: contRepo}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media storage: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(gate),
		Calendar: handlers.NewCalendarHandler(bookingService, bookRepo),
		Chat:     handlers.NewChatHandler(chatService),
		Content:  handlers.NewContentHandler(contentService),
		Member:   handlers.NewMemberHandler(memberService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatContextClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
