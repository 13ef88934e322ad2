package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aptiva/config"
	"aptiva/cron"
	"aptiva/database"
	listingRepoPkg "aptiva/database/repository/listing"
	tourRepoPkg "aptiva/database/repository/tour"
	userRepoPkg "aptiva/database/repository/user"
	"aptiva/handlers"
	"aptiva/routes"
	"aptiva/services/calendar"
	ai "aptiva/services/intelligence"
	listingSvc "aptiva/services/listing"
	"aptiva/services/scheduling"
	"aptiva/services/tasks"
	"aptiva/services/user"
	"aptiva/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	listingService := &listingSvc.DefaultListingService{
		Repo: listingRepo,
	}

	calendarService, err := calendar.NewGoogleCalendarService(
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.CalendarMaxRetries,
		time.Duration(config.AppConfig.CalendarTimeoutSeconds)*time.Second,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	coordinator := &scheduling.Coordinator{
		Calendar:           calendarService,
		RenterCalendarID:   config.AppConfig.RenterCalendarID,
		LandlordCalendarID: config.AppConfig.LandlordCalendarID,
		RenterEmail:        config.AppConfig.RenterEmail,
	}

	slotOpts := scheduling.DefaultSlotOptions(
		config.AppConfig.SlotMinutes,
		config.AppConfig.BusinessStartHour,
		config.AppConfig.BusinessEndHour,
		config.AppConfig.LocalTZOffsetHrs,
		config.AppConfig.MaxSlots,
	)
	engine := &scheduling.Engine{
		Calendar:           calendarService,
		Coordinator:        coordinator,
		Opts:               slotOpts,
		RenterCalendarID:   config.AppConfig.RenterCalendarID,
		LandlordCalendarID: config.AppConfig.LandlordCalendarID,
	}

	// Gemini runs intent classification when an API key is configured;
	// otherwise the keyword classifier keeps the assistant usable offline.
	var classifier ai.Classifier
	if config.AppConfig.GeminiAPIKey != "" {
		classifier = ai.NewGeminiClassifier(config.AppConfig.GeminiAPIKey)
	} else {
		logger.Sugar().Warn("main: no Gemini API key configured, using rule-based classifier")
		classifier = &ai.RuleClassifier{Local: slotOpts.Local}
	}

	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	assistant := &ai.DefaultAssistantService{
		CtxStore:   ctxStore,
		Classifier: classifier,
		Engine:     engine,
		Listings:   listingService,
		Tours:      tourRepo,
		Reminders:  reminderScheduler,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Chat:    handlers.NewChatHandler(assistant),
		Tour:    handlers.NewTourHandler(tourRepo, coordinator),
		Listing: handlers.NewListingHandler(listingService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	cron.InitReminderWorker()
	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
	}, database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
