// File: aircnc/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aircnc/config"
	"aircnc/database"
	bookingRepo "aircnc/database/repository/booking"
	roomRepo "aircnc/database/repository/room"
	userRepo "aircnc/database/repository/user"
	"aircnc/handlers"
	"aircnc/middleware"
	"aircnc/routes"
	"aircnc/services/auth"
	"aircnc/services/booking"
	"aircnc/services/notification"
	"aircnc/services/payment"
	"aircnc/services/room"
	"aircnc/services/user"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := database.Database(client, cfg.DatabaseName)
	logger.Info("connected to MongoDB", zap.String("database", cfg.DatabaseName))

	cache, err := utils.InitCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if cache == nil {
		logger.Warn("REDIS_ADDR not set; payment intent replay cache disabled")
	}

	stripe.Key = cfg.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db, logger)
	rooms := roomRepo.NewMongoRoomRepo(db, logger)
	users := userRepo.NewMongoUserRepo(db, logger)

	// services.
	mailer, err := notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUser, cfg.MailPass, cfg.MailFromName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
	}
	notificationService, err := notification.NewDefaultNotificationService(mailer, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notifications: %v", err)
	}

	authService := auth.NewDefaultAuthService(cfg.JWTSecret)

	paymentService := &payment.DefaultPaymentService{
		Creator:  payment.NewStripeIntentCreator(),
		CacheTTL: cfg.PaymentIntentCacheTTL,
		Logger:   logger,
	}
	if cache != nil {
		paymentService.Cache = payment.NewRedisIntentCache(cache)
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookings,
		Notification: notificationService,
		Logger:       logger,
	}
	roomService := &room.DefaultRoomService{Repo: rooms, Logger: logger}
	userService := &user.DefaultUserService{Repo: users, Logger: logger}

	// health.
	checks := map[string]utils.HealthCheck{
		"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}
	if cache != nil {
		checks["redis"] = func(ctx context.Context) error { return cache.Ping(ctx).Err() }
	}
	monitor := utils.NewHealthMonitor(checks, 30*time.Second, logger)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	go monitor.Start(monitorCtx)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		IssueTokenHandler: authHandler.IssueTokenHandler,

		UpsertUserHandler:     userHandler.UpsertUserHandler,
		GetUserByEmailHandler: userHandler.GetUserByEmailHandler,

		CreateRoomHandler:    roomHandler.CreateRoomHandler,
		ListRoomsHandler:     roomHandler.ListRoomsHandler,
		ListHostRoomsHandler: roomHandler.ListHostRoomsHandler,
		GetRoomHandler:       roomHandler.GetRoomHandler,
		SetRoomStatusHandler: roomHandler.SetRoomStatusHandler,
		DeleteRoomHandler:    roomHandler.DeleteRoomHandler,

		CreateBookingHandler:     bookingHandler.CreateBookingHandler,
		ListGuestBookingsHandler: bookingHandler.ListGuestBookingsHandler,
		ListHostBookingsHandler:  bookingHandler.ListHostBookingsHandler,
		DeleteBookingHandler:     bookingHandler.DeleteBookingHandler,

		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,

		RootHandler:   handlers.RootHandler,
		HealthHandler: handlers.HealthHandler(monitor),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLoggerMiddleware(logger))
	router.Use(utils.ErrorHandler())
	router.Use(routes.CORSMiddleware(cfg.CORSAllowOrigins))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, authService)

	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("AirCnC server listening on %s", srv.Addr)
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
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	// Confirmation emails already accepted still get their chance to go out.
	mailCtx, mailCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer mailCancel()
	if err := notificationService.Wait(mailCtx); err != nil {
		logger.Warn("main: pending notifications abandoned", zap.Error(err))
	}

	if cache != nil {
		_ = cache.Close()
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
