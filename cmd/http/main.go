package main

import (
	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"
	"clinicbook-service/internal/app/delivery/http/routers"
	"clinicbook-service/internal/app/drivers/database"
	"clinicbook-service/internal/app/drivers/logger"
	"clinicbook-service/internal/app/drivers/messaging"
	"clinicbook-service/internal/app/services/core/auth"
	"clinicbook-service/internal/app/services/core/availability"
	"clinicbook-service/internal/app/services/core/holidays"
	"clinicbook-service/internal/app/services/core/schedule"
	"clinicbook-service/internal/app/services/scheduling_api/appointments"
	authClient "clinicbook-service/internal/app/services/scheduling_api/auth"
	availabilityClient "clinicbook-service/internal/app/services/scheduling_api/availability"
	"clinicbook-service/internal/app/services/scheduling_api/blocked_dates"
	holidayClient "clinicbook-service/internal/app/services/scheduling_api/holidays"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/app/services/shared/events"
	"clinicbook-service/internal/app/services/shared/locker"
	"clinicbook-service/internal/app/services/shared/ratelimiter"
	"clinicbook-service/internal/app/services/shared/redis"
	"clinicbook-service/internal/app/services/shared/session"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	normalizer, err := utils.NewDateNormalizerFromName(internalConfig.App.Timezone)
	if err != nil {
		logger.Fatal("Error loading timezone",
			zap.String(constvars.LoggingTimezoneKey, internalConfig.App.Timezone),
			zap.Error(err))
	}

	var redisClient *goredis.Client
	if driverConfig.Redis.Enabled {
		redisClient = database.NewRedisClient(driverConfig)
	}
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         logger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	bootstrapingTheApp(workerCtx, bootstrap, normalizer)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", server.Addr),
			zap.String(constvars.LoggingTimezoneKey, normalizer.Location().String()))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	cancelWorker()
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while shutting down: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, normalizer utils.DateNormalizer) {
	app := bootstrap.InternalConfig.App
	requestTimeout := time.Duration(app.RequestTimeoutInSeconds) * time.Second

	// Redis
	var (
		redisRepository contracts.RedisRepository
		lockerService   contracts.LockerService
		sessionStore    contracts.SessionStore
		loginLimiter    contracts.LoginLimiter
	)
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(redisRepository, bootstrap.Logger)
		sessionStore = session.NewRedisStore(redisRepository, bootstrap.Logger)
		loginLimiter = ratelimiter.NewLoginLimiter(
			redisRepository,
			bootstrap.Logger,
			time.Duration(app.LoginWindowInSeconds)*time.Second,
			app.LoginMaxAttempts,
		)
	} else {
		bootstrap.Logger.Warn("REDIS_ENABLED is false, sessions are kept in memory and holidays are not cached")
		sessionStore = session.NewMemoryStore()
	}

	// Scheduling api
	schedulingTransport := transport.NewClient(
		bootstrap.InternalConfig.SchedulingAPI.BaseUrl,
		time.Duration(bootstrap.InternalConfig.SchedulingAPI.HTTPTimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)
	appointmentAPIClient := appointments.NewAppointmentClient(schedulingTransport, bootstrap.Logger)
	availabilityAPIClient := availabilityClient.NewAvailabilityClient(schedulingTransport, bootstrap.Logger)
	blockedDateAPIClient := blocked_dates.NewBlockedDateClient(schedulingTransport, bootstrap.Logger)
	holidayAPIClient := holidayClient.NewHolidayClient(schedulingTransport, bootstrap.Logger)
	authAPIClient := authClient.NewAuthClient(schedulingTransport, bootstrap.Logger)

	// Holidays
	holidayUsecase := holidays.NewHolidayUsecase(
		holidayAPIClient,
		redisRepository,
		time.Duration(app.HolidayCacheTTLInHours)*time.Hour,
		bootstrap.Logger,
	)
	if serviceToken := bootstrap.InternalConfig.SchedulingAPI.ServiceToken; serviceToken != "" && lockerService != nil {
		worker := holidays.NewWorker(
			bootstrap.Logger,
			app.HolidayRefreshCronSpec,
			session.StaticTokenSource(serviceToken),
			lockerService,
			holidayUsecase,
		)
		worker.Start(ctx)
		bootstrap.WorkerStop = worker.Stop
	} else {
		bootstrap.Logger.Warn("Holiday refresh worker disabled, it needs SCHEDULING_API_SERVICE_TOKEN and redis")
	}

	// Events
	bootstrap.Publisher = newEventPublisher(bootstrap)

	// Schedule
	availabilityValidator := availability.NewValidator(normalizer)
	registry := schedule.NewRegistry(func(sessionID string) *schedule.ViewModel {
		owner := ""
		if found, err := sessionStore.Find(ctx, sessionID); err == nil {
			owner = found.Claims.UserID
		}
		return schedule.NewViewModel(schedule.Config{
			Normalizer:   normalizer,
			Tokens:       session.NewStoreTokenSource(sessionStore, sessionID),
			Appointments: appointmentAPIClient,
			Availability: availabilityAPIClient,
			BlockedDates: blockedDateAPIClient,
			Holidays:     holidayUsecase,
			Validator:    availabilityValidator,
			Publisher:    bootstrap.Publisher,
			Owner:        owner,
			Log:          bootstrap.Logger,
		})
	}, time.Duration(app.ViewModelIdleTimeoutInMinutes)*time.Minute)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		authAPIClient,
		sessionStore,
		loginLimiter,
		registry,
		time.Duration(app.SessionExpiredTimeInHours)*time.Hour,
		bootstrap.Logger,
	)

	// Middlewares
	mutationLimiter := middlewares.NewSessionRateLimiter(
		bootstrap.Logger,
		app.MutationsPerSecond,
		time.Second,
		5*time.Second,
		time.Duration(app.ViewModelIdleTimeoutInMinutes)*time.Minute,
	)
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig, mutationLimiter)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, requestTimeout)
	authController.OnLogout = mutationLimiter.Forget

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Auth:         authController,
		Calendar:     controllers.NewCalendarController(bootstrap.Logger, registry, requestTimeout),
		Appointment:  controllers.NewAppointmentController(bootstrap.Logger, registry, requestTimeout),
		Availability: controllers.NewAvailabilityController(bootstrap.Logger, registry, requestTimeout),
		BlockedDate:  controllers.NewBlockedDateController(bootstrap.Logger, registry, requestTimeout),
		Holiday:      controllers.NewHolidayController(bootstrap.Logger, holidayUsecase, requestTimeout),
	})
}

func newEventPublisher(bootstrap *config.Bootstrap) contracts.EventPublisher {
	if !bootstrap.InternalConfig.App.EventsEnabled {
		return events.NewNoopPublisher(bootstrap.Logger)
	}

	conn, err := messaging.NewRabbitMQ(bootstrap.DriverConfig)
	if err != nil {
		bootstrap.Logger.Error("Error connecting to RabbitMQ, schedule events disabled", zap.Error(err))
		return events.NewNoopPublisher(bootstrap.Logger)
	}
	bootstrap.RabbitMQ = conn

	publisher, err := events.NewRabbitMQPublisher(conn, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Error("Error opening schedule event channel, schedule events disabled", zap.Error(err))
		return events.NewNoopPublisher(bootstrap.Logger)
	}
	return publisher
}
