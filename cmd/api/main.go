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
	"golang.org/x/time/rate"

	"github.com/salonkit/scheduler-api/internal/config"
	"github.com/salonkit/scheduler-api/internal/grid"
	"github.com/salonkit/scheduler-api/internal/handler"
	appointmentHandler "github.com/salonkit/scheduler-api/internal/handler/appointment"
	calendarHandler "github.com/salonkit/scheduler-api/internal/handler/calendar"
	directoryHandler "github.com/salonkit/scheduler-api/internal/handler/directory"
	"github.com/salonkit/scheduler-api/internal/middleware"
	"github.com/salonkit/scheduler-api/internal/repository/postgres"
	"github.com/salonkit/scheduler-api/internal/router"
	"github.com/salonkit/scheduler-api/internal/scheduler"
	directoryService "github.com/salonkit/scheduler-api/internal/service/directory"
	"github.com/salonkit/scheduler-api/pkg/logger"
	"github.com/salonkit/scheduler-api/pkg/messaging"
	"github.com/salonkit/scheduler-api/pkg/messaging/redis"
	"github.com/salonkit/scheduler-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories (persistence and directory collaborators)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	clientRepo := postgres.NewClientRepository(db)

	// Event broker is optional: leave redis.url empty to run without it.
	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redis.NewRedisBroker(redis.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, appLogger.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()
	}

	m := metrics.NewMetrics("salon", "scheduler")

	directorySvc := directoryService.NewService(
		serviceRepo, staffRepo, clientRepo,
		time.Duration(cfg.Calendar.DirectoryTTLSec)*time.Second,
	)
	store := scheduler.NewStore(appointmentRepo, m)
	schedulerSvc := scheduler.New(store, appointmentRepo, directorySvc, broker, cfg.Redis.Channel, m)

	hours := grid.BusinessHours{
		StartHour: cfg.Calendar.DayStartHour,
		EndHour:   cfg.Calendar.DayEndHour,
	}

	h := handler.NewHandler(db)
	r := router.NewRouter(h, router.Config{
		RateLimit:      rate.Limit(cfg.Server.RateLimitRPS),
		RateBurst:      cfg.Server.RateLimitBurst,
		RequestTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig:     middleware.DefaultCORSConfig(),
		MetricsPrefix:  "salon_scheduler",
	},
		appointmentHandler.NewHandler(schedulerSvc),
		calendarHandler.NewHandler(store, directorySvc, hours),
		directoryHandler.NewHandler(directorySvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
