// The worker tails the appointment event channel and logs every event. It is
// the integration point for downstream consumers (reminder senders, dashboard
// feeds) that subscribe to the same channel.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salonkit/scheduler-api/internal/config"
	"github.com/salonkit/scheduler-api/internal/scheduler"
	"github.com/salonkit/scheduler-api/pkg/logger"
	"github.com/salonkit/scheduler-api/pkg/messaging/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Redis.URL == "" {
		log.Fatal().Msg("redis.url is required for the event worker")
	}

	appLogger := logger.NewLogger(nil)

	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   3,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     5,
		MinIdleConns: 1,
	}, appLogger.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := broker.Subscribe(ctx, cfg.Redis.Channel)
	if err != nil {
		log.Fatal().Err(err).Str("channel", cfg.Redis.Channel).Msg("failed to subscribe")
	}
	appLogger.Info("listening for appointment events", "channel", cfg.Redis.Channel)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			log.Info().Msg("worker shutting down")
			return
		case payload, ok := <-messages:
			if !ok {
				log.Info().Msg("event channel closed")
				return
			}
			var event scheduler.Event
			if err := json.Unmarshal(payload, &event); err != nil {
				appLogger.Error(err, "failed to decode appointment event")
				continue
			}
			appLogger.Info("appointment event",
				"type", event.Type,
				"appointment_id", event.Appointment.ID,
				"staff_id", event.Appointment.StaffID,
				"status", string(event.Appointment.Status),
				"start_time", event.Appointment.StartTime.Format(time.RFC3339),
			)
		}
	}
}
