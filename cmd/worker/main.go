package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/mailer"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer logger.Sync(appLogger)
	appLogger.Info("Starting Portfolio Contact Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("KAFKA_BROKERS is required for the worker", nil)
	}

	smtpMailer := mailer.NewSMTPMailer(cfg, appLogger)
	if !smtpMailer.Configured() {
		appLogger.Warn("SMTP not configured, contact events will only be logged")
	}

	// Kafka Consumer
	contactConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer contactConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContactEvents), zap.String("group_id", cfg.Kafka.GroupID))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		msg, err := contactConsumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		log := appLogger.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)), zap.Int64("offset", msg.Offset))
		log.Info("Received message")

		payload, err := event.DecodeContactEvent(msg)
		if err != nil {
			log.Error("Failed to decode event, skipping", err)
			commitMessage(ctx, contactConsumer, msg, log)
			continue
		}

		if err := smtpMailer.Deliver(ctx, payload.Message); err != nil {
			if ctx.Err() != nil {
				// Left uncommitted so the group redelivers it after restart.
				appLogger.Info("Worker stopped")
				return
			}
			log.Error("Contact email dropped after retries", err,
				zap.String("event_id", payload.EventID), zap.String("reply_to", payload.Message.Email))
		}

		commitMessage(ctx, contactConsumer, msg, log)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
