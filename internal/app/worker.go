package app

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

// RunOutboxWorker drains the in-memory outbox to Kafka until ctx is done.
// Without KAFKA_BROKER it returns immediately.
func (a *App) RunOutboxWorker(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.worker")
	if cfg.Kafka.Broker == "" {
		logger.Info("KAFKA_BROKER not set, employee events stay in the outbox")
		return nil
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(ctx, cfg.Kafka.Broker, 5)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, kafkaWriter.Close)

	go producer.ProcessOutboxEvents(
		ctx,
		a.modules.outbox,
		kafkaWriter,
		logger,
		cfg.Kafka.PollInterval,
	)
	return nil
}
