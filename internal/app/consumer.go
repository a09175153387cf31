package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/events"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer fans attendance and rating events out to the notification
// channel. One reader per topic, same consumer group.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	notifier := consumer.LogNotifier{Logger: logger.Named("notifier")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topics := []string{
		events.AttendanceRecordedTopic,
		events.RatingSubmittedTopic,
	}

	readers := make([]*kafkago.Reader, 0, len(topics))
	for _, topic := range topics {
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{kafkaBroker},
			Topic:          topic,
			GroupID:        "ushering-notifications",
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
		readers = append(readers, reader)

		go consumer.ConsumeNotifications(ctx, reader, notifier, logger)
	}
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
