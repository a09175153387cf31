package consumer

import (
	"context"
	"encoding/json"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier abstracts the delivery channel (WhatsApp/push gateway). The core
// never calls it inline; only this consumer does, off the request path.
type Notifier interface {
	NotifyAttendance(ctx context.Context, event events.AttendanceRecordedEvent) error
	NotifyRating(ctx context.Context, event events.RatingSubmittedEvent) error
}

// LogNotifier is the default delivery channel: it only logs. Real gateways
// are wired by the deployment, not by this repo.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) NotifyAttendance(_ context.Context, event events.AttendanceRecordedEvent) error {
	n.Logger.Info("attendance notification",
		zap.String("event_type", event.EventType),
		zap.String("gig_id", event.GigID),
		zap.String("usher_id", event.UsherID),
	)
	return nil
}

func (n LogNotifier) NotifyRating(_ context.Context, event events.RatingSubmittedEvent) error {
	n.Logger.Info("rating notification",
		zap.String("event_type", event.EventType),
		zap.String("gig_id", event.GigID),
		zap.String("usher_id", event.UsherID),
		zap.Float64("final_rating", event.FinalRating),
	)
	return nil
}

// ConsumeNotifications drains the attendance and rating topics and forwards
// each event to the notifier. Failed deliveries are not committed so they
// are retried; decode failures are committed and dropped.
func ConsumeNotifications(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		if err := dispatch(ctx, notifier, msg); err != nil {
			log.Error("deliver notification failed",
				zap.String("topic", msg.Topic),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
		}
	}
}

func dispatch(ctx context.Context, notifier Notifier, msg kafkago.Message) error {
	switch msg.Topic {
	case events.AttendanceRecordedTopic:
		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return nil // poison message, drop
		}
		return notifier.NotifyAttendance(ctx, event)
	case events.RatingSubmittedTopic:
		var event events.RatingSubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return nil
		}
		return notifier.NotifyRating(ctx, event)
	default:
		return nil
	}
}
