package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-academy/internal/events"
	"go-academy/internal/shared/apperror"
	"go-academy/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// BoardRefresher rebuilds the cached board of one tenant and day.
type BoardRefresher interface {
	Refresh(ctx context.Context, tenantID, dayKey string) error
}

const (
	DefaultRefreshAttempts = 3
	DefaultRefreshBackoff  = 500 * time.Millisecond
)

type Option func(*options)

type options struct {
	attempts int
	backoff  time.Duration
}

// WithRetry sets how often a failing refresh is tried per message and the first backoff,
// which doubles after each attempt.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.attempts = attempts
		}
		if backoff > 0 {
			o.backoff = backoff
		}
	}
}

// ConsumeAttendanceRecorded refreshes the cached board for every recorded attendance event.
// A message is committed once its board is cached, or when it can never succeed. A refresh
// that keeps failing is retried in place and then skipped uncommitted; the next event for
// the same tenant and day rebuilds the whole board.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	refresher BoardRefresher,
	logger *zap.Logger,
	opts ...Option,
) {
	o := options{attempts: DefaultRefreshAttempts, backoff: DefaultRefreshBackoff}
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.TenantID == "" || event.AttendanceDate == "" {
			log.Warn("attendance_recorded event without tenant or date, skipping",
				zap.String("event_id", event.EventID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := contextutil.WithRequestID(ctx, requestID(msg, event))
		if err := refreshWithRetry(msgCtx, refresher, event, o, log); err != nil {
			if isPermanent(err) {
				log.Warn("attendance board refresh rejected, skipping",
					zap.String("tenant_id", event.TenantID),
					zap.String("date", event.AttendanceDate),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("refresh attendance board failed, giving up on message",
				zap.String("tenant_id", event.TenantID),
				zap.String("date", event.AttendanceDate),
				zap.Int("attempts", o.attempts),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
			continue
		}

		log.Info("attendance board refreshed",
			zap.String("tenant_id", event.TenantID),
			zap.String("date", event.AttendanceDate),
			zap.String("event_id", event.EventID),
		)
	}
}

func refreshWithRetry(ctx context.Context, refresher BoardRefresher, event events.AttendanceRecordedEvent, o options, log *zap.Logger) error {
	backoff := o.backoff
	for attempt := 1; ; attempt++ {
		err := refresher.Refresh(ctx, event.TenantID, event.AttendanceDate)
		if err == nil || isPermanent(err) || attempt >= o.attempts {
			return err
		}
		log.Warn("refresh attendance board failed, retrying",
			zap.String("tenant_id", event.TenantID),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
		backoff *= 2
	}
}

func requestID(msg kafkago.Message, event events.AttendanceRecordedEvent) string {
	for _, h := range msg.Headers {
		if h.Key == "request_id" && len(h.Value) > 0 {
			return string(h.Value)
		}
	}
	return event.RequestID
}

// isPermanent reports client-side errors, which retrying the same message cannot fix.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus < 500
}
