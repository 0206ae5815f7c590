package consumer

import (
	"context"
	"errors"
	"time"

	"go-hrms/internal/shared/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HandleFunc processes one message. Returning ErrSkip commits the message
// without further work; any other error retries the same message.
type HandleFunc func(ctx context.Context, msg kafkago.Message) error

var ErrSkip = errors.New("skip message")

// Offsets are positional, so a failed message is retried in place until it
// succeeds or is skipped. Committing a later message would lose it.
var newRetryBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Run fetches, handles and commits messages until ctx is cancelled.
func Run(ctx context.Context, reader MessageReader, handle HandleFunc, log *zap.Logger) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.String("key", string(msg.Key)),
		}

		if err := handleWithRetry(ctx, msg, handle, log.With(fields...)); err != nil {
			if !errors.Is(err, ErrSkip) {
				log.Info("consumer stopped with message uncommitted", append(fields, zap.Error(err))...)
				return
			}
			log.Warn("message skipped", append(fields, zap.Error(err))...)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", append(fields, zap.Error(err))...)
		}
	}
}

// handleWithRetry returns nil, an ErrSkip error, or the context error once ctx is done.
func handleWithRetry(ctx context.Context, msg kafkago.Message, handle HandleFunc, log *zap.Logger) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := handle(ctx, msg)
		if errors.Is(err, ErrSkip) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Error("handle message failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(newRetryBackOff(), ctx), notify)
	if err != nil && !errors.Is(err, ErrSkip) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// isDuplicate reports a conflict raised by a service or a unique violation from postgres.
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeConflict
}
