package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/project/lending/config"
	"github.com/project/lending/internal/usecase/repository"
	"go.uber.org/zap"
)

type (
	// GlobalHandler resolves the delivery handler for an outbox kind.
	GlobalHandler func(kind repository.OutboxKind) (KindHandler, error)
	KindHandler   func(ctx context.Context, data []byte) error
)

type outboxImpl struct {
	logger           *zap.Logger
	outboxRepository repository.OutboxRepository
	globalHandler    GlobalHandler
	cfg              *config.Config
	transactor       repository.Transactor
}

func New(
	logger *zap.Logger,
	outboxRepository repository.OutboxRepository,
	globalHandler GlobalHandler,
	cfg *config.Config,
	transactor repository.Transactor,
) *outboxImpl {
	return &outboxImpl{
		logger:           logger,
		outboxRepository: outboxRepository,
		globalHandler:    globalHandler,
		cfg:              cfg,
		transactor:       transactor,
	}
}

// Start runs the worker pool until the context is cancelled. Messages a
// handler rejects stay unacknowledged and come back after the in-progress
// TTL expires.
func (o *outboxImpl) Start(
	ctx context.Context,
	workers int,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	if !o.cfg.Outbox.Enabled {
		return
	}

	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.worker(ctx, batchSize, waitTime, inProgressTTL)
		}()
	}

	wg.Wait()
}

func (o *outboxImpl) worker(
	ctx context.Context,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := o.transactor.WithTx(ctx, func(ctx context.Context) error {
			messages, err := o.outboxRepository.GetMessages(ctx, batchSize, inProgressTTL)

			if err != nil {
				return err
			}

			successKeys := make([]string, 0, len(messages))

			for _, message := range messages {
				handler, err := o.globalHandler(message.Kind)

				if err != nil {
					o.logger.Error("can not resolve outbox handler", zap.Error(err))
					continue
				}

				if err := handler(ctx, message.RawData); err != nil {
					o.logger.Error("outbox handler failed", zap.Error(err))
					continue
				}

				successKeys = append(successKeys, message.IdempotencyKey)
			}

			if len(successKeys) > 0 {
				return o.outboxRepository.MarkAsProcessed(ctx, successKeys)
			}

			return nil
		})

		if err != nil {
			o.logger.Debug("outbox iteration failed", zap.Error(err))
		}

		time.Sleep(waitTime)
	}
}
