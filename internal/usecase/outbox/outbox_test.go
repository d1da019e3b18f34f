package outbox

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/project/lending/config"
	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()

	data, err := jsoniter.ConfigFastest.Marshal(v)
	require.NoError(t, err)
	return data
}

// recorder collects what the kind handlers decoded and what got acknowledged.
type recorder struct {
	mx        sync.Mutex
	loans     []entity.LoanEvent
	books     []entity.Book
	processed []string
}

func (r *recorder) globalHandler(kind repository.OutboxKind) (KindHandler, error) {
	switch kind {
	case repository.OutboxKindLoan:
		return func(_ context.Context, data []byte) error {
			var event entity.LoanEvent
			if err := jsoniter.ConfigFastest.Unmarshal(data, &event); err != nil {
				return err
			}

			r.mx.Lock()
			defer r.mx.Unlock()

			r.loans = append(r.loans, event)
			return nil
		}, nil
	case repository.OutboxKindBook:
		return func(_ context.Context, data []byte) error {
			var book entity.Book
			if err := jsoniter.ConfigFastest.Unmarshal(data, &book); err != nil {
				return err
			}

			r.mx.Lock()
			defer r.mx.Unlock()

			r.books = append(r.books, book)
			return nil
		}, nil
	default:
		return nil, errors.New("unknown outbox kind")
	}
}

// drainingRepo hands out the queued messages once and records acknowledgements.
func drainingRepo(ctrl *gomock.Controller, rec *recorder, queue []repository.OutboxData) *mocks.MockOutboxRepository {
	outboxRepo := mocks.NewMockOutboxRepository(ctrl)

	outboxRepo.EXPECT().GetMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batchSize int, _ time.Duration) ([]repository.OutboxData, error) {
			rec.mx.Lock()
			defer rec.mx.Unlock()

			taken := min(batchSize, len(queue))
			batch := slices.Clone(queue[:taken])
			queue = queue[taken:]

			return batch, nil
		},
	).AnyTimes()

	outboxRepo.EXPECT().MarkAsProcessed(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, idempotencyKeys []string) error {
			rec.mx.Lock()
			defer rec.mx.Unlock()

			rec.processed = append(rec.processed, idempotencyKeys...)
			return nil
		},
	).AnyTimes()

	return outboxRepo
}

func runOutbox(ctx context.Context, outboxRepo *mocks.MockOutboxRepository, rec *recorder, transactor *mocks.MockTransactor, workers int, batchSize int) {
	cfg := &config.Config{Outbox: config.Outbox{Enabled: true}}

	outbox := New(zap.NewNop(), outboxRepo, rec.globalHandler, cfg, transactor)

	go outbox.Start(ctx, workers, batchSize, time.Millisecond, time.Millisecond)
}

func passthroughTx(transactor *mocks.MockTransactor) {
	transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, f func(ctx context.Context) error) error {
			return f(ctx)
		},
	).AnyTimes()
}

func TestOutboxDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	// No expectations set: a disabled outbox must never touch the repository.
	outboxRepo := mocks.NewMockOutboxRepository(ctrl)
	transactor := mocks.NewMockTransactor(ctrl)
	cfg := &config.Config{Outbox: config.Outbox{Enabled: false}}

	outbox := New(zap.NewNop(), outboxRepo, (&recorder{}).globalHandler, cfg, transactor)

	outbox.Start(context.Background(), 1, 1, time.Millisecond, time.Millisecond)
}

func TestOutboxDelivery(t *testing.T) {
	t.Parallel()

	borrowed := entity.LoanEvent{Action: entity.LoanActionBorrowed, UserID: "AB1234", BookID: "b1", Title: "Dune", DueDate: "2025-03-24"}
	returned := entity.LoanEvent{Action: entity.LoanActionReturned, UserID: "AB1234", BookID: "b1", Title: "Dune", DueDate: "2025-03-24"}
	added := entity.Book{ID: "b2", Title: "Emma", Author: "Jane Austen", Year: 1815, Genre: "Romance", TotalCopies: 1, AvailableCopies: 1}

	ctrl := gomock.NewController(t)
	rec := &recorder{}

	queue := []repository.OutboxData{
		{IdempotencyKey: "k1", Kind: repository.OutboxKindLoan, RawData: mustMarshal(t, borrowed)},
		{IdempotencyKey: "k2", Kind: repository.OutboxKindLoan, RawData: mustMarshal(t, returned)},
		{IdempotencyKey: "k3", Kind: repository.OutboxKindBook, RawData: mustMarshal(t, added)},
		{IdempotencyKey: "k4", Kind: repository.OutboxKindUndefined, RawData: mustMarshal(t, added)},
		{IdempotencyKey: "k5", Kind: repository.OutboxKindLoan, RawData: []byte("{broken")},
	}

	transactor := mocks.NewMockTransactor(ctrl)
	passthroughTx(transactor)

	ctx, cancel := context.WithCancel(context.Background())

	runOutbox(ctx, drainingRepo(ctrl, rec, queue), rec, transactor, 1, 2)

	time.Sleep(500 * time.Millisecond)
	cancel()

	rec.mx.Lock()
	defer rec.mx.Unlock()

	require.Equal(t, []entity.LoanEvent{borrowed, returned}, rec.loans)
	require.Equal(t, []entity.Book{added}, rec.books)

	// The unresolvable kind and the corrupt payload stay unacknowledged.
	slices.Sort(rec.processed)
	require.Equal(t, []string{"k1", "k2", "k3"}, rec.processed)
}

func TestOutboxWorkers(t *testing.T) {
	t.Parallel()

	const messagesCount = 100

	ctrl := gomock.NewController(t)
	rec := &recorder{}

	event := entity.LoanEvent{Action: entity.LoanActionBorrowed, UserID: "AB1234", BookID: "b1", Title: "Dune", DueDate: "2025-03-24"}
	raw := mustMarshal(t, event)

	queue := make([]repository.OutboxData, 0, messagesCount)
	for i := 0; i < messagesCount; i++ {
		queue = append(queue, repository.OutboxData{
			IdempotencyKey: strconv.Itoa(i),
			Kind:           repository.OutboxKindLoan,
			RawData:        raw,
		})
	}

	transactor := mocks.NewMockTransactor(ctrl)
	passthroughTx(transactor)

	ctx, cancel := context.WithCancel(context.Background())

	runOutbox(ctx, drainingRepo(ctrl, rec, queue), rec, transactor, 10, 5)

	time.Sleep(time.Second)
	cancel()

	rec.mx.Lock()
	defer rec.mx.Unlock()

	require.Len(t, rec.loans, messagesCount)
	require.Len(t, rec.processed, messagesCount)
}