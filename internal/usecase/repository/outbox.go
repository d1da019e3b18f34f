package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ OutboxRepository = (*outboxRepository)(nil)

type outboxRepository struct {
	db *pgxpool.Pool
}

func NewOutbox(db *pgxpool.Pool) *outboxRepository {
	return &outboxRepository{db: db}
}

func (o *outboxRepository) SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error {
	const query = `
INSERT INTO outbox (idempotency_key, data, status, kind)
VALUES ($1, $2, 'CREATED', $3)
ON CONFLICT (idempotency_key) DO NOTHING
`

	_, err := pgxQ(ctx, o.db).Exec(ctx, query, idempotencyKey, message, kind)
	return err
}

// GetMessages claims a batch of unprocessed messages. Messages stuck in
// progress longer than inProgressTTL are claimed again, so a crashed worker
// never strands its batch.
func (o *outboxRepository) GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error) {
	const query = `
UPDATE outbox
SET status = 'IN_PROGRESS', updated_at = now()
WHERE idempotency_key IN (
    SELECT idempotency_key
    FROM outbox
    WHERE status = 'CREATED'
       OR (status = 'IN_PROGRESS' AND updated_at < now() - make_interval(secs => $2))
    ORDER BY created_at
    LIMIT $1
    FOR UPDATE SKIP LOCKED
)
RETURNING idempotency_key, kind, data
`

	rows, err := pgxQ(ctx, o.db).Query(ctx, query, batchSize, inProgressTTL.Seconds())
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	messages := make([]OutboxData, 0, batchSize)

	for rows.Next() {
		var data OutboxData
		if err := rows.Scan(&data.IdempotencyKey, &data.Kind, &data.RawData); err != nil {
			return nil, err
		}
		messages = append(messages, data)
	}

	return messages, rows.Err()
}

func (o *outboxRepository) MarkAsProcessed(ctx context.Context, idempotencyKeys []string) error {
	const query = `UPDATE outbox SET status = 'SUCCESS', updated_at = now() WHERE idempotency_key = ANY($1)`

	_, err := pgxQ(ctx, o.db).Exec(ctx, query, idempotencyKeys)
	return err
}

// NewNoopOutbox backs deployments without an outbox table (sqlite).
func NewNoopOutbox() *noopOutbox {
	return &noopOutbox{}
}

var _ OutboxRepository = (*noopOutbox)(nil)

type noopOutbox struct{}

func (o *noopOutbox) SendMessage(context.Context, string, OutboxKind, []byte) error {
	return nil
}

func (o *noopOutbox) GetMessages(context.Context, int, time.Duration) ([]OutboxData, error) {
	return []OutboxData{}, nil
}

func (o *noopOutbox) MarkAsProcessed(context.Context, []string) error {
	return nil
}
