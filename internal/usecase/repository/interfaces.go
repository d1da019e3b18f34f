package repository

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/repository_mock.go -package=mocks . BookRepository,UserRepository,Transactor,OutboxRepository

import (
	"context"
	"time"

	"github.com/project/lending/internal/entity"
)

type (
	// BookRepository is the catalog store contract. It carries no business
	// rules; copy counters are written exactly as given.
	BookRepository interface {
		GetByID(ctx context.Context, id string) (entity.Book, error)
		FindByTitleAuthor(ctx context.Context, title string, author string) (entity.Book, error)
		Search(ctx context.Context, query string) ([]entity.Book, error)
		ListAll(ctx context.Context) ([]entity.Book, error)
		Add(ctx context.Context, book entity.Book) (entity.Book, error)
		Update(ctx context.Context, book entity.Book) error
		Remove(ctx context.Context, id string) (bool, error)
	}

	// UserRepository stores users together with their active loans.
	// Update persists the user's current loan list as a whole.
	UserRepository interface {
		GetByID(ctx context.Context, id string) (entity.User, error)
		GetByUsername(ctx context.Context, username string) (entity.User, error)
		ListAll(ctx context.Context) ([]entity.User, error)
		Add(ctx context.Context, user entity.User) (entity.User, error)
		Update(ctx context.Context, user entity.User) error
		Remove(ctx context.Context, id string) (bool, error)
	}

	Transactor interface {
		WithTx(context.Context, func(ctx context.Context) error) error
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAsProcessed(ctx context.Context, idempotencyKeys []string) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindBook
	OutboxKindLoan
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindBook:
		return "book"
	case OutboxKindLoan:
		return "loan"
	default:
		return "undefined"
	}
}
