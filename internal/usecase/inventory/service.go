package inventory

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/inventory_mock.go -package=mocks . InventoryUseCase

import (
	"context"
	"time"

	"github.com/project/lending/config"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"go.uber.org/zap"
)

const (
	MsgUserNotFound  = "user not found"
	MsgBookNotFound  = "book not found"
	MsgUserDeleted   = "user deleted"
	MsgBookDeleted   = "book deleted"
	MsgUserHoldsBook = "cannot delete: user still holds borrowed books"
)

type InventoryUseCase interface {
	AddBook(ctx context.Context, title string, author string, year int, genre string) (entity.Book, error)
	Search(ctx context.Context, query string) ([]entity.Book, error)
	BatchDelete(ctx context.Context, bookIDs []string) (entity.BatchDeleteResult, error)
	SafeDeleteBook(ctx context.Context, bookID string) (entity.DeleteResult, error)
	SafeDeleteUser(ctx context.Context, userID string) (entity.DeleteResult, error)
	CandidatesByAuthor(ctx context.Context, author string) ([]entity.Book, error)
	CandidatesByGenre(ctx context.Context, genre string, exact bool) ([]entity.Book, error)
	CandidatesByYearBefore(ctx context.Context, year int) ([]entity.Book, error)
	LostBookCandidates(ctx context.Context) ([]entity.Book, error)
}

var _ InventoryUseCase = (*inventoryImpl)(nil)

// inventoryImpl owns the catalog rule that one title+author pair maps to a
// single entry with a copy count, plus the safety checks around deletions.
type inventoryImpl struct {
	logger           *zap.Logger
	transactor       repository.Transactor
	outboxRepository repository.OutboxRepository
	userRepository   repository.UserRepository
	bookRepository   repository.BookRepository
	cfg              config.Lending
	now              func() time.Time
}

func New(
	logger *zap.Logger,
	transactor repository.Transactor,
	outboxRepository repository.OutboxRepository,
	userRepository repository.UserRepository,
	bookRepository repository.BookRepository,
	cfg config.Lending,
) *inventoryImpl {
	return &inventoryImpl{
		logger:           logger,
		transactor:       transactor,
		outboxRepository: outboxRepository,
		userRepository:   userRepository,
		bookRepository:   bookRepository,
		cfg:              cfg,
		now:              time.Now,
	}
}
