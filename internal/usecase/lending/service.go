package lending

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/lending_mock.go -package=mocks . LendingUseCase

import (
	"context"
	"time"

	"github.com/project/lending/config"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"go.uber.org/zap"
)

// Refusal reasons, displayed verbatim by callers.
const (
	MsgUserNotFound     = "user not found"
	MsgBookNotFound     = "book not found"
	MsgBlockedByFine    = "borrowing is blocked until outstanding fines are paid"
	MsgBlockedByOverdue = "borrowing is blocked while overdue loans are held"
	MsgNoCopies         = "no copies available"
	MsgLimitReached     = "loan limit reached"
	MsgDuplicateLoan    = "this book is already on loan to the user"
	MsgNoActiveLoan     = "no active loan for this book"
	MsgBookReturned     = "book returned"
)

type LendingUseCase interface {
	Borrow(ctx context.Context, userID string, bookID string) (entity.LendingResult, error)
	Return(ctx context.Context, userID string, bookID string) (entity.LendingResult, error)
	ReturnAll(ctx context.Context, userID string) (entity.BulkReturnResult, error)
	CalculateFine(user entity.User) (float64, []entity.OverdueDetail)
	GetOverdueLoans(user entity.User) []entity.Loan
	FinesForUser(ctx context.Context, userID string) (float64, []entity.OverdueDetail, error)
	OverdueForUser(ctx context.Context, userID string) ([]entity.Loan, error)
}

var _ LendingUseCase = (*lendingImpl)(nil)

// lendingImpl is the only component allowed to create or destroy loans.
// Every loan mutation is paired with the matching copy-count update inside
// one transaction; without one, the loan-side write goes first so a crash
// under-counts availability instead of losing track of a held book.
type lendingImpl struct {
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
) *lendingImpl {
	return &lendingImpl{
		logger:           logger,
		transactor:       transactor,
		outboxRepository: outboxRepository,
		userRepository:   userRepository,
		bookRepository:   bookRepository,
		cfg:              cfg,
		now:              time.Now,
	}
}

func refused(message string) entity.LendingResult {
	return entity.LendingResult{OK: false, Message: message}
}

func granted(message string) entity.LendingResult {
	return entity.LendingResult{OK: true, Message: message}
}
