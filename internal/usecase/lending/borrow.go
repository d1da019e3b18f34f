package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/lending/config"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
)

func (l *lendingImpl) Borrow(ctx context.Context, userID string, bookID string) (entity.LendingResult, error) {
	l.logger.Info("Borrow request is being made to the database.")

	// One "today" for every date comparison within this call.
	today := entity.Midnight(l.now())

	var result entity.LendingResult

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		user, txErr := l.userRepository.GetByID(ctx, userID)
		if errors.Is(txErr, entity.ErrUserNotFound) {
			result = refused(MsgUserNotFound)
			return nil
		}
		if txErr != nil {
			return txErr
		}

		book, txErr := l.bookRepository.GetByID(ctx, bookID)
		if errors.Is(txErr, entity.ErrBookNotFound) {
			result = refused(MsgBookNotFound)
			return nil
		}
		if txErr != nil {
			return txErr
		}

		if msg, blocked := l.borrowBlocked(user, today); blocked {
			result = refused(msg)
			return nil
		}

		if book.AvailableCopies <= 0 {
			result = refused(MsgNoCopies)
			return nil
		}

		if len(user.Loans) >= l.cfg.MaxBooksPerUser {
			result = refused(MsgLimitReached)
			return nil
		}

		if user.HoldsBook(book.ID) {
			result = refused(MsgDuplicateLoan)
			return nil
		}

		dueDate := today.AddDate(0, 0, l.cfg.LoanPeriodDays).Format(entity.DateFormat)

		loan := entity.Loan{
			UserID:  user.ID,
			BookID:  book.ID,
			Title:   book.Title,
			DueDate: dueDate,
		}

		// Loan first, copy counter second.
		user.Loans = append(user.Loans, loan)
		if txErr = l.userRepository.Update(ctx, user); txErr != nil {
			return txErr
		}

		book.AvailableCopies--
		if txErr = l.bookRepository.Update(ctx, book); txErr != nil {
			return txErr
		}

		if txErr = l.sendLoanEvent(ctx, entity.LoanActionBorrowed, loan); txErr != nil {
			return txErr
		}

		result = granted(fmt.Sprintf("book %q issued, due %s", book.Title, dueDate))
		return nil
	})

	if err != nil {
		return entity.LendingResult{}, err
	}

	return result, nil
}

// borrowBlocked applies the configured eligibility policy against fines
// and overdue loans.
func (l *lendingImpl) borrowBlocked(user entity.User, today time.Time) (string, bool) {
	switch l.cfg.BlockPolicy {
	case config.BlockOnFine:
		if total, _ := l.fineAt(user, today); total > 0 {
			return MsgBlockedByFine, true
		}
	case config.BlockOnOverdue:
		if len(l.overdueAt(user, today)) > 0 {
			return MsgBlockedByOverdue, true
		}
	}
	return "", false
}

func (l *lendingImpl) sendLoanEvent(ctx context.Context, action string, loan entity.Loan) error {
	event := entity.LoanEvent{
		Action:  action,
		UserID:  loan.UserID,
		BookID:  loan.BookID,
		Title:   loan.Title,
		DueDate: loan.DueDate,
	}

	serialized, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return err
	}

	idempotencyKey := repository.OutboxKindLoan.String() + "_" + uuid.NewString()
	return l.outboxRepository.SendMessage(ctx, idempotencyKey, repository.OutboxKindLoan, serialized)
}
