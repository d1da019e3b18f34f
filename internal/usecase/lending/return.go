package lending

import (
	"context"
	"errors"
	"fmt"

	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

func (l *lendingImpl) Return(ctx context.Context, userID string, bookID string) (entity.LendingResult, error) {
	l.logger.Info("Return request is being made to the database.")

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

		loanIdx := -1
		for i, loan := range user.Loans {
			if loan.BookID == bookID {
				loanIdx = i
				break
			}
		}

		if loanIdx == -1 {
			result = refused(MsgNoActiveLoan)
			return nil
		}

		returned := user.Loans[loanIdx]
		user.Loans = append(user.Loans[:loanIdx], user.Loans[loanIdx+1:]...)

		// Loan removal first, copy counter second.
		if txErr = l.userRepository.Update(ctx, user); txErr != nil {
			return txErr
		}

		book, txErr := l.bookRepository.GetByID(ctx, bookID)
		switch {
		case errors.Is(txErr, entity.ErrBookNotFound):
			// Orphaned loan: the book left the catalog, nothing to restock.
		case txErr != nil:
			return txErr
		default:
			book.AvailableCopies++
			if book.AvailableCopies > book.TotalCopies {
				// Clamp against drift from concurrent catalog edits.
				book.AvailableCopies = book.TotalCopies
			}
			if txErr = l.bookRepository.Update(ctx, book); txErr != nil {
				return txErr
			}
		}

		if txErr = l.sendLoanEvent(ctx, entity.LoanActionReturned, returned); txErr != nil {
			return txErr
		}

		result = granted(MsgBookReturned)
		return nil
	})

	if err != nil {
		return entity.LendingResult{}, err
	}

	return result, nil
}

// ReturnAll returns every active loan of the user, one return at a time.
// A failing return does not stop the rest; the count reports how many
// actually came back.
func (l *lendingImpl) ReturnAll(ctx context.Context, userID string) (entity.BulkReturnResult, error) {
	user, err := l.userRepository.GetByID(ctx, userID)
	if errors.Is(err, entity.ErrUserNotFound) {
		return entity.BulkReturnResult{Count: 0, Message: MsgUserNotFound}, nil
	}
	if err != nil {
		return entity.BulkReturnResult{}, err
	}

	// Snapshot: Return mutates the stored loan list.
	loans := make([]entity.Loan, len(user.Loans))
	copy(loans, user.Loans)

	count := 0
	for _, loan := range loans {
		result, err := l.Return(ctx, userID, loan.BookID)
		if err != nil {
			l.logger.Error("error while returning book in bulk return",
				zap.String("book_id", loan.BookID), zap.Error(err))
			continue
		}
		if result.OK {
			count++
		}
	}

	return entity.BulkReturnResult{
		Count:   count,
		Message: fmt.Sprintf("returned %d of %d books", count, len(loans)),
	}, nil
}
