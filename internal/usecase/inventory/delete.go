package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

// BatchDelete removes every listed book that has no copies in circulation.
// Books still on loan are kept and reported by title; unknown ids are
// dropped silently.
func (i *inventoryImpl) BatchDelete(ctx context.Context, bookIDs []string) (entity.BatchDeleteResult, error) {
	i.logger.Info("Batch delete request is being made to the database.", zap.Int("count", len(bookIDs)))

	result := entity.BatchDeleteResult{SkippedTitles: make([]string, 0)}

	err := i.transactor.WithTx(ctx, func(ctx context.Context) error {
		for _, id := range bookIDs {
			book, txErr := i.bookRepository.GetByID(ctx, id)
			if errors.Is(txErr, entity.ErrBookNotFound) {
				continue
			}
			if txErr != nil {
				return txErr
			}

			if book.AvailableCopies != book.TotalCopies {
				result.SkippedTitles = append(result.SkippedTitles, book.Title)
				continue
			}

			removed, txErr := i.bookRepository.Remove(ctx, id)
			if txErr != nil {
				return txErr
			}
			if removed {
				result.Deleted++
			}
		}
		return nil
	})

	if err != nil {
		return entity.BatchDeleteResult{}, err
	}

	return result, nil
}

// SafeDeleteBook deletes the book only when every copy is on the shelf.
func (i *inventoryImpl) SafeDeleteBook(ctx context.Context, bookID string) (entity.DeleteResult, error) {
	book, err := i.bookRepository.GetByID(ctx, bookID)
	if errors.Is(err, entity.ErrBookNotFound) {
		return entity.DeleteResult{OK: false, Message: MsgBookNotFound}, nil
	}
	if err != nil {
		return entity.DeleteResult{}, err
	}

	if book.AvailableCopies != book.TotalCopies {
		return entity.DeleteResult{
			OK:      false,
			Message: fmt.Sprintf("cannot delete: %d copy(ies) currently on loan", book.OnLoan()),
		}, nil
	}

	removed, err := i.bookRepository.Remove(ctx, bookID)
	if err != nil {
		return entity.DeleteResult{}, err
	}
	if !removed {
		return entity.DeleteResult{OK: false, Message: MsgBookNotFound}, nil
	}

	return entity.DeleteResult{OK: true, Message: MsgBookDeleted}, nil
}

// SafeDeleteUser deletes a reader only when they hold no active loans.
// On refusal the held titles come back as the payload, not an error string.
func (i *inventoryImpl) SafeDeleteUser(ctx context.Context, userID string) (entity.DeleteResult, error) {
	user, err := i.userRepository.GetByID(ctx, userID)
	if errors.Is(err, entity.ErrUserNotFound) {
		return entity.DeleteResult{OK: false, Message: MsgUserNotFound}, nil
	}
	if err != nil {
		return entity.DeleteResult{}, err
	}

	if len(user.Loans) > 0 {
		titles := make([]string, 0, len(user.Loans))
		for _, loan := range user.Loans {
			titles = append(titles, loan.DisplayTitle())
		}

		return entity.DeleteResult{
			OK:         false,
			Message:    MsgUserHoldsBook,
			HeldTitles: titles,
		}, nil
	}

	removed, err := i.userRepository.Remove(ctx, userID)
	if err != nil {
		return entity.DeleteResult{}, err
	}
	if !removed {
		return entity.DeleteResult{OK: false, Message: MsgUserNotFound}, nil
	}

	return entity.DeleteResult{OK: true, Message: MsgUserDeleted}, nil
}
