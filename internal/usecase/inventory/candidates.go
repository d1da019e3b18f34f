package inventory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/samber/lo"
)

// Selection helpers: pure filters over the catalog and active loans. They
// produce candidate lists for BatchDelete and never mutate anything.

func (i *inventoryImpl) CandidatesByAuthor(ctx context.Context, author string) ([]entity.Book, error) {
	books, err := i.bookRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(author))

	return lo.Filter(books, func(book entity.Book, _ int) bool {
		return strings.Contains(strings.ToLower(book.Author), needle)
	}), nil
}

func (i *inventoryImpl) CandidatesByGenre(ctx context.Context, genre string, exact bool) ([]entity.Book, error) {
	books, err := i.bookRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if exact {
		return lo.Filter(books, func(book entity.Book, _ int) bool {
			return book.Genre == genre
		}), nil
	}

	needle := strings.ToLower(strings.TrimSpace(genre))

	return lo.Filter(books, func(book entity.Book, _ int) bool {
		return strings.Contains(strings.ToLower(book.Genre), needle)
	}), nil
}

func (i *inventoryImpl) CandidatesByYearBefore(ctx context.Context, year int) ([]entity.Book, error) {
	books, err := i.bookRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(books, func(book entity.Book, _ int) bool {
		return book.Year < year
	}), nil
}

// LostBookCandidates finds write-off candidates: books with outstanding
// loans, all of which are overdue by more than the configured number of
// years.
func (i *inventoryImpl) LostBookCandidates(ctx context.Context) ([]entity.Book, error) {
	users, err := i.userRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	threshold := entity.Midnight(i.now()).AddDate(0, 0, -i.cfg.LostAfterYears*365)

	lost := make(map[string]bool)

	for _, user := range users {
		if !user.IsReader() {
			continue
		}
		for _, loan := range user.Loans {
			pastThreshold := loanDueBefore(loan, threshold)
			if seen, ok := lost[loan.BookID]; !ok {
				lost[loan.BookID] = pastThreshold
			} else {
				lost[loan.BookID] = seen && pastThreshold
			}
		}
	}

	candidates := make([]entity.Book, 0)

	for bookID, allPastThreshold := range lost {
		if !allPastThreshold {
			continue
		}

		book, err := i.bookRepository.GetByID(ctx, bookID)
		if errors.Is(err, entity.ErrBookNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, book)
	}

	sort.Slice(candidates, func(a, b int) bool { return candidates[a].Title < candidates[b].Title })

	return candidates, nil
}

func loanDueBefore(loan entity.Loan, day time.Time) bool {
	due, err := time.Parse(entity.DateFormat, loan.DueDate)
	if err != nil {
		return false
	}
	return due.Before(day)
}
