package stats

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/stats_mock.go -package=mocks . StatsUseCase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Placeholders rendered when a projection has no data to aggregate.
const (
	NoData        = "no data"
	NoActiveLoans = "no active loans"
	NoYears       = "-"
)

type StatsUseCase interface {
	Statistics(ctx context.Context) (entity.Statistics, error)
	OverdueReport(ctx context.Context) ([]entity.OverdueEntry, error)
}

var _ StatsUseCase = (*statsImpl)(nil)

// statsImpl computes read-only projections on demand. Nothing is cached or
// materialized; every call fetches current state from the stores.
type statsImpl struct {
	logger         *zap.Logger
	userRepository repository.UserRepository
	bookRepository repository.BookRepository
	now            func() time.Time
}

func New(
	logger *zap.Logger,
	userRepository repository.UserRepository,
	bookRepository repository.BookRepository,
) *statsImpl {
	return &statsImpl{
		logger:         logger,
		userRepository: userRepository,
		bookRepository: bookRepository,
		now:            time.Now,
	}
}

func (s *statsImpl) Statistics(ctx context.Context) (entity.Statistics, error) {
	s.logger.Info("Statistics request is being made to the database.")

	books, err := s.bookRepository.ListAll(ctx)
	if err != nil {
		return entity.Statistics{}, err
	}

	users, err := s.userRepository.ListAll(ctx)
	if err != nil {
		return entity.Statistics{}, err
	}

	today := entity.Midnight(s.now())

	genreByBook := make(map[string]string, len(books))
	catalogGenres := make([]string, 0, len(books))
	for _, book := range books {
		genreByBook[book.ID] = book.Genre
		catalogGenres = append(catalogGenres, book.Genre)
	}

	borrowedGenres := make([]string, 0)
	readers := 0
	overdueLoans := 0
	activeLoans := 0

	for _, user := range users {
		if !user.IsReader() {
			continue
		}
		readers++

		for _, loan := range user.Loans {
			activeLoans++

			if genre, ok := genreByBook[loan.BookID]; ok {
				borrowedGenres = append(borrowedGenres, genre)
			}
			if loan.DueBefore(today) {
				overdueLoans++
			}
		}
	}

	result := entity.Statistics{
		InventoryTopGenre:  formatTopGenre(catalogGenres, NoData),
		BorrowedTopGenre:   formatTopGenre(borrowedGenres, NoActiveLoans),
		AvgPublicationYear: formatAvgYear(books),
		TotalBooks:         len(books),
		TotalReaders:       readers,
		TotalActiveLoans:   activeLoans,
	}

	if readers > 0 {
		result.AvgOverduePerReader = float64(overdueLoans) / float64(readers)
	}

	return result, nil
}

// OverdueReport lists every overdue loan of every reader, rendered from
// the loan's denormalized title so orphaned loans still show up.
func (s *statsImpl) OverdueReport(ctx context.Context) ([]entity.OverdueEntry, error) {
	s.logger.Info("Overdue report request is being made to the database.")

	users, err := s.userRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := entity.Midnight(s.now())
	report := make([]entity.OverdueEntry, 0)

	for _, user := range users {
		if !user.IsReader() {
			continue
		}
		for _, loan := range user.Loans {
			if !loan.DueBefore(today) {
				continue
			}
			report = append(report, entity.OverdueEntry{
				Title:    loan.DisplayTitle(),
				Username: user.Username,
				DueDate:  loan.DueDate,
			})
		}
	}

	return report, nil
}

// formatTopGenre picks the most common genre; ties break lexicographically
// so the result never depends on store iteration order.
func formatTopGenre(genres []string, empty string) string {
	if len(genres) == 0 {
		return empty
	}

	counts := lo.CountValues(genres)

	names := lo.Keys(counts)
	sort.Strings(names)

	top := names[0]
	for _, name := range names[1:] {
		if counts[name] > counts[top] {
			top = name
		}
	}

	return fmt.Sprintf("%s (%d)", top, counts[top])
}

func formatAvgYear(books []entity.Book) string {
	if len(books) == 0 {
		return NoYears
	}

	sum := lo.SumBy(books, func(book entity.Book) int { return book.Year })

	return fmt.Sprintf("%d", sum/len(books))
}
