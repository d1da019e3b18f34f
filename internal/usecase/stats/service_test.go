package stats

import (
	"context"
	"testing"
	"time"

	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestStats(
	userRepo *mocks.MockUserRepository,
	bookRepo *mocks.MockBookRepository,
) *statsImpl {
	uc := New(zap.NewNop(), userRepo, bookRepo)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	books := []entity.Book{
		{ID: "b1", Title: "Dune", Genre: "Sci-Fi", Year: 1965},
		{ID: "b2", Title: "Emma", Genre: "Romance", Year: 1815},
		{ID: "b3", Title: "Persuasion", Genre: "Romance", Year: 1817},
		{ID: "b4", Title: "Neuromancer", Genre: "Sci-Fi", Year: 1984},
	}

	users := []entity.User{
		{ID: "u1", Username: "alice", Role: entity.RoleReader, Loans: []entity.Loan{
			{UserID: "u1", BookID: "b1", Title: "Dune", DueDate: "2025-03-01"},
			{UserID: "u1", BookID: "b2", Title: "Emma", DueDate: "2025-03-20"},
		}},
		{ID: "u2", Username: "bob", Role: entity.RoleReader, Loans: []entity.Loan{
			{UserID: "u2", BookID: "b4", Title: "Neuromancer", DueDate: "2025-03-20"},
		}},
		{ID: "u3", Username: "admin", Role: entity.RoleLibrarian},
	}

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)

	bookRepo.EXPECT().ListAll(ctx).Return(books, nil)
	userRepo.EXPECT().ListAll(ctx).Return(users, nil)

	uc := newTestStats(userRepo, bookRepo)

	stats, err := uc.Statistics(ctx)

	require.NoError(t, err)
	// Two genres tie at two books each; the tie breaks lexicographically.
	require.Equal(t, "Romance (2)", stats.InventoryTopGenre)
	require.Equal(t, "Sci-Fi (2)", stats.BorrowedTopGenre)
	require.Equal(t, "1895", stats.AvgPublicationYear)
	require.Equal(t, 4, stats.TotalBooks)
	require.Equal(t, 2, stats.TotalReaders)
	require.Equal(t, 3, stats.TotalActiveLoans)
	require.InDelta(t, 0.5, stats.AvgOverduePerReader, 1e-9)
}

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)

	bookRepo.EXPECT().ListAll(ctx).Return([]entity.Book{}, nil)
	userRepo.EXPECT().ListAll(ctx).Return([]entity.User{}, nil)

	uc := newTestStats(userRepo, bookRepo)

	stats, err := uc.Statistics(ctx)

	require.NoError(t, err)
	require.Equal(t, NoData, stats.InventoryTopGenre)
	require.Equal(t, NoActiveLoans, stats.BorrowedTopGenre)
	require.Equal(t, NoYears, stats.AvgPublicationYear)
	require.Zero(t, stats.AvgOverduePerReader)
}

func TestOverdueReport(t *testing.T) {
	t.Parallel()

	users := []entity.User{
		{ID: "u1", Username: "alice", Role: entity.RoleReader, Loans: []entity.Loan{
			{UserID: "u1", BookID: "b1", Title: "Dune", DueDate: "2025-03-01"},
			{UserID: "u1", BookID: "b2", Title: "", DueDate: "2025-02-20"},
			{UserID: "u1", BookID: "b3", Title: "Emma", DueDate: "2025-03-20"},
		}},
		{ID: "u2", Username: "admin", Role: entity.RoleLibrarian},
	}

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)

	userRepo.EXPECT().ListAll(ctx).Return(users, nil)

	uc := newTestStats(userRepo, bookRepo)

	report, err := uc.OverdueReport(ctx)

	require.NoError(t, err)
	require.Equal(t, []entity.OverdueEntry{
		{Title: "Dune", Username: "alice", DueDate: "2025-03-01"},
		{Title: entity.DeletedBookTitle, Username: "alice", DueDate: "2025-02-20"},
	}, report)
}
