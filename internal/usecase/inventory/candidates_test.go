package inventory

import (
	"context"
	"testing"

	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalog() []entity.Book {
	return []entity.Book{
		{ID: "b1", Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi"},
		{ID: "b2", Title: "Emma", Author: "Jane Austen", Year: 1815, Genre: "Romance"},
		{ID: "b3", Title: "Persuasion", Author: "Jane Austen", Year: 1817, Genre: "Romance"},
		{ID: "b4", Title: "Neuromancer", Author: "William Gibson", Year: 1984, Genre: "sci-fi classics"},
	}
}

func TestCandidatesByAuthor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)
	bookRepo.EXPECT().ListAll(ctx).Return(catalog(), nil)

	uc, _, _ := newTestInventory(ctrl, userRepo, bookRepo)

	books, err := uc.CandidatesByAuthor(ctx, "  austen ")

	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b2", "b3"}, lo.Map(books, func(b entity.Book, _ int) string { return b.ID }))
}

func TestCandidatesByGenre(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		genre       string
		exact       bool
		expectedIDs []string
	}{
		{
			name:        "substring match is case insensitive",
			genre:       "sci-fi",
			expectedIDs: []string{"b1", "b4"},
		},
		{
			name:        "exact match is case sensitive",
			genre:       "Sci-Fi",
			exact:       true,
			expectedIDs: []string{"b1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			userRepo := mocks.NewMockUserRepository(ctrl)
			bookRepo := mocks.NewMockBookRepository(ctrl)
			bookRepo.EXPECT().ListAll(ctx).Return(catalog(), nil)

			uc, _, _ := newTestInventory(ctrl, userRepo, bookRepo)

			books, err := uc.CandidatesByGenre(ctx, tc.genre, tc.exact)

			require.NoError(t, err)
			require.ElementsMatch(t, tc.expectedIDs, lo.Map(books, func(b entity.Book, _ int) string { return b.ID }))
		})
	}
}

func TestCandidatesByYearBefore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)
	bookRepo.EXPECT().ListAll(ctx).Return(catalog(), nil)

	uc, _, _ := newTestInventory(ctrl, userRepo, bookRepo)

	books, err := uc.CandidatesByYearBefore(ctx, 1900)

	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b2", "b3"}, lo.Map(books, func(b entity.Book, _ int) string { return b.ID }))
}

func TestLostBookCandidates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	// Threshold sits two years before 2025-03-10. The first book's only
	// loan is long past it, the second has one recent loan keeping it off
	// the list, the third left the catalog entirely.
	users := []entity.User{
		{ID: "u1", Username: "alice", Role: entity.RoleReader, Loans: []entity.Loan{
			{UserID: "u1", BookID: "lost", Title: "Gone", DueDate: "2021-01-01"},
			{UserID: "u1", BookID: "mixed", Title: "Held", DueDate: "2021-01-01"},
			{UserID: "u1", BookID: "orphan", Title: "Orphan", DueDate: "2020-06-01"},
		}},
		{ID: "u2", Username: "bob", Role: entity.RoleReader, Loans: []entity.Loan{
			{UserID: "u2", BookID: "mixed", Title: "Held", DueDate: "2025-03-01"},
		}},
	}

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)

	userRepo.EXPECT().ListAll(ctx).Return(users, nil)
	bookRepo.EXPECT().GetByID(ctx, "lost").
		Return(entity.Book{ID: "lost", Title: "Gone"}, nil)
	bookRepo.EXPECT().GetByID(ctx, "orphan").
		Return(entity.Book{}, entity.ErrBookNotFound)

	uc, _, _ := newTestInventory(ctrl, userRepo, bookRepo)

	books, err := uc.LostBookCandidates(ctx)

	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "lost", books[0].ID)
}
