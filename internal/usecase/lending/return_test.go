package lending

import (
	"context"
	"testing"

	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReturn(t *testing.T) {
	t.Parallel()

	holder := entity.User{ID: "u1", Loans: []entity.Loan{
		{UserID: "u1", BookID: "b1", Title: "Dune", DueDate: "2025-03-20"},
	}}

	testCases := []struct {
		name            string
		user            entity.User
		userError       error
		book            entity.Book
		bookError       error
		expectedOK      bool
		expectedMessage string
		expectedCopies  int
		expectRestock   bool
	}{
		{
			name:            "returns a held book",
			user:            holder,
			book:            entity.Book{ID: "b1", Title: "Dune", TotalCopies: 2, AvailableCopies: 1},
			expectedOK:      true,
			expectedMessage: MsgBookReturned,
			expectedCopies:  2,
			expectRestock:   true,
		},
		{
			name:            "clamps the counter at total copies",
			user:            holder,
			book:            entity.Book{ID: "b1", Title: "Dune", TotalCopies: 2, AvailableCopies: 2},
			expectedOK:      true,
			expectedMessage: MsgBookReturned,
			expectedCopies:  2,
			expectRestock:   true,
		},
		{
			name:            "orphaned loan skips restock",
			user:            holder,
			bookError:       entity.ErrBookNotFound,
			expectedOK:      true,
			expectedMessage: MsgBookReturned,
		},
		{
			name:            "no active loan",
			user:            entity.User{ID: "u1"},
			expectedMessage: MsgNoActiveLoan,
		},
		{
			name:            "unknown user",
			userError:       entity.ErrUserNotFound,
			expectedMessage: MsgUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			userRepo := mocks.NewMockUserRepository(ctrl)
			bookRepo := mocks.NewMockBookRepository(ctrl)

			userRepo.EXPECT().GetByID(ctx, "u1").Return(tc.user, tc.userError)
			bookRepo.EXPECT().GetByID(ctx, "b1").Return(tc.book, tc.bookError).AnyTimes()

			uc, transactor, outboxRepo := newTestLending(ctrl, userRepo, bookRepo, testConfig())
			passthroughTx(ctx, transactor)

			if tc.userError == nil && len(tc.user.Loans) > 0 {
				userRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, user entity.User) error {
						require.Empty(t, user.Loans)
						return nil
					},
				)
				outboxRepo.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			if tc.expectRestock {
				bookRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, updated entity.Book) error {
						require.Equal(t, tc.expectedCopies, updated.AvailableCopies)
						return nil
					},
				)
			}

			result, err := uc.Return(ctx, "u1", "b1")

			require.NoError(t, err)
			require.Equal(t, tc.expectedOK, result.OK)
			require.Equal(t, tc.expectedMessage, result.Message)
		})
	}
}

func TestReturnAll(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		loans           []entity.Loan
		expectedCount   int
		expectedMessage string
	}{
		{
			name: "returns every held book",
			loans: []entity.Loan{
				{UserID: "u1", BookID: "b1", Title: "Dune", DueDate: "2025-03-20"},
				{UserID: "u1", BookID: "b2", Title: "Emma", DueDate: "2025-03-21"},
			},
			expectedCount:   2,
			expectedMessage: "returned 2 of 2 books",
		},
		{
			name:            "nothing to return",
			loans:           nil,
			expectedCount:   0,
			expectedMessage: "returned 0 of 0 books",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			userRepo := mocks.NewMockUserRepository(ctrl)
			bookRepo := mocks.NewMockBookRepository(ctrl)

			remaining := entity.User{ID: "u1", Loans: tc.loans}
			userRepo.EXPECT().GetByID(ctx, "u1").DoAndReturn(
				func(context.Context, string) (entity.User, error) {
					copied := remaining
					copied.Loans = append([]entity.Loan(nil), remaining.Loans...)
					return copied, nil
				},
			).AnyTimes()
			userRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, user entity.User) error {
					remaining = user
					return nil
				},
			).AnyTimes()

			bookRepo.EXPECT().GetByID(ctx, gomock.Any()).Return(entity.Book{}, entity.ErrBookNotFound).AnyTimes()

			uc, transactor, outboxRepo := newTestLending(ctrl, userRepo, bookRepo, testConfig())
			passthroughTx(ctx, transactor)
			outboxRepo.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			result, err := uc.ReturnAll(ctx, "u1")

			require.NoError(t, err)
			require.Equal(t, tc.expectedCount, result.Count)
			require.Equal(t, tc.expectedMessage, result.Message)
			require.Empty(t, remaining.Loans)

			// A second sweep finds nothing left to return.
			again, err := uc.ReturnAll(ctx, "u1")

			require.NoError(t, err)
			require.Equal(t, 0, again.Count)
		})
	}
}
