package lending

import (
	"context"
	"testing"

	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalculateFine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		loans           []entity.Loan
		expectedTotal   float64
		expectedDetails int
	}{
		{
			name: "ten days overdue",
			loans: []entity.Loan{
				{UserID: "u1", BookID: "b1", DueDate: "2025-02-28"},
			},
			expectedTotal:   5.0,
			expectedDetails: 1,
		},
		{
			name: "mixed overdue and current",
			loans: []entity.Loan{
				{UserID: "u1", BookID: "b1", DueDate: "2025-02-28"},
				{UserID: "u1", BookID: "b2", DueDate: "2025-03-08"},
				{UserID: "u1", BookID: "b3", DueDate: "2025-03-20"},
			},
			expectedTotal:   6.0,
			expectedDetails: 2,
		},
		{
			name: "due today costs nothing",
			loans: []entity.Loan{
				{UserID: "u1", BookID: "b1", DueDate: "2025-03-10"},
			},
		},
		{
			name: "malformed due date never accrues",
			loans: []entity.Loan{
				{UserID: "u1", BookID: "b1", DueDate: "not-a-date"},
			},
		},
		{
			name: "no loans",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			bookRepo := mocks.NewMockBookRepository(ctrl)

			uc, _, _ := newTestLending(ctrl, userRepo, bookRepo, testConfig())

			total, details := uc.CalculateFine(entity.User{ID: "u1", Loans: tc.loans})

			require.InDelta(t, tc.expectedTotal, total, 1e-9)
			require.Len(t, details, tc.expectedDetails)
		})
	}
}

func TestGetOverdueLoans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)

	uc, _, _ := newTestLending(ctrl, userRepo, bookRepo, testConfig())

	user := entity.User{ID: "u1", Loans: []entity.Loan{
		{UserID: "u1", BookID: "b1", DueDate: "2025-02-28"},
		{UserID: "u1", BookID: "b2", DueDate: "2025-03-10"},
		{UserID: "u1", BookID: "b3", DueDate: "2025-03-20"},
		{UserID: "u1", BookID: "b4", DueDate: "garbage"},
	}}

	overdue := uc.GetOverdueLoans(user)

	require.Len(t, overdue, 1)
	require.Equal(t, "b1", overdue[0].BookID)
}

func TestFinesForUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository(ctrl)
	bookRepo := mocks.NewMockBookRepository(ctrl)

	userRepo.EXPECT().GetByID(ctx, "u1").Return(entity.User{ID: "u1", Loans: []entity.Loan{
		{UserID: "u1", BookID: "b1", DueDate: "2025-02-28"},
	}}, nil)
	userRepo.EXPECT().GetByID(ctx, "missing").Return(entity.User{}, entity.ErrUserNotFound)

	uc, _, _ := newTestLending(ctrl, userRepo, bookRepo, testConfig())

	total, details, err := uc.FinesForUser(ctx, "u1")

	require.NoError(t, err)
	require.InDelta(t, 5.0, total, 1e-9)
	require.Len(t, details, 1)

	_, _, err = uc.FinesForUser(ctx, "missing")

	require.ErrorIs(t, err, entity.ErrUserNotFound)
}
