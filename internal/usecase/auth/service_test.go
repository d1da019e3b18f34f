package auth

import (
	"context"
	"testing"
	"time"

	"github.com/project/lending/db"
	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "lending-test", TTL: time.Hour}
}

func newTestAuth(ctrl *gomock.Controller, userRepo *mocks.MockUserRepository) (*authImpl, *mocks.MockTransactor) {
	transactor := mocks.NewMockTransactor(ctrl)
	return New(zap.NewNop(), transactor, userRepo, testJWTer()), transactor
}

func passthroughTx(ctx context.Context, transactor *mocks.MockTransactor) {
	transactor.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, f func(ctx context.Context) error) error {
			return f(ctx)
		},
	).AnyTimes()
}

func TestValidateCardID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cardID  string
		wantErr bool
	}{
		{name: "valid card", cardID: "AB1234"},
		{name: "lowercase letters pass after normalization", cardID: "XY0000"},
		{name: "too short", cardID: "A1234", wantErr: true},
		{name: "too long", cardID: "ABC1234", wantErr: true},
		{name: "digits in letter positions", cardID: "121234", wantErr: true},
		{name: "letters in digit positions", cardID: "ABCD34", wantErr: true},
		{name: "empty", cardID: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validateCardID(tc.cardID)

			if tc.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidCard)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRegisterReader(t *testing.T) {
	t.Parallel()

	t.Run("registers with a normalized card id", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		ctx := context.Background()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetByID(ctx, "AB1234").Return(entity.User{}, entity.ErrUserNotFound)
		userRepo.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user entity.User) (entity.User, error) {
				require.Equal(t, "AB1234", user.ID)
				require.Equal(t, entity.RoleReader, user.Role)
				return user, nil
			},
		)

		uc, transactor := newTestAuth(ctrl, userRepo)
		passthroughTx(ctx, transactor)

		user, err := uc.RegisterReader(ctx, "alice", " ab1234 ")

		require.NoError(t, err)
		require.Equal(t, "AB1234", user.ID)
	})

	t.Run("rejects a taken card", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		ctx := context.Background()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetByID(ctx, "AB1234").Return(entity.User{ID: "AB1234"}, nil)

		uc, transactor := newTestAuth(ctrl, userRepo)
		passthroughTx(ctx, transactor)

		_, err := uc.RegisterReader(ctx, "alice", "AB1234")

		require.ErrorIs(t, err, entity.ErrUserExists)
	})

	t.Run("rejects a malformed card", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		ctx := context.Background()

		userRepo := mocks.NewMockUserRepository(ctrl)

		uc, _ := newTestAuth(ctrl, userRepo)

		_, err := uc.RegisterReader(ctx, "alice", "nope")

		require.ErrorIs(t, err, entity.ErrInvalidCard)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	librarian := entity.User{
		ID:           "lib-1",
		Username:     "admin",
		Role:         entity.RoleLibrarian,
		PasswordHash: string(hash),
	}

	testCases := []struct {
		name      string
		user      entity.User
		userError error
		password  string
		wantToken bool
	}{
		{
			name:      "valid credentials",
			user:      librarian,
			password:  "correct horse",
			wantToken: true,
		},
		{
			name:     "wrong password",
			user:     librarian,
			password: "battery staple",
		},
		{
			name:      "unknown username",
			userError: entity.ErrUserNotFound,
			password:  "correct horse",
		},
		{
			name:     "readers can not log in with a password",
			user:     entity.User{ID: "AB1234", Username: "admin", Role: entity.RoleReader},
			password: "correct horse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			userRepo := mocks.NewMockUserRepository(ctrl)
			userRepo.EXPECT().GetByUsername(ctx, "admin").Return(tc.user, tc.userError)

			uc, _ := newTestAuth(ctrl, userRepo)

			token, user, err := uc.Login(ctx, "admin", tc.password)

			if !tc.wantToken {
				require.ErrorIs(t, err, entity.ErrInvalidCredentials)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, token)
			require.Equal(t, tc.user, user)

			claims, err := testJWTer().Parse(token)
			require.NoError(t, err)
			require.Equal(t, "lib-1", claims.UID)
			require.Equal(t, entity.RoleLibrarian, claims.Role)
		})
	}
}

func TestReissueCard(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	current := entity.User{ID: "AB1234", Username: "alice", Role: entity.RoleReader, Loans: []entity.Loan{
		{UserID: "AB1234", BookID: "b1", Title: "Dune", DueDate: "2025-03-20"},
	}}

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetByID(ctx, "CD5678").Return(entity.User{}, entity.ErrUserNotFound)
	userRepo.EXPECT().GetByID(ctx, "AB1234").Return(current, nil)
	removed := userRepo.EXPECT().Remove(ctx, "AB1234").Return(true, nil)
	userRepo.EXPECT().Add(ctx, gomock.Any()).After(removed).DoAndReturn(
		func(_ context.Context, user entity.User) (entity.User, error) {
			require.Equal(t, "CD5678", user.ID)
			require.Equal(t, "CD5678", user.Loans[0].UserID)
			return user, nil
		},
	)

	uc, transactor := newTestAuth(ctrl, userRepo)
	passthroughTx(ctx, transactor)

	user, err := uc.ReissueCard(ctx, "AB1234", "cd5678")

	require.NoError(t, err)
	require.Equal(t, "CD5678", user.ID)
}

func TestReissueCardSqlite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	conn := db.NewTestDB(t)

	userRepo := repository.NewSqliteUserRepository(zap.NewNop(), conn)
	uc := New(zap.NewNop(), repository.NewSqlxTransactor(conn, zap.NewNop()), userRepo, testJWTer())

	reader, err := uc.RegisterReader(ctx, "alice", "AB1234")
	require.NoError(t, err)

	reader.Loans = []entity.Loan{{UserID: reader.ID, BookID: "b1", Title: "Dune", DueDate: "2025-03-20"}}
	require.NoError(t, userRepo.Update(ctx, reader))

	moved, err := uc.ReissueCard(ctx, "AB1234", "cd5678")

	require.NoError(t, err)
	require.Equal(t, "CD5678", moved.ID)

	stored, err := userRepo.GetByID(ctx, "CD5678")
	require.NoError(t, err)
	require.Equal(t, "alice", stored.Username)
	require.Equal(t, []entity.Loan{{UserID: "CD5678", BookID: "b1", Title: "Dune", DueDate: "2025-03-20"}}, stored.Loans)

	_, err = userRepo.GetByID(ctx, "AB1234")
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}
