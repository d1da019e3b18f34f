package auth

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/auth_mock.go -package=mocks . AuthUseCase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Library cards follow the XX1111 format: two letters, four digits.
const cardLength = 6

type AuthUseCase interface {
	RegisterReader(ctx context.Context, username string, cardID string) (entity.User, error)
	RegisterLibrarian(ctx context.Context, username string, password string) (entity.User, error)
	Login(ctx context.Context, username string, password string) (string, entity.User, error)
	ReissueCard(ctx context.Context, userID string, newCardID string) (entity.User, error)
}

var _ AuthUseCase = (*authImpl)(nil)

// authImpl is the credential collaborator. Passwords are stored as bcrypt
// hashes only; a successful login yields a signed token, never the secret.
type authImpl struct {
	logger         *zap.Logger
	transactor     repository.Transactor
	userRepository repository.UserRepository
	jwt            *JWTer
}

func New(
	logger *zap.Logger,
	transactor repository.Transactor,
	userRepository repository.UserRepository,
	jwt *JWTer,
) *authImpl {
	return &authImpl{
		logger:         logger,
		transactor:     transactor,
		userRepository: userRepository,
		jwt:            jwt,
	}
}

func validateCardID(cardID string) error {
	if len(cardID) != cardLength {
		return fmt.Errorf("%w: must be exactly %d characters", entity.ErrInvalidCard, cardLength)
	}
	for _, r := range cardID[:2] {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: first two characters must be letters", entity.ErrInvalidCard)
		}
	}
	for _, r := range cardID[2:] {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: last four characters must be digits", entity.ErrInvalidCard)
		}
	}
	return nil
}

func normalizeCardID(cardID string) string {
	return strings.ToUpper(strings.TrimSpace(cardID))
}

// RegisterReader creates a reader keyed by their library card id.
func (a *authImpl) RegisterReader(ctx context.Context, username string, cardID string) (entity.User, error) {
	cardID = normalizeCardID(cardID)

	if err := validateCardID(cardID); err != nil {
		return entity.User{}, err
	}

	var user entity.User

	err := a.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := a.userRepository.GetByID(ctx, cardID); txErr == nil {
			return fmt.Errorf("%w: card %s is already registered", entity.ErrUserExists, cardID)
		} else if !errors.Is(txErr, entity.ErrUserNotFound) {
			return txErr
		}

		var txErr error
		user, txErr = a.userRepository.Add(ctx, entity.User{
			ID:       cardID,
			Username: username,
			Role:     entity.RoleReader,
			Loans:    make([]entity.Loan, 0),
		})
		return txErr
	})

	if err != nil {
		return entity.User{}, err
	}

	a.logger.Info("Registered new reader.", zap.String("card_id", user.ID))
	return user, nil
}

func (a *authImpl) RegisterLibrarian(ctx context.Context, username string, password string) (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, err
	}

	user, err := a.userRepository.Add(ctx, entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		Role:         entity.RoleLibrarian,
		PasswordHash: string(hash),
		Loans:        make([]entity.Loan, 0),
	})

	if err != nil {
		return entity.User{}, err
	}

	a.logger.Info("Registered new librarian.", zap.String("username", username))
	return user, nil
}

// Login authenticates a librarian and issues a token carrying their role.
func (a *authImpl) Login(ctx context.Context, username string, password string) (string, entity.User, error) {
	user, err := a.userRepository.GetByUsername(ctx, username)
	if errors.Is(err, entity.ErrUserNotFound) {
		return "", entity.User{}, entity.ErrInvalidCredentials
	}
	if err != nil {
		return "", entity.User{}, err
	}

	if user.Role != entity.RoleLibrarian {
		return "", entity.User{}, entity.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", entity.User{}, entity.ErrInvalidCredentials
	}

	token, err := a.jwt.Issue(user.ID, user.Role)
	if err != nil {
		return "", entity.User{}, err
	}

	return token, user, nil
}

// ReissueCard moves a reader, loans included, onto a new card id.
func (a *authImpl) ReissueCard(ctx context.Context, userID string, newCardID string) (entity.User, error) {
	newCardID = normalizeCardID(newCardID)

	if err := validateCardID(newCardID); err != nil {
		return entity.User{}, err
	}

	var user entity.User

	err := a.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := a.userRepository.GetByID(ctx, newCardID); txErr == nil {
			return fmt.Errorf("%w: card %s is already registered", entity.ErrUserExists, newCardID)
		} else if !errors.Is(txErr, entity.ErrUserNotFound) {
			return txErr
		}

		current, txErr := a.userRepository.GetByID(ctx, userID)
		if txErr != nil {
			return txErr
		}

		current.ID = newCardID
		for i := range current.Loans {
			current.Loans[i].UserID = newCardID
		}

		// The old row must go first: usernames are unique, so inserting the
		// moved user while the old row exists violates the constraint.
		if _, txErr = a.userRepository.Remove(ctx, userID); txErr != nil {
			return txErr
		}

		user, txErr = a.userRepository.Add(ctx, current)
		return txErr
	})

	if err != nil {
		return entity.User{}, err
	}

	a.logger.Info("Reissued reader card.", zap.String("old", userID), zap.String("new", user.ID))
	return user, nil
}
