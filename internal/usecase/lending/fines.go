package lending

import (
	"context"
	"time"

	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

// CalculateFine computes the user's total fine and the per-loan breakdown.
// Read-only: nothing is persisted, fines are always derived on demand.
func (l *lendingImpl) CalculateFine(user entity.User) (float64, []entity.OverdueDetail) {
	return l.fineAt(user, entity.Midnight(l.now()))
}

// GetOverdueLoans returns the subset of active loans due strictly before today.
func (l *lendingImpl) GetOverdueLoans(user entity.User) []entity.Loan {
	return l.overdueAt(user, entity.Midnight(l.now()))
}

// FinesForUser loads the user and computes the fine breakdown.
func (l *lendingImpl) FinesForUser(ctx context.Context, userID string) (float64, []entity.OverdueDetail, error) {
	user, err := l.userRepository.GetByID(ctx, userID)

	if err != nil {
		l.logger.Error("Error while accessing to data base.", zap.Error(err))
		return 0, nil, err
	}

	total, details := l.CalculateFine(user)
	return total, details, nil
}

// OverdueForUser loads the user and returns the overdue subset of its loans.
func (l *lendingImpl) OverdueForUser(ctx context.Context, userID string) ([]entity.Loan, error) {
	user, err := l.userRepository.GetByID(ctx, userID)

	if err != nil {
		l.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	return l.GetOverdueLoans(user), nil
}

func (l *lendingImpl) fineAt(user entity.User, today time.Time) (float64, []entity.OverdueDetail) {
	total := 0.0
	details := make([]entity.OverdueDetail, 0)

	for _, loan := range user.Loans {
		days := daysOverdue(loan, today)
		if days <= 0 {
			continue
		}

		fine := float64(days) * l.cfg.FinePerDay
		total += fine
		details = append(details, entity.OverdueDetail{
			BookID:      loan.BookID,
			DueDate:     loan.DueDate,
			DaysOverdue: days,
			Fine:        fine,
		})
	}

	return total, details
}

func (l *lendingImpl) overdueAt(user entity.User, today time.Time) []entity.Loan {
	overdue := make([]entity.Loan, 0)
	for _, loan := range user.Loans {
		if loan.DueBefore(today) {
			overdue = append(overdue, loan)
		}
	}
	return overdue
}

// daysOverdue is 0 for loans not yet due and for due dates that do not
// parse; malformed dates never accrue fines.
func daysOverdue(loan entity.Loan, today time.Time) int {
	due, err := time.Parse(entity.DateFormat, loan.DueDate)
	if err != nil {
		return 0
	}

	days := int(today.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
