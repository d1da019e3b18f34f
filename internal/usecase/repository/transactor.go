package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Both halves of a borrow or return (the loan-list write and the copy-count
// write) must commit together. Use cases wrap them in WithTx; repositories
// pick the transaction up from the context.

var ErrTxNotFound = errors.New("transaction is not found in context")

var _ Transactor = (*transactorImpl)(nil)

type transactorImpl struct {
	logger *zap.Logger
	db     *pgxpool.Pool
}

func NewTransactor(db *pgxpool.Pool, logger *zap.Logger) *transactorImpl {
	return &transactorImpl{
		db:     db,
		logger: logger,
	}
}

func (t *transactorImpl) WithTx(ctx context.Context, f func(ctx context.Context) error) (txErr error) {
	ctxWithTx, tx, err := injectTx(ctx, t.db)

	if err != nil {
		t.logger.Error("Error while injecting transaction.", zap.Error(err))
		return fmt.Errorf("can not inject transaction, error: %w", err)
	}

	defer func() {
		if txErr != nil {
			if err := tx.Rollback(ctxWithTx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
				t.logger.Error("Error while doing rollback.", zap.Error(err))
			}
			return
		}

		if err := tx.Commit(ctxWithTx); err != nil {
			t.logger.Error("Error while committing transaction.", zap.Error(err))
			txErr = err
		}
	}()

	err = f(ctxWithTx)

	if err != nil {
		return fmt.Errorf("function execution error: %w", err)
	}

	return nil
}

func injectTx(ctx context.Context, pool *pgxpool.Pool) (context.Context, pgx.Tx, error) {
	if tx, err := extractTx(ctx); err == nil {
		return ctx, tx, nil
	}

	tx, err := pool.Begin(ctx)

	if err != nil {
		return nil, nil, err
	}

	return context.WithValue(ctx, txInjector{}, tx), tx, nil
}

type txInjector struct{}

func extractTx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txInjector{}).(pgx.Tx)

	if !ok {
		return nil, ErrTxNotFound
	}

	return tx, nil
}

// sqlxTransactor is the sqlite counterpart, built on database/sql
// transactions through sqlx.

var _ Transactor = (*sqlxTransactor)(nil)

type sqlxTransactor struct {
	logger *zap.Logger
	db     *sqlx.DB
}

func NewSqlxTransactor(db *sqlx.DB, logger *zap.Logger) *sqlxTransactor {
	return &sqlxTransactor{
		db:     db,
		logger: logger,
	}
}

func (t *sqlxTransactor) WithTx(ctx context.Context, f func(ctx context.Context) error) (txErr error) {
	if _, err := extractSqlxTx(ctx); err == nil {
		return f(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)

	if err != nil {
		t.logger.Error("Error while starting transaction.", zap.Error(err))
		return fmt.Errorf("can not start transaction, error: %w", err)
	}

	defer func() {
		if txErr != nil {
			if err := tx.Rollback(); err != nil {
				t.logger.Error("Error while doing rollback.", zap.Error(err))
			}
			return
		}

		if err := tx.Commit(); err != nil {
			t.logger.Error("Error while committing transaction.", zap.Error(err))
			txErr = err
		}
	}()

	err = f(context.WithValue(ctx, sqlxTxInjector{}, tx))

	if err != nil {
		return fmt.Errorf("function execution error: %w", err)
	}

	return nil
}

type sqlxTxInjector struct{}

func extractSqlxTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, ok := ctx.Value(sqlxTxInjector{}).(*sqlx.Tx)

	if !ok {
		return nil, ErrTxNotFound
	}

	return tx, nil
}
