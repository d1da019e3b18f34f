package db

import (
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SetupPostgres applies the embedded goose migrations over the pool.
func SetupPostgres(pool *pgxpool.Pool, logger *zap.Logger) {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("can not set goose dialect", zap.Error(err))
		return
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("can not close goose db handle", zap.Error(err))
		}
	}()

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		logger.Error("can not apply migrations", zap.Error(err))
	}
}
