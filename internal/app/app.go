package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/lending/config"
	"github.com/project/lending/db"
	"github.com/project/lending/internal/controller"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/auth"
	"github.com/project/lending/internal/usecase/inventory"
	"github.com/project/lending/internal/usecase/lending"
	"github.com/project/lending/internal/usecase/outbox"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/project/lending/internal/usecase/stats"
	"go.uber.org/zap"
)

const sleepTime = 3
const dialerTimeout = 30
const dialerKeepAlive = 180
const transportMaxIdleConns = 100
const transportMaxConnsPerHost = 100
const transportIdleConnTimeout = 90
const transportTLSHandshakeTimeout = 15
const transportExpectContinueTimeout = 2
const httpMinErrorStatus = 400

var json = jsoniter.ConfigFastest

type stores struct {
	books      repository.BookRepository
	users      repository.UserRepository
	transactor repository.Transactor
	outbox     repository.OutboxRepository
	close      func()
}

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, logger, cfg)

	if err != nil {
		logger.Error("can not open storage", zap.Error(err))
		return
	}

	defer st.close()

	go runOutbox(ctx, cfg, logger, st.outbox, st.transactor)

	lendingUseCase := lending.New(logger, st.transactor, st.outbox, st.users, st.books, cfg.Lending)
	inventoryUseCase := inventory.New(logger, st.transactor, st.outbox, st.users, st.books, cfg.Lending)
	statsUseCase := stats.New(logger, st.users, st.books)

	jwter := &auth.JWTer{
		Secret: []byte(cfg.Auth.JWTSecret),
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    cfg.Auth.TokenTTL,
	}
	authUseCase := auth.New(logger, st.transactor, st.users, jwter)

	ctrl := controller.New(logger, lendingUseCase, inventoryUseCase, statsUseCase, authUseCase)

	go runHTTP(ctx, cfg, logger, ctrl.NewRouter(jwter))

	<-ctx.Done()

	time.Sleep(time.Second * sleepTime)
}

// openStores picks the storage backend by driver. The outbox relay needs
// postgres; sqlite deployments run with a no-op outbox.
func openStores(ctx context.Context, logger *zap.Logger, cfg *config.Config) (*stores, error) {
	switch cfg.DB.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DB.URL)

		if err != nil {
			return nil, fmt.Errorf("can not create pgxpool: %w", err)
		}

		db.SetupPostgres(pool, logger)

		return &stores{
			books:      repository.NewPostgresBookRepository(logger, pool),
			users:      repository.NewPostgresUserRepository(logger, pool),
			transactor: repository.NewTransactor(pool, logger),
			outbox:     repository.NewOutbox(pool),
			close:      pool.Close,
		}, nil
	case "sqlite":
		conn, err := db.OpenSQLite(cfg.DB.Path)

		if err != nil {
			return nil, fmt.Errorf("can not open sqlite database: %w", err)
		}

		if err := db.EnsureSchema(conn); err != nil {
			return nil, fmt.Errorf("can not apply sqlite schema: %w", err)
		}

		return &stores{
			books:      repository.NewSqliteBookRepository(logger, conn),
			users:      repository.NewSqliteUserRepository(logger, conn),
			transactor: repository.NewSqlxTransactor(conn, logger),
			outbox:     repository.NewNoopOutbox(),
			close: func() {
				if err := conn.Close(); err != nil {
					logger.Error("Error while closing sqlite database.", zap.Error(err))
				}
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown db driver: %s", cfg.DB.Driver)
	}
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	outboxRepository repository.OutboxRepository,
	transactor repository.Transactor,
) {
	dialer := &net.Dialer{
		Timeout:   dialerTimeout * time.Second,
		KeepAlive: dialerKeepAlive * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeout * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeout * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeout * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	client := new(http.Client)
	client.Transport = transport

	globalHandler := globalOutboxHandler(client, cfg.Outbox.BookSendURL, cfg.Outbox.LoanSendURL, logger)
	outboxService := outbox.New(logger, outboxRepository, globalHandler, cfg, transactor)

	outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

func globalOutboxHandler(
	client *http.Client,
	bookURL string,
	loanURL string,
	logger *zap.Logger,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindBook:
			return bookOutboxHandler(client, bookURL, logger), nil
		case repository.OutboxKindLoan:
			return loanOutboxHandler(client, loanURL, logger), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

func SendID(client *http.Client, url string, id string, logger *zap.Logger) error {
	resp, err := client.Post(url, "text/plain", strings.NewReader(id))

	if err != nil {
		return fmt.Errorf("error while processing post request: %w", err)
	}

	defer func() {
		err = resp.Body.Close()
		if err != nil {
			logger.Error("Error while closing response body.", zap.Error(err))
		}
	}()

	if resp.StatusCode >= httpMinErrorStatus {
		return errors.New("http error: " + resp.Status)
	}

	return nil
}

func bookOutboxHandler(client *http.Client, url string, logger *zap.Logger) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		book := entity.Book{}
		err := json.Unmarshal(data, &book)

		if err != nil {
			logger.Error("error while deserializing data in book.")
			return fmt.Errorf("can not deserialize data in book outbox handler: %w", err)
		}

		return SendID(client, url, book.ID, logger)
	}
}

func loanOutboxHandler(client *http.Client, url string, logger *zap.Logger) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		event := entity.LoanEvent{}
		err := json.Unmarshal(data, &event)

		if err != nil {
			logger.Error("error while deserializing data in loan event.")
			return fmt.Errorf("can not deserialize data in loan outbox handler: %w", err)
		}

		return SendID(client, url, event.BookID, logger)
	}
}

func runHTTP(ctx context.Context, cfg *config.Config, logger *zap.Logger, handler http.Handler) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), sleepTime*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("http server listening at port", zap.String("port", cfg.HTTP.Port))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server listen error", zap.Error(err))
	}
}
