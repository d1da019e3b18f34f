package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

var _ BookRepository = (*postgresBooks)(nil)
var _ UserRepository = (*postgresUsers)(nil)

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxQ returns the ambient transaction when one is injected, the pool otherwise.
func pgxQ(ctx context.Context, db *pgxpool.Pool) pgxQuerier {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return db
}

func mapPgErr(logger *zap.Logger, err error) error {
	const errForeignKeyViolation = "23503"
	const errUniqueViolation = "23505"

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case errForeignKeyViolation:
			return entity.ErrUserNotFound
		case errUniqueViolation:
			return entity.ErrUserExists
		}
	}

	logger.Error("Error while accessing to data base.", zap.Error(err))
	return err
}

type postgresBooks struct {
	logger *zap.Logger
	db     *pgxpool.Pool
}

func NewPostgresBookRepository(logger *zap.Logger, db *pgxpool.Pool) *postgresBooks {
	return &postgresBooks{
		logger: logger,
		db:     db,
	}
}

const bookColumns = `id, title, author, year, genre, total_copies, available_copies, created_at`

func scanBook(row pgx.Row) (entity.Book, error) {
	var book entity.Book
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Year,
		&book.Genre,
		&book.TotalCopies,
		&book.AvailableCopies,
		&book.CreatedAt,
	)
	if err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

func (r *postgresBooks) getBook(ctx context.Context, query string, args ...any) (entity.Book, error) {
	book, err := scanBook(pgxQ(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.Book{}, err
	}

	return book, nil
}

func (r *postgresBooks) GetByID(ctx context.Context, id string) (entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return r.getBook(ctx, query, id)
}

func (r *postgresBooks) FindByTitleAuthor(ctx context.Context, title string, author string) (entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE title = $1 AND author = $2`
	return r.getBook(ctx, query, title, author)
}

func (r *postgresBooks) collectBooks(rows pgx.Rows) ([]entity.Book, error) {
	defer rows.Close()

	books := make([]entity.Book, 0)

	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			r.logger.Error("Error while working with row.", zap.Error(err))
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

func (r *postgresBooks) Search(ctx context.Context, query string) ([]entity.Book, error) {
	const querySearch = `
SELECT ` + bookColumns + `
FROM books
WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
ORDER BY title
`

	rows, err := pgxQ(ctx, r.db).Query(ctx, querySearch, query)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	return r.collectBooks(rows)
}

func (r *postgresBooks) ListAll(ctx context.Context) ([]entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books ORDER BY title`

	rows, err := pgxQ(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	return r.collectBooks(rows)
}

func (r *postgresBooks) Add(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO books (id, title, author, year, genre, total_copies, available_copies)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at
`

	err := pgxQ(ctx, r.db).QueryRow(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Author,
		book.Year,
		book.Genre,
		book.TotalCopies,
		book.AvailableCopies,
	).Scan(&book.CreatedAt)

	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.Book{}, err
	}

	return book, nil
}

func (r *postgresBooks) Update(ctx context.Context, book entity.Book) error {
	const query = `
UPDATE books
SET title = $2, author = $3, year = $4, genre = $5, total_copies = $6, available_copies = $7
WHERE id = $1
`

	result, err := pgxQ(ctx, r.db).Exec(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Author,
		book.Year,
		book.Genre,
		book.TotalCopies,
		book.AvailableCopies,
	)

	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return err
	}
	if result.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

func (r *postgresBooks) Remove(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM books WHERE id = $1`

	result, err := pgxQ(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

type postgresUsers struct {
	logger *zap.Logger
	db     *pgxpool.Pool
}

func NewPostgresUserRepository(logger *zap.Logger, db *pgxpool.Pool) *postgresUsers {
	return &postgresUsers{
		logger: logger,
		db:     db,
	}
}

const userColumns = `id, username, role, password_hash, created_at`

func scanUser(row pgx.Row) (entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return entity.User{}, err
	}
	return user, nil
}

func (r *postgresUsers) getUser(ctx context.Context, query string, arg string) (entity.User, error) {
	user, err := scanUser(pgxQ(ctx, r.db).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.User{}, entity.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.User{}, err
	}

	user.Loans, err = r.userLoans(ctx, user.ID)
	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}

func (r *postgresUsers) userLoans(ctx context.Context, userID string) ([]entity.Loan, error) {
	const query = `SELECT user_id, book_id, title, due_date FROM loans WHERE user_id = $1 ORDER BY id`

	rows, err := pgxQ(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	defer rows.Close()

	loans := make([]entity.Loan, 0)

	for rows.Next() {
		var loan entity.Loan
		if err := rows.Scan(&loan.UserID, &loan.BookID, &loan.Title, &loan.DueDate); err != nil {
			r.logger.Error("Error while working with row.", zap.Error(err))
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, rows.Err()
}

func (r *postgresUsers) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getUser(ctx, query, id)
}

func (r *postgresUsers) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getUser(ctx, query, username)
}

func (r *postgresUsers) ListAll(ctx context.Context) ([]entity.User, error) {
	const queryUsers = `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := pgxQ(ctx, r.db).Query(ctx, queryUsers)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	users := make([]entity.User, 0)

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			rows.Close()
			r.logger.Error("Error while working with row.", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	const queryLoans = `SELECT user_id, book_id, title, due_date FROM loans ORDER BY id`

	loanRows, err := pgxQ(ctx, r.db).Query(ctx, queryLoans)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	defer loanRows.Close()

	loansByUser := make(map[string][]entity.Loan)

	for loanRows.Next() {
		var loan entity.Loan
		if err := loanRows.Scan(&loan.UserID, &loan.BookID, &loan.Title, &loan.DueDate); err != nil {
			r.logger.Error("Error while working with row.", zap.Error(err))
			return nil, err
		}
		loansByUser[loan.UserID] = append(loansByUser[loan.UserID], loan)
	}

	if err := loanRows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		if loans, ok := loansByUser[users[i].ID]; ok {
			users[i].Loans = loans
		} else {
			users[i].Loans = make([]entity.Loan, 0)
		}
	}

	return users, nil
}

func (r *postgresUsers) Add(ctx context.Context, user entity.User) (entity.User, error) {
	const query = `
INSERT INTO users (id, username, role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING created_at
`

	err := pgxQ(ctx, r.db).QueryRow(ctx, query, user.ID, user.Username, user.Role, user.PasswordHash).
		Scan(&user.CreatedAt)

	if err != nil {
		return entity.User{}, mapPgErr(r.logger, err)
	}

	if err := r.writeLoans(ctx, user.ID, user.Loans); err != nil {
		return entity.User{}, err
	}

	return user, nil
}

func (r *postgresUsers) Update(ctx context.Context, user entity.User) error {
	const query = `UPDATE users SET username = $2, role = $3, password_hash = $4 WHERE id = $1`

	result, err := pgxQ(ctx, r.db).Exec(ctx, query, user.ID, user.Username, user.Role, user.PasswordHash)
	if err != nil {
		return mapPgErr(r.logger, err)
	}
	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return r.writeLoans(ctx, user.ID, user.Loans)
}

// writeLoans replaces the stored loan list with the given one.
func (r *postgresUsers) writeLoans(ctx context.Context, userID string, loans []entity.Loan) error {
	const queryDelete = `DELETE FROM loans WHERE user_id = $1`

	if _, err := pgxQ(ctx, r.db).Exec(ctx, queryDelete, userID); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return err
	}

	const queryInsert = `
INSERT INTO loans (user_id, book_id, title, due_date)
VALUES ($1, $2, $3, $4)
`

	for _, loan := range loans {
		if _, err := pgxQ(ctx, r.db).Exec(ctx, queryInsert, userID, loan.BookID, loan.Title, loan.DueDate); err != nil {
			return mapPgErr(r.logger, err)
		}
	}

	return nil
}

func (r *postgresUsers) Remove(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	result, err := pgxQ(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return false, err
	}

	return result.RowsAffected() > 0, nil
}
