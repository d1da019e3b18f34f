package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

// SQLite adapters back the single-node deployment and the repository tests.
// They speak the same contracts as the postgres adapters, so the use cases
// never know which one is underneath.

var _ BookRepository = (*sqliteBooks)(nil)
var _ UserRepository = (*sqliteUsers)(nil)

func sqlxQ(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, err := extractSqlxTx(ctx); err == nil {
		return tx
	}
	return db
}

type bookRow struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	Year            int       `db:"year"`
	Genre           string    `db:"genre"`
	TotalCopies     int       `db:"total_copies"`
	AvailableCopies int       `db:"available_copies"`
	CreatedAt       time.Time `db:"created_at"`
}

func (row bookRow) toEntity() entity.Book {
	return entity.Book{
		ID:              row.ID,
		Title:           row.Title,
		Author:          row.Author,
		Year:            row.Year,
		Genre:           row.Genre,
		TotalCopies:     row.TotalCopies,
		AvailableCopies: row.AvailableCopies,
		CreatedAt:       row.CreatedAt,
	}
}

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type loanRow struct {
	UserID  string `db:"user_id"`
	BookID  string `db:"book_id"`
	Title   string `db:"title"`
	DueDate string `db:"due_date"`
}

func (row loanRow) toEntity() entity.Loan {
	return entity.Loan{
		UserID:  row.UserID,
		BookID:  row.BookID,
		Title:   row.Title,
		DueDate: row.DueDate,
	}
}

type sqliteBooks struct {
	logger *zap.Logger
	db     *sqlx.DB
}

func NewSqliteBookRepository(logger *zap.Logger, db *sqlx.DB) *sqliteBooks {
	return &sqliteBooks{
		logger: logger,
		db:     db,
	}
}

const sqliteBookColumns = `id, title, author, year, genre, total_copies, available_copies, created_at`

func (r *sqliteBooks) getBook(ctx context.Context, query string, args ...any) (entity.Book, error) {
	var row bookRow
	err := sqlx.GetContext(ctx, sqlxQ(ctx, r.db), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.Book{}, err
	}

	return row.toEntity(), nil
}

func (r *sqliteBooks) GetByID(ctx context.Context, id string) (entity.Book, error) {
	const query = `SELECT ` + sqliteBookColumns + ` FROM books WHERE id = ?`
	return r.getBook(ctx, query, id)
}

func (r *sqliteBooks) FindByTitleAuthor(ctx context.Context, title string, author string) (entity.Book, error) {
	const query = `SELECT ` + sqliteBookColumns + ` FROM books WHERE title = ? AND author = ?`
	return r.getBook(ctx, query, title, author)
}

func (r *sqliteBooks) listBooks(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	var rows []bookRow
	if err := sqlx.SelectContext(ctx, sqlxQ(ctx, r.db), &rows, query, args...); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	books := make([]entity.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toEntity())
	}

	return books, nil
}

func (r *sqliteBooks) Search(ctx context.Context, query string) ([]entity.Book, error) {
	const querySearch = `
SELECT ` + sqliteBookColumns + `
FROM books
WHERE LOWER(title) LIKE ? OR LOWER(author) LIKE ?
ORDER BY title
`

	pattern := "%" + strings.ToLower(query) + "%"
	return r.listBooks(ctx, querySearch, pattern, pattern)
}

func (r *sqliteBooks) ListAll(ctx context.Context) ([]entity.Book, error) {
	const query = `SELECT ` + sqliteBookColumns + ` FROM books ORDER BY title`
	return r.listBooks(ctx, query)
}

func (r *sqliteBooks) Add(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO books (id, title, author, year, genre, total_copies, available_copies, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

	book.CreatedAt = time.Now().UTC()

	_, err := sqlxQ(ctx, r.db).ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Author,
		book.Year,
		book.Genre,
		book.TotalCopies,
		book.AvailableCopies,
		book.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.Book{}, err
	}

	return book, nil
}

func (r *sqliteBooks) Update(ctx context.Context, book entity.Book) error {
	const query = `
UPDATE books
SET title = ?, author = ?, year = ?, genre = ?, total_copies = ?, available_copies = ?
WHERE id = ?
`

	result, err := sqlxQ(ctx, r.db).ExecContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.Year,
		book.Genre,
		book.TotalCopies,
		book.AvailableCopies,
		book.ID,
	)

	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

func (r *sqliteBooks) Remove(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM books WHERE id = ?`

	result, err := sqlxQ(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

type sqliteUsers struct {
	logger *zap.Logger
	db     *sqlx.DB
}

func NewSqliteUserRepository(logger *zap.Logger, db *sqlx.DB) *sqliteUsers {
	return &sqliteUsers{
		logger: logger,
		db:     db,
	}
}

const sqliteUserColumns = `id, username, role, password_hash, created_at`

func (r *sqliteUsers) getUser(ctx context.Context, query string, arg string) (entity.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, sqlxQ(ctx, r.db), &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, entity.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.User{}, err
	}

	loans, err := r.userLoans(ctx, row.ID)
	if err != nil {
		return entity.User{}, err
	}

	return entity.User{
		ID:           row.ID,
		Username:     row.Username,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
		Loans:        loans,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *sqliteUsers) userLoans(ctx context.Context, userID string) ([]entity.Loan, error) {
	const query = `SELECT user_id, book_id, title, due_date FROM loans WHERE user_id = ? ORDER BY id`

	var rows []loanRow
	if err := sqlx.SelectContext(ctx, sqlxQ(ctx, r.db), &rows, query, userID); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	loans := make([]entity.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.toEntity())
	}

	return loans, nil
}

func (r *sqliteUsers) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `SELECT ` + sqliteUserColumns + ` FROM users WHERE id = ?`
	return r.getUser(ctx, query, id)
}

func (r *sqliteUsers) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	const query = `SELECT ` + sqliteUserColumns + ` FROM users WHERE username = ?`
	return r.getUser(ctx, query, username)
}

func (r *sqliteUsers) ListAll(ctx context.Context) ([]entity.User, error) {
	const queryUsers = `SELECT ` + sqliteUserColumns + ` FROM users ORDER BY username`

	var rows []userRow
	if err := sqlx.SelectContext(ctx, sqlxQ(ctx, r.db), &rows, queryUsers); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	const queryLoans = `SELECT user_id, book_id, title, due_date FROM loans ORDER BY id`

	var loanRows []loanRow
	if err := sqlx.SelectContext(ctx, sqlxQ(ctx, r.db), &loanRows, queryLoans); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return nil, err
	}

	loansByUser := make(map[string][]entity.Loan)
	for _, row := range loanRows {
		loansByUser[row.UserID] = append(loansByUser[row.UserID], row.toEntity())
	}

	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		loans := loansByUser[row.ID]
		if loans == nil {
			loans = make([]entity.Loan, 0)
		}
		users = append(users, entity.User{
			ID:           row.ID,
			Username:     row.Username,
			Role:         row.Role,
			PasswordHash: row.PasswordHash,
			Loans:        loans,
			CreatedAt:    row.CreatedAt,
		})
	}

	return users, nil
}

func (r *sqliteUsers) Add(ctx context.Context, user entity.User) (entity.User, error) {
	const query = `
INSERT INTO users (id, username, role, password_hash, created_at)
VALUES (?, ?, ?, ?, ?)
`

	user.CreatedAt = time.Now().UTC()

	_, err := sqlxQ(ctx, r.db).ExecContext(ctx, query, user.ID, user.Username, user.Role, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return entity.User{}, entity.ErrUserExists
		}
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return entity.User{}, err
	}

	if err := r.writeLoans(ctx, user.ID, user.Loans); err != nil {
		return entity.User{}, err
	}

	return user, nil
}

func (r *sqliteUsers) Update(ctx context.Context, user entity.User) error {
	const query = `UPDATE users SET username = ?, role = ?, password_hash = ? WHERE id = ?`

	result, err := sqlxQ(ctx, r.db).ExecContext(ctx, query, user.Username, user.Role, user.PasswordHash, user.ID)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrUserNotFound
	}

	return r.writeLoans(ctx, user.ID, user.Loans)
}

func (r *sqliteUsers) writeLoans(ctx context.Context, userID string, loans []entity.Loan) error {
	const queryDelete = `DELETE FROM loans WHERE user_id = ?`

	if _, err := sqlxQ(ctx, r.db).ExecContext(ctx, queryDelete, userID); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return err
	}

	const queryInsert = `INSERT INTO loans (user_id, book_id, title, due_date) VALUES (?, ?, ?, ?)`

	for _, loan := range loans {
		if _, err := sqlxQ(ctx, r.db).ExecContext(ctx, queryInsert, userID, loan.BookID, loan.Title, loan.DueDate); err != nil {
			r.logger.Error("Error while accessing to data base.", zap.Error(err))
			return err
		}
	}

	return nil
}

func (r *sqliteUsers) Remove(ctx context.Context, id string) (bool, error) {
	const queryLoans = `DELETE FROM loans WHERE user_id = ?`

	if _, err := sqlxQ(ctx, r.db).ExecContext(ctx, queryLoans, id); err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return false, err
	}

	const query = `DELETE FROM users WHERE id = ?`

	result, err := sqlxQ(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Error while accessing to data base.", zap.Error(err))
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
