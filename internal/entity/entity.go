package entity

import (
	"errors"
	"time"
)

const (
	RoleReader    = "reader"
	RoleLibrarian = "librarian"
)

// DateFormat is the wire and storage format for loan due dates.
// Loans are tracked at day granularity, no time component.
const DateFormat = "2006-01-02"

// DeletedBookTitle is rendered for loans whose book has left the catalog.
const DeletedBookTitle = "book no longer in catalog"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidYear  = errors.New("invalid publication year")

	ErrInvalidCard        = errors.New("invalid library card id")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Year            int       `json:"year"`
	Genre           string    `json:"genre"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
}

// OnLoan reports how many copies are currently in circulation.
func (b Book) OnLoan() int {
	return b.TotalCopies - b.AvailableCopies
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Loans        []Loan    `json:"loans"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) IsReader() bool {
	return u.Role == RoleReader
}

// HoldsBook reports whether the user has an active loan for the book.
func (u User) HoldsBook(bookID string) bool {
	for _, loan := range u.Loans {
		if loan.BookID == bookID {
			return true
		}
	}
	return false
}

// Loan is an active loan of one book copy. Title is denormalized so the
// loan stays presentable after the book is removed from the catalog.
type Loan struct {
	UserID  string `json:"user_id"`
	BookID  string `json:"book_id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

// DueBefore reports whether the loan is due strictly before day.
// A due date that does not parse is treated as not yet due.
func (l Loan) DueBefore(day time.Time) bool {
	due, err := time.Parse(DateFormat, l.DueDate)
	if err != nil {
		return false
	}
	return due.Before(Midnight(day))
}

func (l Loan) DisplayTitle() string {
	if l.Title == "" {
		return DeletedBookTitle
	}
	return l.Title
}

// Midnight truncates t to day granularity in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
