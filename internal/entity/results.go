package entity

// LendingResult is the outcome of a single borrow or return. Business-rule
// refusals come back as OK=false with a displayable reason; they are not
// errors.
type LendingResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type BulkReturnResult struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type OverdueDetail struct {
	BookID      string  `json:"book_id"`
	DueDate     string  `json:"due_date"`
	DaysOverdue int     `json:"days_overdue"`
	Fine        float64 `json:"fine"`
}

// LoanEvent is the outbox payload written alongside every successful
// borrow and return.
type LoanEvent struct {
	Action  string `json:"action"`
	UserID  string `json:"user_id"`
	BookID  string `json:"book_id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

const (
	LoanActionBorrowed = "borrowed"
	LoanActionReturned = "returned"
)

// OverdueEntry is one row of the global overdue report.
type OverdueEntry struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	DueDate  string `json:"due_date"`
}

// Statistics is the on-demand projection over catalog and loan state.
// String fields keep the "no data" placeholders the reports render.
type Statistics struct {
	InventoryTopGenre   string  `json:"inventory_top_genre"`
	BorrowedTopGenre    string  `json:"borrowed_top_genre"`
	AvgOverduePerReader float64 `json:"avg_overdue_per_reader"`
	AvgPublicationYear  string  `json:"avg_publication_year"`
	TotalBooks          int     `json:"total_books"`
	TotalReaders        int     `json:"total_readers"`
	TotalActiveLoans    int     `json:"total_active_loans"`
}

// DeleteResult reports a safe-delete refusal together with the payload the
// caller should present (held titles for users).
type DeleteResult struct {
	OK         bool     `json:"ok"`
	Message    string   `json:"message"`
	HeldTitles []string `json:"held_titles,omitempty"`
}

// BatchDeleteResult distinguishes deleted books from the ones skipped
// because copies are still in circulation.
type BatchDeleteResult struct {
	Deleted       int      `json:"deleted"`
	SkippedTitles []string `json:"skipped_titles"`
}
