package entity

import "time"

// Borrow lifecycle states. borrowed -> overdue happens only via the sweep;
// returned is terminal.
const (
	BorrowStatusBorrowed = "borrowed"
	BorrowStatusReturned = "returned"
	BorrowStatusOverdue  = "overdue"
)

// BorrowRecord tracks one loan of quantity against an item. ItemName is a
// display snapshot taken at creation.
type BorrowRecord struct {
	ID                 string     `json:"id"`
	ItemID             string     `json:"itemId"`
	ItemName           string     `json:"itemName"`
	BorrowerName       string     `json:"borrowerName"`
	BorrowerEmail      string     `json:"borrowerEmail"`
	BorrowerPhone      string     `json:"borrowerPhone,omitempty"`
	QuantityBorrowed   int        `json:"quantityBorrowed"`
	BorrowDate         time.Time  `json:"borrowDate"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate"`
	ActualReturnDate   *time.Time `json:"actualReturnDate,omitempty"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes,omitempty"`
	BorrowedBy         string     `json:"borrowedBy"`
	ReturnedBy         string     `json:"returnedBy,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// IsOverdue reports whether the loan is past due at now. A record already
// marked overdue stays overdue; a returned record never is.
func (b BorrowRecord) IsOverdue(now time.Time) bool {
	if b.Status == BorrowStatusReturned {
		return false
	}
	if b.ExpectedReturnDate.IsZero() {
		return false
	}
	if b.Status == BorrowStatusOverdue {
		return true
	}
	return b.ExpectedReturnDate.Before(now)
}

// DaysPastDue counts whole calendar days past the expected return date,
// comparing at midnight so a loan due earlier today is 0 days overdue.
func (b BorrowRecord) DaysPastDue(now time.Time) int {
	if b.ExpectedReturnDate.IsZero() {
		return 0
	}
	due := midnight(b.ExpectedReturnDate)
	today := midnight(now)
	days := int(today.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
