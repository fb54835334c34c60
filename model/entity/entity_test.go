package entity

import (
	"testing"
	"time"
)

func TestDeriveStatus_Bands(t *testing.T) {
	const threshold = 5
	cases := []struct {
		qty  int
		want string
	}{
		{-1, StatusOutOfStock},
		{0, StatusOutOfStock},
		{1, StatusLowStock},
		{5, StatusLowStock}, // boundary: q == T is still low
		{6, StatusInStock},
		{100, StatusInStock},
	}
	for _, c := range cases {
		if got := DeriveStatus(c.qty, threshold); got != c.want {
			t.Errorf("DeriveStatus(%d, %d) = %q, want %q", c.qty, threshold, got, c.want)
		}
	}
}

func TestBorrowRecord_IsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	b := BorrowRecord{Status: BorrowStatusBorrowed, ExpectedReturnDate: now.Add(-24 * time.Hour)}
	if !b.IsOverdue(now) {
		t.Error("past-due borrowed record not overdue")
	}

	b.ExpectedReturnDate = now.Add(24 * time.Hour)
	if b.IsOverdue(now) {
		t.Error("future-due record reported overdue")
	}

	b.Status = BorrowStatusOverdue
	if !b.IsOverdue(now) {
		t.Error("record already marked overdue must stay overdue")
	}

	b.Status = BorrowStatusReturned
	b.ExpectedReturnDate = now.Add(-72 * time.Hour)
	if b.IsOverdue(now) {
		t.Error("returned record can never be overdue")
	}

	if (BorrowRecord{Status: BorrowStatusBorrowed}).IsOverdue(now) {
		t.Error("record without a due date reported overdue")
	}
}

func TestBorrowRecord_DaysPastDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)
	cases := []struct {
		due  time.Time
		want int
	}{
		{time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), 0}, // due later today
		{time.Date(2025, 6, 14, 1, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, 6, 5, 18, 0, 0, 0, time.UTC), 10},
		{time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), 0}, // future, clamped
	}
	for _, c := range cases {
		b := BorrowRecord{ExpectedReturnDate: c.due}
		if got := b.DaysPastDue(now); got != c.want {
			t.Errorf("DaysPastDue(due=%s) = %d, want %d", c.due.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestSettings_CurrencySymbol(t *testing.T) {
	cases := map[string]string{
		"PHP": "₱",
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"CAD": "$",
		"AUD": "$",
		"":    "₱",
		"JPY": "JPY",
	}
	for code, want := range cases {
		s := Settings{Currency: code}
		if got := s.CurrencySymbol(); got != want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", code, got, want)
		}
	}
}
