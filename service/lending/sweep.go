package lending

import (
	"fmt"
	"time"

	"lendstock.GO/model/entity"
	"lendstock.GO/store"
)

// SweepResult reports what one sweep pass changed.
type SweepResult struct {
	Promoted int // borrowed -> overdue transitions
	Notified int // new overdue notifications created
}

// SweepOverdue promotes past-due loans to overdue and guarantees exactly one
// overdue notification per affected loan. Idempotent: re-running with no time
// passing changes nothing. Status changes persist in one bulk write at the
// end; returned records are never touched.
func (s *Service) SweepOverdue(now time.Time, actor string) (SweepResult, error) {
	var res SweepResult
	if !s.store.IsAvailable() {
		return res, store.ErrUnavailable
	}
	if actor == "" {
		actor = "System"
	}

	borrows := s.All()
	mutated := false
	for i := range borrows {
		b := borrows[i]
		if b.Status != entity.BorrowStatusBorrowed && b.Status != entity.BorrowStatusOverdue {
			continue
		}
		if !b.IsOverdue(now) {
			continue
		}
		if b.Status == entity.BorrowStatusBorrowed {
			borrows[i].Status = entity.BorrowStatusOverdue
			mutated = true
			res.Promoted++
		}
		if !s.notifications.HasOverdueFor(b.ID) {
			days := b.DaysPastDue(now)
			if _, err := s.notifications.Add(entity.NotifyOverdue, "Item Overdue",
				fmt.Sprintf("%s borrowed by %s is %d day(s) overdue", b.ItemName, b.BorrowerName, days),
				b.ID, entity.EntityBorrow, actor); err != nil {
				return res, err
			}
			res.Notified++
		}
	}
	if mutated {
		if err := store.Save(s.store, store.KeyBorrows, borrows); err != nil {
			return res, err
		}
	}
	return res, nil
}
