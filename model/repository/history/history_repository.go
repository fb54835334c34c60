package history

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"lendstock.GO/model/entity"
	"lendstock.GO/store"
)

// Repository owns the append-only audit trail. Records are stored
// newest-first and never mutated after Append (Prune is the one opt-in
// exception, see below).
type Repository struct {
	store store.Store
}

func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// All returns the full trail, newest first.
func (r *Repository) All() []entity.HistoryRecord {
	return store.Load(r.store, store.KeyHistory, []entity.HistoryRecord{})
}

// Append prepends one record to the trail.
func (r *Repository) Append(action, entityType, entityID, entityName, details, performedBy string) (entity.HistoryRecord, error) {
	if !r.store.IsAvailable() {
		return entity.HistoryRecord{}, store.ErrUnavailable
	}
	rec := entity.HistoryRecord{
		ID:          uuid.NewString(),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		EntityName:  entityName,
		Details:     details,
		PerformedBy: performedBy,
		Timestamp:   time.Now(),
	}
	records := append([]entity.HistoryRecord{rec}, r.All()...)
	if err := store.Save(r.store, store.KeyHistory, records); err != nil {
		return entity.HistoryRecord{}, err
	}
	return rec, nil
}

// ForEntity returns records touching one entity id, newest first.
func (r *Repository) ForEntity(entityID string) []entity.HistoryRecord {
	var out []entity.HistoryRecord
	for _, rec := range r.All() {
		if rec.EntityID == entityID {
			out = append(out, rec)
		}
	}
	return out
}

// FilterOptions narrows the trail on the read side. Zero values mean "any".
type FilterOptions struct {
	Action      string
	EntityType  string
	PerformedBy string
	From        time.Time
	To          time.Time
	Search      string // case-insensitive match on entity name and details
}

// Filter is a pure projection over All; it never mutates the trail.
func (r *Repository) Filter(opts FilterOptions) []entity.HistoryRecord {
	search := strings.ToLower(opts.Search)
	var out []entity.HistoryRecord
	for _, rec := range r.All() {
		if opts.Action != "" && rec.Action != opts.Action {
			continue
		}
		if opts.EntityType != "" && rec.EntityType != opts.EntityType {
			continue
		}
		if opts.PerformedBy != "" && rec.PerformedBy != opts.PerformedBy {
			continue
		}
		if !opts.From.IsZero() && rec.Timestamp.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && rec.Timestamp.After(opts.To) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.EntityName), search) &&
			!strings.Contains(strings.ToLower(rec.Details), search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ExportCSV writes the full trail as CSV, newest first.
func (r *Repository) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "action", "entity_type", "entity_id", "entity_name", "details", "performed_by"}); err != nil {
		return err
	}
	for _, rec := range r.All() {
		row := []string{
			rec.Timestamp.Format(time.RFC3339),
			rec.Action,
			rec.EntityType,
			rec.EntityID,
			rec.EntityName,
			rec.Details,
			rec.PerformedBy,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Prune caps the trail at max records, dropping the oldest. Retention is an
// explicit operator choice; nothing in the engine calls this on its own.
func (r *Repository) Prune(max int) (int, error) {
	if max < 0 {
		max = 0
	}
	if !r.store.IsAvailable() {
		return 0, store.ErrUnavailable
	}
	records := r.All()
	if len(records) <= max {
		return 0, nil
	}
	removed := len(records) - max
	if err := store.Save(r.store, store.KeyHistory, records[:max]); err != nil {
		return 0, err
	}
	return removed, nil
}
