package entity

import "time"

// History actions.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionBorrow = "borrow"
	ActionReturn = "return"
)

// Entity types referenced by history and notifications.
const (
	EntityItem     = "item"
	EntityCategory = "category"
	EntitySupplier = "supplier"
	EntityBorrow   = "borrow"
)

// HistoryRecord is one line of the append-only audit trail.
type HistoryRecord struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entityType"`
	EntityID    string    `json:"entityId"`
	EntityName  string    `json:"entityName"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performedBy"`
	Timestamp   time.Time `json:"timestamp"`
}
