package entity

import "time"

// Notification types.
const (
	NotifyBorrow   = "borrow"
	NotifyReturn   = "return"
	NotifyOverdue  = "overdue"
	NotifyLowStock = "low_stock"
)

// NotificationRecord is a user-facing alert derived from a lifecycle event.
// Only IsRead is ever mutated after creation.
type NotificationRecord struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	EntityID   string    `json:"entityId"`
	EntityType string    `json:"entityType"`
	CreatedBy  string    `json:"createdBy"`
	Timestamp  time.Time `json:"timestamp"`
}
