package entity

// Category groups items. Items reference it by id only; deleting a category
// leaves their categoryId dangling and reads fall back to a placeholder name.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PlaceholderName is the display fallback when a referenced category or
// supplier no longer exists.
const PlaceholderName = "Other"
