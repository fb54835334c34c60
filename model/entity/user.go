package entity

// User identifies the acting session user. The engine only ever reads the
// username for attribution; role gating happens outside the core.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
