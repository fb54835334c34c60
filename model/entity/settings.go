package entity

// Settings is the global singleton read by the repositories when they
// snapshot Item.Status. Passed explicitly into every write path — the engine
// never reads it from ambient state.
type Settings struct {
	Currency          string `json:"currency,omitempty"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

func DefaultSettings() Settings {
	return Settings{Currency: "PHP", LowStockThreshold: 5}
}

// CurrencySymbol maps the configured code to its display symbol. Unknown
// codes fall through as-is.
func (s Settings) CurrencySymbol() string {
	switch s.Currency {
	case "PHP":
		return "₱"
	case "USD", "CAD", "AUD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "":
		return "₱"
	}
	return s.Currency
}
