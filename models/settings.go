package models

// APIConfig is the payment-provider API configuration saved from the
// settings panel. It lives in its own storage slot, independent of the
// invoice collection.
type APIConfig struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	IsValid  bool   `json:"isValid"`
}
