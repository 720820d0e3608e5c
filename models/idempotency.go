package models

import "time"

// IdempotencyRecord stores the first completed response for a given
// Idempotency-Key, persisted as JSON in the key-value substrate.
type IdempotencyRecord struct {
	ID             string     `json:"id"` // uuid
	Key            string     `json:"key"`
	RequestHash    string     `json:"request_hash"` // sha256 of method|path|body
	Method         string     `json:"method"`
	Path           string     `json:"path"`
	ResponseStatus int        `json:"response_status"` // 0 => not completed yet
	ResponseBody   []byte     `json:"response_body"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}
