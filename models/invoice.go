package models

import "time"

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// LineItem is one billable row on an invoice. Amount is always derived
// from Quantity and Rate; it is never trusted from external input.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice is the persisted invoice record. Subtotal and Total are derived
// fields; callers must run Recalculate before handing a record to the store.
type Invoice struct {
	ID            int        `json:"Id"`
	InvoiceNumber string     `json:"invoiceNumber"`
	ClientName    string     `json:"clientName"`
	ClientEmail   string     `json:"clientEmail"`
	ClientAddress string     `json:"clientAddress"`
	IssueDate     string     `json:"issueDate"` // ISO date (yyyy-mm-dd)
	DueDate       string     `json:"dueDate"`
	LineItems     []LineItem `json:"lineItems"`
	Tax           float64    `json:"tax"` // percentage, 0-100 nominal
	Subtotal      float64    `json:"subtotal"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}
