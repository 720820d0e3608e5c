package database

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"invoiceflow-backend/models"
)

// invoicesKey is the substrate slot holding the whole invoice collection
// as one JSON array.
const invoicesKey = "invoiceflow-invoices"

// ErrNotFound is returned when no record carries the requested Id.
var ErrNotFound = errors.New("invoice not found")

// Latency holds the per-operation artificial delays that mimic a remote
// service. Zero values make every operation immediate (tests).
type Latency struct {
	GetAll  time.Duration
	GetByID time.Duration
	Create  time.Duration
	Update  time.Duration
	Delete  time.Duration
}

// DefaultLatency mirrors the service this replaces: mutations are slower
// than reads (create/update > getAll/delete > getByID).
func DefaultLatency() Latency {
	return Latency{
		GetAll:  300 * time.Millisecond,
		GetByID: 200 * time.Millisecond,
		Create:  400 * time.Millisecond,
		Update:  400 * time.Millisecond,
		Delete:  300 * time.Millisecond,
	}
}

// InvoiceStore provides CRUD access to the invoice collection. All
// mutations run under one mutex, so a read-modify-write never interleaves
// with another operation. Operations block for their configured latency
// and always run to completion; there is no cancellation.
type InvoiceStore struct {
	kv      KV
	latency Latency
	seed    []models.Invoice

	mu sync.Mutex
}

// NewInvoiceStore builds a store over the given substrate. The seed is
// written once, on the first access that finds the slot absent; pass nil
// to start from an empty collection.
func NewInvoiceStore(kv KV, latency Latency, seed []models.Invoice) *InvoiceStore {
	return &InvoiceStore{kv: kv, latency: latency, seed: seed}
}

// load reads the persisted collection, seeding the slot on first access.
// An unreadable payload is treated as no data, never as a fatal error.
func (s *InvoiceStore) load() ([]models.Invoice, error) {
	raw, ok, err := s.kv.Get(invoicesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		if len(s.seed) == 0 {
			return nil, nil
		}
		if err := s.save(s.seed); err != nil {
			return nil, err
		}
		raw, _, err = s.kv.Get(invoicesKey)
		if err != nil {
			return nil, err
		}
	}

	var invoices []models.Invoice
	if err := json.Unmarshal([]byte(raw), &invoices); err != nil {
		log.Printf("invoice store: discarding unreadable payload: %v", err)
		return nil, nil
	}
	return invoices, nil
}

func (s *InvoiceStore) save(invoices []models.Invoice) error {
	raw, err := json.Marshal(invoices)
	if err != nil {
		return err
	}
	return s.kv.Set(invoicesKey, string(raw))
}

// GetAll returns the whole collection in stored order.
func (s *InvoiceStore) GetAll() ([]models.Invoice, error) {
	time.Sleep(s.latency.GetAll)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetByID scans the collection for the record with the given Id.
func (s *InvoiceStore) GetByID(id int) (models.Invoice, error) {
	time.Sleep(s.latency.GetByID)
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load()
	if err != nil {
		return models.Invoice{}, err
	}
	for _, inv := range invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Invoice{}, ErrNotFound
}

// Create assigns the next Id (max existing + 1, starting at 1), stamps
// CreatedAt when unset, appends and persists. The caller is responsible
// for supplying consistent subtotal/total; the store treats every field
// except Id opaquely.
func (s *InvoiceStore) Create(invoice models.Invoice) (models.Invoice, error) {
	time.Sleep(s.latency.Create)
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load()
	if err != nil {
		return models.Invoice{}, err
	}

	maxID := 0
	for _, inv := range invoices {
		if inv.ID > maxID {
			maxID = inv.ID
		}
	}
	invoice.ID = maxID + 1
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now().UTC()
	}

	invoices = append(invoices, invoice)
	if err := s.save(invoices); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

// Update replaces the record with the given Id in place. The Id is
// path-addressed: whatever Id the body carries is overwritten with id.
// A zero CreatedAt inherits the stored record's timestamp, mirroring the
// stamp-if-zero rule on Create.
func (s *InvoiceStore) Update(id int, invoice models.Invoice) (models.Invoice, error) {
	time.Sleep(s.latency.Update)
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load()
	if err != nil {
		return models.Invoice{}, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			invoice.ID = id
			if invoice.CreatedAt.IsZero() {
				invoice.CreatedAt = invoices[i].CreatedAt
			}
			invoices[i] = invoice
			if err := s.save(invoices); err != nil {
				return models.Invoice{}, err
			}
			return invoices[i], nil
		}
	}
	return models.Invoice{}, ErrNotFound
}

// Delete removes the record with the given Id.
func (s *InvoiceStore) Delete(id int) error {
	time.Sleep(s.latency.Delete)
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load()
	if err != nil {
		return err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			invoices = append(invoices[:i], invoices[i+1:]...)
			return s.save(invoices)
		}
	}
	return ErrNotFound
}
