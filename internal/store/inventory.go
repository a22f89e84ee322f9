// Package store holds the in-memory state containers. Each container guards
// its own state; nothing is shared between them.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aradamart/internal/domain"
)

type Inventory struct {
	mu      sync.RWMutex
	records []domain.InventoryRecord
	now     func() time.Time
}

// NewInventory returns an inventory holding seed in the given order.
func NewInventory(seed ...domain.InventoryRecord) *Inventory {
	inv := &Inventory{now: time.Now}
	inv.records = append(inv.records, seed...)
	return inv
}

// SeedInventory is the demo stock the admin dashboard starts with.
func SeedInventory() []domain.InventoryRecord {
	now := time.Now().UTC()
	return []domain.InventoryRecord{
		{ID: "1", SKU: "SKU001", Name: "Laptop Pro", Price: decimal.RequireFromString("999.99"), Quantity: 15, LastUpdated: now},
		{ID: "2", SKU: "SKU002", Name: "Wireless Mouse", Price: decimal.RequireFromString("29.99"), Quantity: 50, LastUpdated: now},
	}
}

// skuTaken reports whether a record other than exceptID uses sku.
// SKUs compare case-sensitively. Caller holds the lock.
func (s *Inventory) skuTaken(sku, exceptID string) bool {
	for _, r := range s.records {
		if r.SKU == sku && r.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Inventory) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Inventory) Create(sku, name string, price decimal.Decimal, qty int) (domain.InventoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skuTaken(sku, "") {
		return domain.InventoryRecord{}, domain.ErrSKUExists
	}
	rec := domain.InventoryRecord{
		ID:          uuid.NewString(),
		SKU:         sku,
		Name:        name,
		Price:       price,
		Quantity:    qty,
		LastUpdated: s.now().UTC(),
	}
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *Inventory) Update(id, sku, name string, price decimal.Decimal, qty int) (domain.InventoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.InventoryRecord{}, domain.ErrRecordNotFound
	}
	if s.skuTaken(sku, id) {
		return domain.InventoryRecord{}, domain.ErrSKUExists
	}
	r := &s.records[i]
	r.SKU, r.Name, r.Price, r.Quantity = sku, name, price, qty
	r.LastUpdated = s.now().UTC()
	return *r, nil
}

// Delete removes the record and returns it. An unknown id is a no-op that
// reports false.
func (s *Inventory) Delete(id string) (domain.InventoryRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.InventoryRecord{}, false
	}
	return s.removeAt(i), true
}

// DeleteIfEmpty removes the record only while its quantity is zero.
func (s *Inventory) DeleteIfEmpty(id string) (domain.InventoryRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.records[i].Quantity != 0 {
		return domain.InventoryRecord{}, false
	}
	return s.removeAt(i), true
}

// removeAt drops the record at i. Caller holds the write lock.
func (s *Inventory) removeAt(i int) domain.InventoryRecord {
	rec := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return rec
}

// AdjustStock adds delta to the quantity, clamping at zero. It reports
// false, changing nothing, when id is unknown.
func (s *Inventory) AdjustStock(id string, delta int) (domain.InventoryRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.InventoryRecord{}, false
	}
	r := &s.records[i]
	r.Quantity = max(0, r.Quantity+delta)
	r.LastUpdated = s.now().UTC()
	return *r, true
}

func (s *Inventory) Get(id string) (domain.InventoryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	return domain.InventoryRecord{}, false
}

func (s *Inventory) BySKU(sku string) (domain.InventoryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.SKU == sku {
			return r, true
		}
	}
	return domain.InventoryRecord{}, false
}

// List returns a copy of all records in insertion order.
func (s *Inventory) List() []domain.InventoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InventoryRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Inventory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
