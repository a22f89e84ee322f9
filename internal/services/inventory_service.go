package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"aradamart/internal/domain"
	"aradamart/internal/store"
)

// InventoryService applies admin inventory changes and records each one in
// the activity log.
type InventoryService struct {
	Inv *store.Inventory
	Log *store.ActivityLog
}

func NewInventoryService(inv *store.Inventory, log *store.ActivityLog) *InventoryService {
	return &InventoryService{Inv: inv, Log: log}
}

func productDetails(r domain.InventoryRecord) string {
	return fmt.Sprintf("%s (SKU: %s) - $%s", r.Name, r.SKU, r.Price.StringFixed(2))
}

func (s *InventoryService) Create(ctx context.Context, sku, name string, price decimal.Decimal, qty int) (domain.InventoryRecord, error) {
	rec, err := s.Inv.Create(sku, name, price, qty)
	if err != nil {
		return domain.InventoryRecord{}, err
	}
	s.Log.Record(ctx, "Product Created", domain.ActivityProduct, productDetails(rec))
	return rec, nil
}

func (s *InventoryService) Update(ctx context.Context, id, sku, name string, price decimal.Decimal, qty int) (domain.InventoryRecord, error) {
	rec, err := s.Inv.Update(id, sku, name, price, qty)
	if err != nil {
		return domain.InventoryRecord{}, err
	}
	s.Log.Record(ctx, "Product Updated", domain.ActivityProduct, productDetails(rec))
	return rec, nil
}

// Delete removes id. Only the call that actually removed the record logs it.
func (s *InventoryService) Delete(ctx context.Context, id string) {
	if rec, ok := s.Inv.Delete(id); ok {
		s.recordDeleted(ctx, rec)
	}
}

func (s *InventoryService) recordDeleted(ctx context.Context, rec domain.InventoryRecord) {
	s.Log.Record(ctx, "Product Deleted", domain.ActivityProduct, fmt.Sprintf("%s (SKU: %s)", rec.Name, rec.SKU))
}

type AdjustResult struct {
	Record  domain.InventoryRecord `json:"record"`
	Removed bool                   `json:"removed"`
}

// Adjust changes stock by delta, clamped at zero. With prune set, a record
// still at zero when the prune runs is deleted as well; a concurrent restock
// wins. It reports false for an unknown id.
func (s *InventoryService) Adjust(ctx context.Context, id string, delta int, prune bool) (AdjustResult, bool) {
	rec, ok := s.Inv.AdjustStock(id, delta)
	if !ok {
		return AdjustResult{}, false
	}
	action := "Stock Decreased"
	if delta > 0 {
		action = "Stock Increased"
	}
	s.Log.Record(ctx, action, domain.ActivityStock,
		fmt.Sprintf("%s (SKU: %s) - New stock: %d", rec.Name, rec.SKU, rec.Quantity))

	res := AdjustResult{Record: rec}
	if prune && rec.Quantity == 0 {
		if gone, ok := s.Inv.DeleteIfEmpty(id); ok {
			s.recordDeleted(ctx, gone)
			res.Removed = true
		}
	}
	return res, true
}

// Availability buckets the stock of id.
func (s *InventoryService) Availability(id string) (domain.Availability, bool) {
	rec, ok := s.Inv.Get(id)
	if !ok {
		return domain.Availability{}, false
	}
	status := "OUT_OF_STOCK"
	switch {
	case rec.Quantity >= 5:
		status = "IN_STOCK"
	case rec.Quantity > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: rec.Quantity}, true
}

func (s *InventoryService) List() []domain.InventoryRecord { return s.Inv.List() }

func (s *InventoryService) Get(id string) (domain.InventoryRecord, bool) { return s.Inv.Get(id) }
