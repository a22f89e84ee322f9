package services

import (
	"context"
	"strings"
	"sync"

	"aradamart/internal/domain"
	applog "aradamart/internal/log"
)

// CatalogSource is the read-only product service.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]domain.CatalogItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, id int) (domain.CatalogItem, error)
}

// DirectoryView is a consistent copy of the directory state.
type DirectoryView struct {
	Items      []domain.CatalogItem `json:"items"`
	Filtered   int                  `json:"filtered"`
	Total      int                  `json:"total"`
	Query      string               `json:"query"`
	Category   string               `json:"category,omitempty"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	HasMore    bool                 `json:"hasMore"`
	Loading    bool                 `json:"loading"`
	Error      string               `json:"error,omitempty"`
	Categories []string             `json:"categories"`
}

// CatalogService owns the fetched catalog, the search/category filter and
// the visible window that grows a page at a time.
type CatalogService struct {
	src      CatalogSource
	pageSize int

	mu         sync.RWMutex
	products   []domain.CatalogItem
	categories []string
	query      string
	category   string
	page       int
	filtered   []domain.CatalogItem
	visible    []domain.CatalogItem
	inflight   int
	errMsg     string
}

func NewCatalogService(src CatalogSource, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &CatalogService{src: src, pageSize: pageSize}
}

// Load fetches the full catalog and replaces the snapshot, resetting the
// filter and paging. On failure the previous snapshot stays and the error
// message is kept for View. Overlapping loads apply in completion order.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.inflight++
	s.errMsg = ""
	s.mu.Unlock()

	products, err := s.src.ListProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.products = products
	s.query, s.category, s.page = "", "", 0
	s.recompute()
	return nil
}

// LoadCategories refreshes the category list. Failures are logged only and
// never reach the error slot.
func (s *CatalogService) LoadCategories(ctx context.Context) {
	cats, err := s.src.ListCategories(ctx)
	if err != nil {
		applog.Error(nil, "catalog.categories.fail", err, nil)
		return
	}
	s.mu.Lock()
	s.categories = cats
	s.mu.Unlock()
}

func (s *CatalogService) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
	s.page = 0
	s.recompute()
}

// SetCategory selects a category slug; "" clears the selection.
func (s *CatalogService) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	s.page = 0
	s.recompute()
}

// LoadMore grows the visible window by one page. It reports false once the
// whole filtered set is visible.
func (s *CatalogService) LoadMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.visible) >= len(s.filtered) {
		return false
	}
	s.page++
	s.recompute()
	return true
}

func (s *CatalogService) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// recompute rebuilds the filtered set and the visible prefix. Caller holds
// the write lock.
func (s *CatalogService) recompute() {
	s.filtered = filterProducts(s.products, s.query, s.category)
	n := min(len(s.filtered), (s.page+1)*s.pageSize)
	s.visible = s.filtered[:n:n]
}

// filterProducts keeps items whose title contains q case-insensitively and
// whose category matches, preserving source order.
func filterProducts(products []domain.CatalogItem, q, category string) []domain.CatalogItem {
	q = strings.ToLower(q)
	out := make([]domain.CatalogItem, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *CatalogService) View() DirectoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return DirectoryView{
		Items:      append([]domain.CatalogItem(nil), s.visible...),
		Filtered:   len(s.filtered),
		Total:      len(s.products),
		Query:      s.query,
		Category:   s.category,
		Page:       s.page,
		PageSize:   s.pageSize,
		HasMore:    len(s.visible) < len(s.filtered),
		Loading:    s.inflight > 0,
		Error:      s.errMsg,
		Categories: append([]string(nil), s.categories...),
	}
}

// Item looks id up in the current snapshot.
func (s *CatalogService) Item(id int) (domain.CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.CatalogItem{}, false
}

// Product fetches a single item from the source for detail pages.
func (s *CatalogService) Product(ctx context.Context, id int) (domain.CatalogItem, error) {
	return s.src.GetProduct(ctx, id)
}
