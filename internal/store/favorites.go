package store

import (
	"sync"

	"aradamart/internal/domain"
)

// Favorites is a set of catalog snapshots keyed by catalog id. Snapshots are
// not refreshed when the remote item changes.
type Favorites struct {
	mu    sync.RWMutex
	items []domain.CatalogItem
}

func NewFavorites() *Favorites { return &Favorites{} }

func (f *Favorites) indexOf(id int) int {
	for i, it := range f.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Add stores item unless an entry with the same id exists.
func (f *Favorites) Add(item domain.CatalogItem) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.indexOf(item.ID) < 0 {
		f.items = append(f.items, item)
	}
}

func (f *Favorites) Remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(id); i >= 0 {
		f.items = append(f.items[:i], f.items[i+1:]...)
	}
}

// Toggle removes item if present, otherwise adds it. It returns whether the
// item is a favorite afterwards.
func (f *Favorites) Toggle(item domain.CatalogItem) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(item.ID); i >= 0 {
		f.items = append(f.items[:i], f.items[i+1:]...)
		return false
	}
	f.items = append(f.items, item)
	return true
}

func (f *Favorites) IsFavorite(id int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.indexOf(id) >= 0
}

func (f *Favorites) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
}

func (f *Favorites) List() []domain.CatalogItem {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.CatalogItem, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Favorites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}
