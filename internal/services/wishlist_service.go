package services

import (
	"context"

	"aradamart/internal/domain"
	"aradamart/internal/store"
)

// WishlistService resolves catalog ids to snapshots before touching the
// favorites set.
type WishlistService struct {
	Favs    *store.Favorites
	Catalog *CatalogService
}

func NewWishlistService(favs *store.Favorites, catalog *CatalogService) *WishlistService {
	return &WishlistService{Favs: favs, Catalog: catalog}
}

// Toggle flips id in the favorites set and reports whether it is a favorite
// afterwards. The snapshot comes from the loaded catalog when present and
// from the product service otherwise.
func (s *WishlistService) Toggle(ctx context.Context, id int) (bool, error) {
	if s.Favs.IsFavorite(id) {
		s.Favs.Remove(id)
		return false, nil
	}
	item, ok := s.Catalog.Item(id)
	if !ok {
		var err error
		if item, err = s.Catalog.Product(ctx, id); err != nil {
			return false, err
		}
	}
	s.Favs.Add(item)
	return true, nil
}

func (s *WishlistService) Remove(id int) { s.Favs.Remove(id) }

func (s *WishlistService) Clear() { s.Favs.Clear() }

func (s *WishlistService) List() []domain.CatalogItem { return s.Favs.List() }

func (s *WishlistService) IsFavorite(id int) bool { return s.Favs.IsFavorite(id) }
