package service

import (
	"context"
	"log"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
)

type MenuService struct {
	repo  MenuRepository
	cache MenuCache
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

// ListVisible returns the customer-facing menu: available and visible items
// only. The Redis copy is purely an accelerator; a cache miss or error falls
// through to the repository.
func (s *MenuService) ListVisible(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetMenu(ctx); ok {
			return items, nil
		}
	}

	all, err := s.repo.ListMenuItems()
	if err != nil {
		return nil, err
	}

	visible := []domain.MenuItem{}
	for _, item := range all {
		if item.Available && item.IsVisible {
			visible = append(visible, item)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, visible); err != nil {
			log.Printf("[menu] cache write failed: %v", err)
		}
	}
	return visible, nil
}

func (s *MenuService) ListAll() ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems()
}

func (s *MenuService) Get(id int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if item.Name == "" {
		return validationErrorf("name", "name is required")
	}
	if item.Price < 0 {
		return validationErrorf("price", "price must not be negative")
	}
	if item.Category == "" {
		item.Category = "main"
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) Update(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, validationErrorf("price", "price must not be negative")
	}
	updated, err := s.repo.UpdateMenuItem(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[menu] cache invalidation failed: %v", err)
	}
}

var _ MenuServiceInterface = (*MenuService)(nil)
