package service

import "github.com/guniorg/mannabean-delivery-v3/internal/domain"

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *CategoryService) Create(category *domain.Category) error {
	if category.Name == "" {
		return validationErrorf("name", "name is required")
	}
	if category.DisplayName == "" {
		return validationErrorf("displayName", "displayName is required")
	}
	return s.repo.CreateCategory(category)
}

func (s *CategoryService) Update(id int, patch domain.CategoryPatch) (*domain.Category, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, validationErrorf("name", "name must not be empty")
	}
	updated, err := s.repo.UpdateCategory(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *CategoryService) Delete(id int) error {
	deleted, err := s.repo.DeleteCategory(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

var _ CategoryServiceInterface = (*CategoryService)(nil)
