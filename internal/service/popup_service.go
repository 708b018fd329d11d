package service

import (
	"time"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
)

type PopupService struct {
	repo PopupRepository
}

func NewPopupService(repo PopupRepository) *PopupService {
	return &PopupService{repo: repo}
}

func (s *PopupService) List() ([]domain.Popup, error) {
	return s.repo.ListPopups()
}

// Active returns the first active popup whose date window contains now, or
// nil when nothing should be shown.
func (s *PopupService) Active() (*domain.Popup, error) {
	popups, err := s.repo.ListPopups()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range popups {
		popup := popups[i]
		if !popup.IsActive {
			continue
		}
		if popup.StartDate != nil && popup.StartDate.After(now) {
			continue
		}
		if popup.EndDate != nil && popup.EndDate.Before(now) {
			continue
		}
		return &popup, nil
	}
	return nil, nil
}

func (s *PopupService) Get(id int) (*domain.Popup, error) {
	popup, err := s.repo.GetPopup(id)
	if err != nil {
		return nil, err
	}
	if popup == nil {
		return nil, ErrNotFound
	}
	return popup, nil
}

func (s *PopupService) Create(popup *domain.Popup) error {
	if popup.Title == "" {
		return validationErrorf("title", "title is required")
	}
	return s.repo.CreatePopup(popup)
}

func (s *PopupService) Update(id int, patch domain.PopupPatch) (*domain.Popup, error) {
	updated, err := s.repo.UpdatePopup(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *PopupService) Delete(id int) error {
	deleted, err := s.repo.DeletePopup(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

var _ PopupServiceInterface = (*PopupService)(nil)
