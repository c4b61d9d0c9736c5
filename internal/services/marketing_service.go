package services

import (
	"errors"

	"candleworks/internal/domain"
	"candleworks/internal/repos"

	"github.com/google/uuid"
)

type MarketingService struct {
	Repo *repos.MarketingRepo
}

func NewMarketingService(r *repos.MarketingRepo) *MarketingService { return &MarketingService{Repo: r} }

func (s *MarketingService) Subscribe(email string) error {
	if _, err := s.Repo.SubscriberByEmail(email); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.Repo.Subscribe(domain.NewsletterSub{ID: uuid.NewString(), Email: email})
}

func (s *MarketingService) Contact(m domain.ContactMessage) error {
	m.ID = uuid.NewString()
	return s.Repo.InsertMessage(m)
}

func (s *MarketingService) ListMessages(caller *domain.User) ([]domain.ContactMessage, error) {
	if caller == nil || !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.Repo.ListMessages()
}

func (s *MarketingService) DeleteMessage(caller *domain.User, id string) error {
	if caller == nil || !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return s.Repo.DeleteMessage(id)
}
