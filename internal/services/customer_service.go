package services

import (
	"context"

	"github.com/google/uuid"

	"salesapp/internal/domain"
)

type CustomerService struct {
	Repo CustomerStore
}

func NewCustomerService(r CustomerStore) *CustomerService { return &CustomerService{Repo: r} }

func (s *CustomerService) Create(ctx context.Context, ownerEmail, name, url string) error {
	return s.Repo.Create(ctx, &domain.Customer{
		ID:         uuid.NewString(),
		OwnerEmail: ownerEmail,
		Name:       name,
		URL:        url,
	})
}

func (s *CustomerService) List(ctx context.Context, ownerEmail string) ([]domain.Customer, error) {
	return s.Repo.ListByOwner(ctx, ownerEmail)
}
