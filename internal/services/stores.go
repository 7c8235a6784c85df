package services

import (
	"context"

	"salesapp/internal/domain"
)

// Store interfaces satisfied by both internal/repos (sqlite) and
// internal/kvstore (redis). main picks the backend from config.

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateRemarks(ctx context.Context, email, remarks string) error
	BindSession(ctx context.Context, sid, email string) error
	SessionUser(ctx context.Context, sid string) (*domain.User, error)
	UnbindSession(ctx context.Context, sid string) error
}

type CustomerStore interface {
	Create(ctx context.Context, c *domain.Customer) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Customer, error)
}
