package kvstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"salesapp/internal/domain"
)

type CustomerStore struct{ *Store }

func NewCustomerStore(s *Store) *CustomerStore { return &CustomerStore{Store: s} }

func (s *CustomerStore) Create(ctx context.Context, c *domain.Customer) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, customerPrefix+c.ID, b, 0).Err()
}

// ListByOwner scans customer:* and filters by owner. Linear over all leads
// of all users; no secondary index exists.
func (s *CustomerStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Customer, error) {
	out := []domain.Customer{}
	iter := s.Client.Scan(ctx, 0, customerPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := s.Client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			return nil, err
		}
		var c domain.Customer
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		if strings.EqualFold(c.OwnerEmail, ownerEmail) {
			out = append(out, c)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
