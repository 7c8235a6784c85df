package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"salesapp/internal/domain"
)

type UserStore struct{ *Store }

func NewUserStore(s *Store) *UserStore { return &UserStore{Store: s} }

func userKey(email string) string { return userPrefix + strings.ToLower(email) }

// Create claims the user's key with SETNX so concurrent signups with the
// same email cannot both succeed.
func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	ok, err := s.Client.SetNX(ctx, userKey(u.Email), b, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrDuplicateEmail
	}
	return nil
}

// ByEmail walks every user:* key and compares the stored email field. The
// exact key would do, but the scan keeps lookups working for records written
// under differently-cased keys by older deployments.
func (s *UserStore) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := s.Client.Scan(ctx, 0, userPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		u, err := s.getUser(ctx, iter.Val())
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrNotFound
}

func (s *UserStore) UpdateRemarks(ctx context.Context, email, remarks string) error {
	u, err := s.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	u.Remarks = remarks
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, userKey(u.Email), b, 0).Err()
}

func (s *UserStore) getUser(ctx context.Context, key string) (*domain.User, error) {
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// BindSession, SessionUser and UnbindSession keep the session record under
// its own key; sessions are exact-key lookups, never scans.

func (s *UserStore) BindSession(ctx context.Context, sid, email string) error {
	return s.Client.Set(ctx, sessionPrefix+sid, strings.ToLower(email), 0).Err()
}

func (s *UserStore) SessionUser(ctx context.Context, sid string) (*domain.User, error) {
	email, err := s.Client.Get(ctx, sessionPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.ByEmail(ctx, email)
}

func (s *UserStore) UnbindSession(ctx context.Context, sid string) error {
	return s.Client.Del(ctx, sessionPrefix+sid).Err()
}
