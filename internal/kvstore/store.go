// Package kvstore is the key-value variant of the persistence layer. Records
// live as JSON values under prefixed keys; lookups other than the exact-key
// ones walk the keyspace with a wildcard SCAN, so they are O(n) and only
// suitable at small scale.
package kvstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	userPrefix     = "user:"
	customerPrefix = "customer:"
	sessionPrefix  = "sess:"
)

type Store struct {
	Client *redis.Client
}

func New(addr, pass string, db int) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, Password: pass, DB: db,
	})
	return &Store{Client: rdb}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *Store) Close() error { return s.Client.Close() }
