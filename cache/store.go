package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a durable key/value cache holding opaque JSON payloads with
// a write timestamp. TTL decisions belong to the caller: the store only
// reports when a value was written. Any failure is non-fatal by
// contract; callers treat a failed read as a miss and carry on.
type Store interface {
	// Get returns the stored payload and when it was written. The bool
	// is false when the key is absent.
	Get(ctx context.Context, key string) (json.RawMessage, time.Time, bool, error)
	// Put stores or replaces the payload under key, stamping it with
	// the current time.
	Put(ctx context.Context, key string, value json.RawMessage) error
}

func New(ctx context.Context, connString string, clock clock.Clock) (Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresStore{pool: pool, clock: clock}, nil
}

type postgresStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (s *postgresStore) Get(ctx context.Context, key string) (json.RawMessage, time.Time, bool, error) {
	const query = `SELECT value, updated FROM cache_entries WHERE key=@key`

	var value []byte
	var updated pgtype.Timestamptz
	row := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"key": key})
	if err := row.Scan(&value, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, false, nil
		}
		return nil, time.Time{}, false, fmt.Errorf("error reading cache entry %s: %w", key, err)
	}

	return value, updated.Time, true, nil
}

func (s *postgresStore) Put(ctx context.Context, key string, value json.RawMessage) error {
	const upsert = `INSERT INTO cache_entries(key, value, updated)
			VALUES (@key, @value, @updated)
			ON CONFLICT (key) DO UPDATE SET value=@value, updated=@updated`

	args := pgx.NamedArgs{
		"key":   key,
		"value": []byte(value),
		"updated": pgtype.Timestamptz{
			Time:  s.clock.Now().UTC(),
			Valid: true,
		},
	}
	if _, err := s.pool.Exec(ctx, upsert, args); err != nil {
		return fmt.Errorf("error writing cache entry %s: %w", key, err)
	}
	return nil
}
