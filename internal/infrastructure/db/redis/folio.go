package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// FolioSequencer hands out folio sequence numbers backed by a Redis INCR
// per year. Key format: folio:<year>. INCR is atomic, so concurrent
// registrations can never receive the same number.
type FolioSequencer struct {
	client *redis.Client
}

func NewFolioSequencer(client *redis.Client) *FolioSequencer {
	return &FolioSequencer{client: client}
}

// Next returns the next sequence number for the given year, starting at 1.
func (f *FolioSequencer) Next(ctx context.Context, year int) (int64, error) {
	n, err := f.client.Incr(ctx, f.key(year)).Result()
	if err != nil {
		return 0, fmt.Errorf("folio sequence: %w", err)
	}
	return n, nil
}

func (f *FolioSequencer) key(year int) string {
	return fmt.Sprintf("folio:%d", year)
}
