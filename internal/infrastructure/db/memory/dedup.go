package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const dedupTTL = time.Hour

// DedupChecker is the in-process idempotency store used when Redis is
// disabled. Entries expire after an hour and are pruned lazily on Mark.
type DedupChecker struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewDedupChecker() *DedupChecker {
	return &DedupChecker{seen: make(map[string]time.Time)}
}

func (d *DedupChecker) IsDuplicate(ctx context.Context, trackingCode, status string, ts time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expiry, ok := d.seen[dedupKey(trackingCode, status, ts)]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expiry), nil
}

func (d *DedupChecker) Mark(ctx context.Context, trackingCode, status string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for key, expiry := range d.seen {
		if now.After(expiry) {
			delete(d.seen, key)
		}
	}
	d.seen[dedupKey(trackingCode, status, ts)] = now.Add(dedupTTL)
	return nil
}

func dedupKey(trackingCode, status string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", trackingCode, status, ts.Unix())
}
