package telegram

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// replayGuard remembers recently processed update ids. Telegram redelivers an
// update when the webhook answer is late; a redelivery must not run twice.
type replayGuard struct {
	mu   sync.Mutex
	seen *expirable.LRU[int64, struct{}]
}

func newReplayGuard(size int, ttl time.Duration) *replayGuard {
	if size <= 0 {
		return nil
	}
	return &replayGuard{
		seen: expirable.NewLRU[int64, struct{}](size, nil, ttl),
	}
}

// firstSeen records id and reports whether it was not seen before.
func (g *replayGuard) firstSeen(id int64) bool {
	if g == nil {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seen.Contains(id) {
		return false
	}
	g.seen.Add(id, struct{}{})
	return true
}
