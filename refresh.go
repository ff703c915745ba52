package tradex

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultRefreshInterval is the canonical poll period of the stocks view.
// The original client shipped with both 1s and 5s variants; 5s is the one
// kept here.
const DefaultRefreshInterval = 5 * time.Second

// QuoteService is the slice of the backend gateway the refresher needs:
// one batch quote call for a list of symbols.
type QuoteService interface {
	Quotes(ctx context.Context, symbols []string) (map[string]Quote, error)
}

// RefreshState tells whether the refresher is actively polling.
type RefreshState int

const (
	// Idle: no symbols tracked, ticks issue no request and no update.
	Idle RefreshState = iota
	// Polling: a non-empty symbol list is fetched on every tick.
	Polling
)

// Refresher polls the gateway for current market prices of the tracked
// symbols on a fixed interval, handing the caller a complete replacement
// quote book each time. It is Idle until Track is given a non-empty order
// set, and returns to Idle when the set becomes empty. Cancelling the Run
// context tears the poll loop down; a request already in flight is simply
// abandoned with it.
type Refresher struct {
	Service  QuoteService
	Interval time.Duration // DefaultRefreshInterval when zero

	mu      sync.Mutex
	symbols []string
}

// Track replaces the tracked symbol set with the symbols held in orders.
// An empty or nil order set puts the refresher back to Idle.
func (r *Refresher) Track(orders []Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.symbols = Symbols(orders)
}

// State reports Idle or Polling.
func (r *Refresher) State() RefreshState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.symbols) == 0 {
		return Idle
	}
	return Polling
}

func (r *Refresher) interval() time.Duration {
	if r.Interval > 0 {
		return r.Interval
	}
	return DefaultRefreshInterval
}

// Run fetches once immediately, then on every tick until ctx is cancelled.
// Each successful fetch calls apply with the new quote book; a failed fetch
// is logged and terminal for that tick only, the next tick retries on its
// own.
func (r *Refresher) Run(ctx context.Context, apply func(map[string]Quote)) {
	ticker := time.NewTicker(r.interval())
	defer ticker.Stop()

	r.tick(ctx, apply)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx, apply)
		}
	}
}

// Tick performs a single fetch-and-apply cycle, the unit the Run loop
// repeats. Exposed for one-shot use by the non-watching stocks view.
func (r *Refresher) Tick(ctx context.Context, apply func(map[string]Quote)) {
	r.tick(ctx, apply)
}

func (r *Refresher) tick(ctx context.Context, apply func(map[string]Quote)) {
	r.mu.Lock()
	symbols := make([]string, len(r.symbols))
	copy(symbols, r.symbols)
	r.mu.Unlock()

	if len(symbols) == 0 {
		return // idle: no request, no update
	}

	quotes, err := r.Service.Quotes(ctx, symbols)
	if err != nil {
		log.Printf("error fetching quotes: %v", err)
		return
	}
	if ctx.Err() != nil {
		return // torn down while the request was in flight, discard
	}
	apply(quotes)
}
