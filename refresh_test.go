package tradex

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// countingService records every batch quote request it serves.
type countingService struct {
	calls   [][]string
	quotes  map[string]Quote
	failing bool
}

func (s *countingService) Quotes(_ context.Context, symbols []string) (map[string]Quote, error) {
	s.calls = append(s.calls, symbols)
	if s.failing {
		return nil, errors.New("backend unavailable")
	}
	return s.quotes, nil
}

func TestRefresher_IdleWithoutOrders(t *testing.T) {
	svc := &countingService{}
	r := &Refresher{Service: svc}

	if r.State() != Idle {
		t.Error("fresh refresher should be Idle")
	}

	r.Tick(context.Background(), func(map[string]Quote) {
		t.Error("apply should not run while idle")
	})
	if len(svc.calls) != 0 {
		t.Errorf("idle tick issued %d requests, want 0", len(svc.calls))
	}
}

func TestRefresher_TrackTransitions(t *testing.T) {
	r := &Refresher{Service: &countingService{}}

	r.Track([]Order{order(1, "AAPL", Buy, 1, 100)})
	if r.State() != Polling {
		t.Error("refresher should be Polling after tracking orders")
	}

	r.Track(nil)
	if r.State() != Idle {
		t.Error("refresher should return to Idle when the order set empties")
	}
}

func TestRefresher_TickFetchesDistinctSymbols(t *testing.T) {
	svc := &countingService{quotes: map[string]Quote{
		"AAPL": {Price: decimal.NewFromInt(100), Currency: "USD"},
	}}
	r := &Refresher{Service: svc}
	r.Track([]Order{
		order(1, "AAPL", Buy, 1, 100),
		order(2, "AAPL", Sell, 1, 110), // same symbol, one request entry
		order(3, "MSFT", Buy, 1, 200),
	})

	applied := 0
	r.Tick(context.Background(), func(quotes map[string]Quote) {
		applied++
		if _, ok := quotes["AAPL"]; !ok {
			t.Error("apply received a book without AAPL")
		}
	})

	if applied != 1 {
		t.Fatalf("apply ran %d times, want 1", applied)
	}
	if len(svc.calls) != 1 {
		t.Fatalf("tick issued %d requests, want 1", len(svc.calls))
	}
	got := svc.calls[0]
	want := []string{"AAPL", "MSFT"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("requested symbols = %v, want %v", got, want)
	}
}

func TestRefresher_FailedTickSkipsApply(t *testing.T) {
	svc := &countingService{failing: true}
	r := &Refresher{Service: svc}
	r.Track([]Order{order(1, "AAPL", Buy, 1, 100)})

	r.Tick(context.Background(), func(map[string]Quote) {
		t.Error("apply must not run on a failed fetch")
	})
	if len(svc.calls) != 1 {
		t.Errorf("tick issued %d requests, want 1", len(svc.calls))
	}
}

func TestRefresher_CancelledContextDiscardsResult(t *testing.T) {
	svc := &countingService{quotes: map[string]Quote{}}
	r := &Refresher{Service: svc}
	r.Track([]Order{order(1, "AAPL", Buy, 1, 100)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.Tick(ctx, func(map[string]Quote) {
		t.Error("apply must not run after teardown")
	})
}
