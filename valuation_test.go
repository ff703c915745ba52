package tradex

import "testing"

func TestValuate_BuyGainAndLoss(t *testing.T) {
	orders := []Order{
		order(1, "AAPL", Buy, 10, 100), // rises to 110: +100
		order(2, "MSFT", Buy, 5, 200),  // falls to 180: -100
	}
	prices := Converted{
		1: INR(110),
		2: INR(180),
	}

	v := Valuate(orders, prices, "INR")

	if len(v.Positions) != 2 {
		t.Fatalf("Valuate() returned %d positions, want 2", len(v.Positions))
	}

	apple := v.Positions[0]
	if !apple.Available {
		t.Fatal("AAPL position should be available")
	}
	if !apple.PL.Equal(INR(100)) {
		t.Errorf("AAPL PL = %v, want %v", apple.PL, INR(100))
	}
	if !apple.Gain {
		t.Error("AAPL should be a gain")
	}
	if !apple.PLPercent.Equal(Percent(10)) {
		t.Errorf("AAPL PL%% = %v, want 10%%", apple.PLPercent)
	}

	msft := v.Positions[1]
	if !msft.PL.Equal(INR(-100)) {
		t.Errorf("MSFT PL = %v, want %v", msft.PL, INR(-100))
	}
	if msft.Gain {
		t.Error("MSFT should be a loss")
	}
	if !msft.Magnitude.Equal(INR(100)) {
		t.Errorf("MSFT magnitude = %v, want %v", msft.Magnitude, INR(100))
	}

	// +100 - 100 = 0, over a spend of 2000.
	if !v.PL.IsZero() {
		t.Errorf("aggregate PL = %v, want 0", v.PL)
	}
	if !v.Spend.Equal(INR(2000)) {
		t.Errorf("spend = %v, want %v", v.Spend, INR(2000))
	}
	if !v.PLPercent.Equal(Percent(0)) {
		t.Errorf("aggregate PL%% = %v, want 0%%", v.PLPercent)
	}
}

func TestValuate_SellInvertsGainDirection(t *testing.T) {
	orders := []Order{order(1, "TSLA", Sell, 2, 500)}

	// Price fell: the short gains even though raw PL is negative.
	v := Valuate(orders, Converted{1: INR(450)}, "INR")
	p := v.Positions[0]
	if !p.PL.Equal(INR(-100)) {
		t.Errorf("PL = %v, want %v", p.PL, INR(-100))
	}
	if !p.Gain {
		t.Error("falling price should be a gain on a short")
	}

	// Price rose: the short loses.
	v = Valuate(orders, Converted{1: INR(550)}, "INR")
	p = v.Positions[0]
	if !p.PL.Equal(INR(100)) {
		t.Errorf("PL = %v, want %v", p.PL, INR(100))
	}
	if p.Gain {
		t.Error("rising price should be a loss on a short")
	}
}

func TestValuate_SellContributesAbsoluteValue(t *testing.T) {
	orders := []Order{
		order(1, "AAPL", Buy, 10, 100),  // -200 signed
		order(2, "TSLA", Sell, 2, 500),  // -100 signed, counted as +100
		order(3, "GOOG", Sell, 1, 1000), // +50 signed, counted as +50
	}
	prices := Converted{
		1: INR(80),
		2: INR(450),
		3: INR(1050),
	}

	v := Valuate(orders, prices, "INR")

	// -200 + |−100| + |+50| = -50
	if !v.PL.Equal(INR(-50)) {
		t.Errorf("aggregate PL = %v, want %v", v.PL, INR(-50))
	}
	// 1000 + 1000 + 1000
	if !v.Spend.Equal(INR(3000)) {
		t.Errorf("spend = %v, want %v", v.Spend, INR(3000))
	}
	// |−50| / 3000 × 100
	if !v.PLPercent.Equal(Percent(50.0 / 3000.0 * 100)) {
		t.Errorf("aggregate PL%% = %v", v.PLPercent)
	}
}

func TestValuate_UnavailablePriceExcludedFromAggregates(t *testing.T) {
	orders := []Order{
		order(1, "AAPL", Buy, 10, 100),
		order(2, "GONE", Buy, 4, 50), // no converted price this tick
	}
	v := Valuate(orders, Converted{1: INR(110)}, "INR")

	if len(v.Positions) != 2 {
		t.Fatalf("Valuate() returned %d positions, want 2", len(v.Positions))
	}
	gone := v.Positions[1]
	if gone.Available {
		t.Error("GONE should be unavailable")
	}
	if !gone.PL.IsZero() || !gone.Magnitude.IsZero() {
		t.Errorf("unavailable position carries values: PL=%v magnitude=%v", gone.PL, gone.Magnitude)
	}
	// GONE's 200 spend must not be counted.
	if !v.Spend.Equal(INR(1000)) {
		t.Errorf("spend = %v, want %v", v.Spend, INR(1000))
	}
	if !v.PL.Equal(INR(100)) {
		t.Errorf("aggregate PL = %v, want %v", v.PL, INR(100))
	}
}

func TestValuate_EmptyPortfolio(t *testing.T) {
	v := Valuate(nil, nil, "INR")
	if len(v.Positions) != 0 {
		t.Errorf("expected no positions, got %d", len(v.Positions))
	}
	if !v.PL.IsZero() || !v.Spend.IsZero() {
		t.Errorf("empty portfolio has PL=%v spend=%v, want zeros", v.PL, v.Spend)
	}
	if !v.PLPercent.Equal(Percent(0)) {
		t.Errorf("empty portfolio PL%% = %v, want 0%%", v.PLPercent)
	}
}

func TestValuate_NilPricesListsEverythingUnavailable(t *testing.T) {
	orders := []Order{order(1, "AAPL", Buy, 1, 100)}
	v := Valuate(orders, nil, "INR")
	if len(v.Positions) != 1 {
		t.Fatalf("Valuate() returned %d positions, want 1", len(v.Positions))
	}
	if v.Positions[0].Available {
		t.Error("position should be unavailable before the first tick")
	}
}
