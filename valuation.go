package tradex

// The valuation aggregator: a pure function of the order set and the
// converted price map. The whole output is rebuilt on every call, there is
// no incremental patching.

// PositionValue is the valuation of a single held position.
type PositionValue struct {
	Order   Order
	Current Money // converted market price, in the display currency
	// Available is false when the position has no usable converted price
	// this tick; such positions carry zero values and are excluded from
	// the aggregates.
	Available bool

	// PL is the raw signed figure (current - entry) × quantity.
	PL Money
	// Gain is the side-aware direction of PL: a BUY gains when the price
	// rose, a SELL (short) gains when it fell.
	Gain bool
	// Magnitude is |PL|, the figure the view displays next to its sign.
	Magnitude Money
	// PLPercent is |PL| over |entry × quantity|, as a percentage.
	PLPercent Percent
}

// Valuation is the portfolio-level result consumed by the stocks view.
type Valuation struct {
	Currency  string
	Positions []PositionValue

	// PL is the aggregate profit and loss: BUY positions contribute their
	// signed PL, SELL positions contribute |PL|.
	PL Money
	// Spend is Σ entry × quantity over positions with an available price,
	// regardless of side.
	Spend Money
	// PLPercent is |PL| / |Spend| × 100, or 0 when Spend is 0.
	PLPercent Percent
}

// Valuate combines orders with their converted prices into per-position and
// aggregate unrealized profit and loss, in the given display currency.
func Valuate(orders []Order, prices Converted, currency string) *Valuation {
	v := &Valuation{
		Currency:  currency,
		Positions: make([]PositionValue, 0, len(orders)),
		PL:        M(0, currency),
		Spend:     M(0, currency),
	}

	for _, o := range orders {
		pv := PositionValue{Order: o}
		current, ok := prices.Price(o.ID)
		if !ok {
			// Conversion unavailable: the position is listed but takes no
			// part in the aggregates.
			v.Positions = append(v.Positions, pv)
			continue
		}
		pv.Available = true
		pv.Current = current

		entry := M(o.Price, currency)
		cost := entry.Mul(o.Quantity)
		pv.PL = current.Sub(entry).Mul(o.Quantity)
		pv.Magnitude = pv.PL.Abs()
		if o.Side == Sell {
			// short position: the gain direction is the inverse of the
			// price movement.
			pv.Gain = pv.PL.IsNegative()
		} else {
			pv.Gain = !pv.PL.IsNegative()
		}
		if !cost.IsZero() {
			pv.PLPercent = Percent(pv.Magnitude.Amount().Div(cost.Abs().Amount()).InexactFloat64() * 100)
		}

		if o.Side == Sell {
			v.PL = v.PL.Add(pv.PL.Abs())
		} else {
			v.PL = v.PL.Add(pv.PL)
		}
		v.Spend = v.Spend.Add(cost)
		v.Positions = append(v.Positions, pv)
	}

	if !v.Spend.IsZero() {
		v.PLPercent = Percent(v.PL.Abs().Amount().Div(v.Spend.Abs().Amount()).InexactFloat64() * 100)
	}
	return v
}
