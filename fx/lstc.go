package fx

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ls-tc.de publishes intraday chart data for currency pairs as plain JSON.
// It is not an FX API, but the last intraday point of the USD/INR
// instrument is a perfectly usable spot rate when the real rate service is
// down.

const lstcUSDINR = "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=97728&series=intraday&type=mini"

// lstcLatestINRPerUSD extracts the most recent USD/INR value from the
// instrument chart payload.
func lstcLatestINRPerUSD(ctx context.Context, client *http.Client) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(ctx, client, lstcUSDINR, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error in wget %q: %w", "USD/INR", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", "USD/INR", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok || math.IsNaN(val) || val <= 0 {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q not a usable rate: %v", "USD/INR", path, jval)
	}
	return decimal.NewFromFloat(val), nil
}
