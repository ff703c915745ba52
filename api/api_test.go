package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email == "laplace@example.com" && creds.Password == "secret" {
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid Credentials"})
	}))
	defer srv.Close()
	c := New(srv.URL)

	token, err := c.Login(context.Background(), "laplace@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "tok-123" {
		t.Errorf("Login() token = %q, want tok-123", token)
	}

	_, err = c.Login(context.Background(), "laplace@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with bad password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestStocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user-stocks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 7, "stock_name": "AAPL", "stock_price": "150.5", "quantity": 10, "type": "BUY", "created_at": "2025-06-01T10:30:00Z"},
			{"id": 8, "stock_name": "TSLA", "stock_price": "200", "quantity": 2, "type": "SELL", "created_at": "2025-06-02T09:00:00Z"}
		]`))
	}))
	defer srv.Close()

	orders, err := New(srv.URL).Stocks(context.Background(), 1)
	if err != nil {
		t.Fatalf("Stocks() error = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("Stocks() returned %d orders, want 2", len(orders))
	}
	if orders[0].ID != 7 || orders[0].Symbol != "AAPL" || !orders[0].Price.Equal(decimal.RequireFromString("150.5")) {
		t.Errorf("unexpected first order: %+v", orders[0])
	}
	if orders[1].Side != "SELL" {
		t.Errorf("second order side = %q, want SELL", orders[1].Side)
	}
}

func TestQuotes_NormalizesIndexKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a quote book keyed by request position instead of symbol
		w.Write([]byte(`{
			"0": {"regularMarketPrice": 150.5, "currency": "USD"},
			"1": {"regularMarketPrice": 2600, "currency": "INR"}
		}`))
	}))
	defer srv.Close()

	book, err := New(srv.URL).Quotes(context.Background(), []string{"AAPL", "RELIANCE.NS"})
	if err != nil {
		t.Fatalf("Quotes() error = %v", err)
	}
	q, ok := book["AAPL"]
	if !ok {
		t.Fatalf("book has no AAPL entry: %v", book)
	}
	if q.Currency != "USD" || !q.Price.Equal(decimal.RequireFromString("150.5")) {
		t.Errorf("AAPL quote = %+v", q)
	}
	if _, ok := book["RELIANCE.NS"]; !ok {
		t.Errorf("book has no RELIANCE.NS entry: %v", book)
	}
}

func TestQuotes_SymbolKeysPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AAPL": {"regularMarketPrice": 150.5, "currency": "USD"}}`))
	}))
	defer srv.Close()

	book, err := New(srv.URL).Quotes(context.Background(), []string{"AAPL"})
	if err != nil {
		t.Fatalf("Quotes() error = %v", err)
	}
	if _, ok := book["AAPL"]; !ok {
		t.Errorf("book has no AAPL entry: %v", book)
	}
}

func TestBuySendsWholePayload(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/buy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Buy(context.Background(), 1, "AAPL", "Apple Inc.", 10,
		decimal.RequireFromString("150.5"), decimal.RequireFromString("100000"))
	if err != nil {
		t.Fatalf("Buy() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("cannot decode buy payload: %v", err)
	}
	if got["symbol"] != "AAPL" || got["stock_name"] != "Apple Inc." {
		t.Errorf("buy payload = %v", got)
	}
	// price and balance must be JSON numbers: the backend adds and
	// subtracts them, and a quoted string would concatenate instead.
	if got["price"] != 150.5 || got["balance"] != 100000.0 {
		t.Errorf("buy payload prices = %v (%T) %v (%T)", got["price"], got["price"], got["balance"], got["balance"])
	}
	for _, quoted := range []string{`"price":"`, `"balance":"`} {
		if strings.Contains(string(body), quoted) {
			t.Errorf("buy payload sends %s as a string: %s", quoted, body)
		}
	}
}

func TestCloseSendsNumericPrices(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Close(context.Background(), 1, "TSLA", "Tesla", "SELL", 2,
		decimal.RequireFromString("500"), decimal.RequireFromString("450.25"), decimal.RequireFromString("100000"))
	if err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("cannot decode close payload: %v", err)
	}
	if got["price"] != 500.0 || got["close_price"] != 450.25 || got["balance"] != 100000.0 {
		t.Errorf("close payload prices = %v %v %v", got["price"], got["close_price"], got["balance"])
	}
	if got["type"] != "SELL" {
		t.Errorf("close payload type = %v, want SELL", got["type"])
	}
}

func TestServerErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Stocks(context.Background(), 1); err == nil {
		t.Error("Stocks() should fail on a 500")
	}
}
