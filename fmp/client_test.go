package fmp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const incomeJSON = `[
  {"date": "2024-06-29", "symbol": "AAPL", "reportedCurrency": "USD", "revenue": 85777000000,
   "costOfRevenue": 46099000000, "operatingIncome": 25352000000, "netIncome": 21448000000, "eps": 1.4},
  {"date": "2024-03-30", "symbol": "AAPL", "reportedCurrency": "USD", "revenue": 90753000000,
   "costOfRevenue": 48482000000, "operatingIncome": 27900000000, "netIncome": 23636000000, "eps": 1.53}
]`

const balanceJSON = `[
  {"date": "2024-06-29", "symbol": "AAPL", "totalAssets": 331612000000, "totalLiabilities": 264904000000,
   "cashAndCashEquivalents": 25565000000, "shortTermDebt": 12967000000, "longTermDebt": 86196000000}
]`

// newTestServer serves FMP like responses and counts the requests it receives.
func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Query().Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"Error Message": "Invalid API KEY."}`))
			return
		}
		switch r.URL.Path {
		case "/income-statement/AAPL":
			if r.URL.Query().Get("period") != "quarter" {
				t.Errorf("income statement requested with period %q", r.URL.Query().Get("period"))
			}
			w.Write([]byte(incomeJSON))
		case "/balance-sheet-statement/AAPL":
			w.Write([]byte(balanceJSON))
		case "/quote/AAPL":
			w.Write([]byte(`[{"symbol": "AAPL", "price": 227.52}]`))
		case "/quote/NONE":
			w.Write([]byte(`[]`))
		case "/income-statement/LIMIT":
			w.Write([]byte(`{"Error Message": "Limit Reach."}`))
		case "/income-statement/BROKEN":
			w.Write([]byte(`[{"date": `))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_IncomeStatements(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	got, err := c.IncomeStatements(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("IncomeStatements() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("IncomeStatements() returned %d periods, want 2", len(got))
	}
	if got[0].Date != "2024-06-29" || got[0].ReportedCurrency != "USD" {
		t.Errorf("IncomeStatements()[0] = %+v", got[0])
	}
	if got[1].EPS.String() != "1.53" {
		t.Errorf("IncomeStatements()[1].EPS = %v, want 1.53", got[1].EPS)
	}
	if got[0].Revenue.String() != "85777000000" {
		t.Errorf("IncomeStatements()[0].Revenue = %v, want 85777000000", got[0].Revenue)
	}
}

func TestClient_BalanceSheets(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	got, err := c.BalanceSheets(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("BalanceSheets() unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].LongTermDebt.String() != "86196000000" {
		t.Errorf("BalanceSheets() = %+v", got)
	}
}

func TestClient_StockPrice(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	got, err := c.StockPrice(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("StockPrice() unexpected error: %v", err)
	}
	if got.String() != "227.52" {
		t.Errorf("StockPrice() = %v, want 227.52", got)
	}

	if _, err := c.StockPrice(context.Background(), "NONE"); err == nil {
		t.Errorf("StockPrice() of an unknown ticker: expected an error")
	}
}

func TestClient_Errors(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)

	tests := []struct {
		name       string
		key        string
		symbol     string
		wantStatus int
		wantMsg    string
	}{
		{"invalid key", "bad-key", "AAPL", http.StatusUnauthorized, "Invalid API KEY."},
		{"error with 200", "test-key", "LIMIT", http.StatusOK, "Limit Reach."},
		{"not found", "test-key", "UNKNOWN", http.StatusNotFound, "404 page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.key, WithBaseURL(srv.URL))
			_, err := c.IncomeStatements(context.Background(), tt.symbol)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("IncomeStatements() error = %v, want an *APIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus || apiErr.Message != tt.wantMsg {
				t.Errorf("IncomeStatements() error = %d %q, want %d %q", apiErr.StatusCode, apiErr.Message, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := c.IncomeStatements(context.Background(), "BROKEN")
	if err == nil || !strings.Contains(err.Error(), "cannot decode") {
		t.Errorf("IncomeStatements() error = %v, want a decode error", err)
	}
}

func TestClient_DailyCache(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient("test-key", WithBaseURL(srv.URL), WithDailyCache(t.TempDir()))

	for i := 0; i < 3; i++ {
		got, err := c.BalanceSheets(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("BalanceSheets() call %d unexpected error: %v", i, err)
		}
		if len(got) != 1 {
			t.Fatalf("BalanceSheets() call %d returned %d periods, want 1", i, len(got))
		}
	}
	if hits := atomic.LoadInt32(&hits); hits != 1 {
		t.Errorf("server received %d requests, want 1", hits)
	}

	// errors are not cached
	for i := 0; i < 2; i++ {
		c.IncomeStatements(context.Background(), "UNKNOWN")
	}
	if hits := atomic.LoadInt32(&hits); hits != 3 {
		t.Errorf("server received %d requests, want 3", hits)
	}
}

func TestClient_DailyCacheSkipsErrorBody(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the quota is reached on the first request only.
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Write([]byte(`{"Error Message": "Limit Reach."}`))
			return
		}
		w.Write([]byte(incomeJSON))
	}))
	t.Cleanup(srv.Close)
	c := NewClient("test-key", WithBaseURL(srv.URL), WithDailyCache(t.TempDir()))

	_, err := c.IncomeStatements(context.Background(), "AAPL")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Limit Reach." {
		t.Fatalf("IncomeStatements() first call error = %v, want the Limit Reach. APIError", err)
	}

	got, err := c.IncomeStatements(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("IncomeStatements() second call unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("IncomeStatements() second call returned %d periods, want 2", len(got))
	}
	if hits := atomic.LoadInt32(&hits); hits != 2 {
		t.Errorf("server received %d requests, want 2", hits)
	}

	// the good response is now cached.
	if _, err := c.IncomeStatements(context.Background(), "AAPL"); err != nil {
		t.Fatalf("IncomeStatements() third call unexpected error: %v", err)
	}
	if hits := atomic.LoadInt32(&hits); hits != 2 {
		t.Errorf("server received %d requests, want 2", hits)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.IncomeStatements(ctx, "AAPL"); err == nil {
		t.Errorf("IncomeStatements() with a cancelled context: expected an error")
	}
}
