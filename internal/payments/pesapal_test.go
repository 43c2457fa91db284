package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newFakePesapal(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	tokenRequests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["consumer_key"] != "key" || body["consumer_secret"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"token":      "test-token",
			"expiryDate": time.Now().Add(5 * time.Minute).Format(time.RFC3339),
			"status":     "200",
		})
	})
	mux.HandleFunc("/api/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var order OrderRequest
		json.NewDecoder(r.Body).Decode(&order)
		if order.ID == "" || order.Amount <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(OrderResponse{
			OrderTrackingID: "track-123",
			RedirectURL:     "https://pay.example.com/track-123",
			Status:          "200",
		})
	})
	mux.HandleFunc("/api/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		code := 1
		switch r.URL.Query().Get("orderTrackingId") {
		case "failed-order":
			code = 2
		case "pending-order":
			code = 0
		}
		json.NewEncoder(w).Encode(TransactionStatus{
			PaymentMethod: "MPESA",
			Amount:        49.99,
			StatusCode:    code,
			PaymentStatus: "status description",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenRequests
}

func TestSubmitOrder(t *testing.T) {
	srv, _ := newFakePesapal(t)
	client := NewClient(srv.URL, "key", "secret")

	resp, err := client.SubmitOrder(context.Background(), &OrderRequest{
		ID:          "ref-1",
		Currency:    "USD",
		Amount:      49.99,
		Description: "Crew medical screening",
		CallbackURL: "https://example.com/callback",
		BillingAddress: PayerDetails{
			EmailAddress: "payer@example.com",
		},
	})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if resp.OrderTrackingID != "track-123" {
		t.Errorf("tracking id = %q", resp.OrderTrackingID)
	}
	if resp.RedirectURL == "" {
		t.Error("redirect url missing")
	}
}

func TestTokenIsReusedAcrossCalls(t *testing.T) {
	srv, tokenRequests := newFakePesapal(t)
	client := NewClient(srv.URL, "key", "secret")
	ctx := context.Background()

	if _, err := client.GetTransactionStatus(ctx, "ok-order"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := client.GetTransactionStatus(ctx, "ok-order"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if *tokenRequests != 1 {
		t.Errorf("token requested %d times, want 1", *tokenRequests)
	}
}

func TestTransactionStatusOutcome(t *testing.T) {
	srv, _ := newFakePesapal(t)
	client := NewClient(srv.URL, "key", "secret")
	ctx := context.Background()

	cases := []struct {
		trackingID string
		want       string
	}{
		{"completed-order", StatusCompleted},
		{"failed-order", StatusFailed},
		{"pending-order", StatusPending},
	}
	for _, tc := range cases {
		status, err := client.GetTransactionStatus(ctx, tc.trackingID)
		if err != nil {
			t.Fatalf("GetTransactionStatus(%s): %v", tc.trackingID, err)
		}
		if got := status.Outcome(); got != tc.want {
			t.Errorf("Outcome(%s) = %q, want %q", tc.trackingID, got, tc.want)
		}
	}
}
