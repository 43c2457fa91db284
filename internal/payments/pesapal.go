package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Payment outcome as exposed to callers. PesaPal reports a numeric status
// code; everything that is not completed or failed is still pending.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(baseURL, consumerKey, consumerSecret string) *Client {
	return &Client{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type tokenResponse struct {
	Token      string `json:"token"`
	ExpiryDate string `json:"expiryDate"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// OrderRequest is the payload for SubmitOrder.
type OrderRequest struct {
	ID             string       `json:"id"`
	Currency       string       `json:"currency"`
	Amount         float64      `json:"amount"`
	Description    string       `json:"description"`
	CallbackURL    string       `json:"callback_url"`
	BillingAddress PayerDetails `json:"billing_address"`
}

type PayerDetails struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
}

// OrderResponse is PesaPal's answer to a submitted order: where to send the
// payer, and the tracking id to poll with.
type OrderResponse struct {
	OrderTrackingID string `json:"order_tracking_id"`
	RedirectURL     string `json:"redirect_url"`
	Status          string `json:"status"`
}

// TransactionStatus is the polled state of an order.
type TransactionStatus struct {
	PaymentMethod     string  `json:"payment_method"`
	Amount            float64 `json:"amount"`
	StatusCode        int     `json:"status_code"`
	PaymentStatus     string  `json:"payment_status_description"`
	ConfirmationCode  string  `json:"confirmation_code"`
	MerchantReference string  `json:"merchant_reference"`
}

// Outcome maps PesaPal's status code to the pending/completed/failed model.
func (t *TransactionStatus) Outcome() string {
	switch t.StatusCode {
	case 1:
		return StatusCompleted
	case 2:
		return StatusFailed
	default:
		return StatusPending
	}
}

// RequestToken fetches (or reuses) a bearer token for the API.
func (c *Client) RequestToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Tokens last 5 minutes; refresh a little early
	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.token, nil
	}

	body := map[string]string{
		"consumer_key":    c.consumerKey,
		"consumer_secret": c.consumerSecret,
	}

	var tok tokenResponse
	err := retry(3, 1*time.Second, func() error {
		return c.postJSON(ctx, "/api/Auth/RequestToken", "", body, &tok)
	})
	if err != nil {
		return "", fmt.Errorf("pesapal: token request failed: %w", err)
	}
	if tok.Token == "" {
		return "", fmt.Errorf("pesapal: empty token (status=%s message=%s)", tok.Status, tok.Message)
	}

	c.token = tok.Token
	if exp, perr := time.Parse(time.RFC3339, tok.ExpiryDate); perr == nil {
		c.tokenExpiry = exp
	} else {
		c.tokenExpiry = time.Now().Add(5 * time.Minute)
	}
	return c.token, nil
}

// SubmitOrder registers a payment order and returns the hosted-page redirect.
func (c *Client) SubmitOrder(ctx context.Context, order *OrderRequest) (*OrderResponse, error) {
	token, err := c.RequestToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp OrderResponse
	if err := c.postJSON(ctx, "/api/Transactions/SubmitOrderRequest", token, order, &resp); err != nil {
		return nil, fmt.Errorf("pesapal: submit order %s: %w", order.ID, err)
	}
	if resp.OrderTrackingID == "" {
		return nil, fmt.Errorf("pesapal: submit order %s: no tracking id returned", order.ID)
	}
	return &resp, nil
}

// GetTransactionStatus polls the state of a previously submitted order.
func (c *Client) GetTransactionStatus(ctx context.Context, orderTrackingID string) (*TransactionStatus, error) {
	token, err := c.RequestToken(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + "/api/Transactions/GetTransactionStatus?orderTrackingId=" + url.QueryEscape(orderTrackingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var status TransactionStatus
	if err := c.do(req, &status); err != nil {
		return nil, fmt.Errorf("pesapal: transaction status %s: %w", orderTrackingID, err)
	}
	return &status, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload, out any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

// retry executes a function with exponential backoff
func retry(attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		log.Printf("⚠️ PesaPal API error: %v. Retrying in %v...", err, sleep)
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}
