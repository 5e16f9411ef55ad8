// Package warehouse provides the HTTP client for the external warehouse
// receipt service. Warehouse receipts are a separate bounded context: the
// core never models them, it only relays plain JSON payloads. Any failure
// from this boundary is an opaque error to the caller, never part of the
// domain error taxonomy.
package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"courierdesk/internal/pkg/errs"
)

// Receipt is the warehouse service's receipt payload, passed through as-is.
type Receipt struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Weight      float64 `json:"weight"`
	Pieces      int     `json:"pieces"`
	Consignee   string  `json:"consignee"`
	Shipper     string  `json:"shipper"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// Stats is the warehouse service's aggregate counters payload.
type Stats struct {
	TotalReceipts int     `json:"totalReceipts"`
	TotalPieces   int     `json:"totalPieces"`
	TotalWeight   float64 `json:"totalWeight"`
	Pending       int     `json:"pending"`
	Classified    int     `json:"classified"`
}

// Client calls the warehouse service's REST API under /api/warehouse.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a warehouse service client. token is the bearer
// credential attached to every request.
func NewClient(baseURL string, token string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		return nil, errs.NewValueIsRequiredError("httpClient")
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
	}, nil
}

// Health checks the warehouse service's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/warehouse/health", nil, nil)
}

// GetStats retrieves warehouse aggregate counters.
func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/api/warehouse/stats", nil, &stats)
	return stats, err
}

// ListReceipts retrieves all warehouse receipts.
func (c *Client) ListReceipts(ctx context.Context) ([]Receipt, error) {
	var receipts []Receipt
	err := c.do(ctx, http.MethodGet, "/api/warehouse/whr", nil, &receipts)
	return receipts, err
}

// CreateReceipt registers a new warehouse receipt.
func (c *Client) CreateReceipt(ctx context.Context, receipt Receipt) (Receipt, error) {
	var created Receipt
	err := c.do(ctx, http.MethodPost, "/api/warehouse/whr", receipt, &created)
	return created, err
}

// Classify marks a receipt as an air waybill ("awb") or bill of lading ("bl").
func (c *Client) Classify(ctx context.Context, receiptID string, receiptType string) error {
	if receiptType != "awb" && receiptType != "bl" {
		return errs.NewValueIsInvalidError("receiptType")
	}

	body := map[string]string{"type": receiptType}
	path := fmt.Sprintf("/api/warehouse/whr/%s/classify", url.PathEscape(receiptID))
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// SendEmail asks the warehouse service to email the receipt to its consignee.
func (c *Client) SendEmail(ctx context.Context, receiptID string) error {
	path := fmt.Sprintf("/api/warehouse/whr/%s/email", url.PathEscape(receiptID))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// DeleteReceipt removes a warehouse receipt.
func (c *Client) DeleteReceipt(ctx context.Context, receiptID string) error {
	path := fmt.Sprintf("/api/warehouse/whr/%s", url.PathEscape(receiptID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("warehouse service: %s %s returned %d: %s", method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
