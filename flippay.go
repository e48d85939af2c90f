// Package flippay is a typed Go client for the FlipPay v2 REST API.
// API documentation: https://api-docs.flippay.com.au/v2.html
package flippay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"flippay/config"
	"flippay/models"
)

const contentType = "application/json"

// Client issues authenticated calls against one FlipPay host, chosen at
// construction. All fields are read-only after construction, so a single
// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// New builds a Client from a Config, selecting the demo or production host
// once for the Client's lifetime.
func New(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    cfg.BaseURL(),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout()},
		logger:     logger,
	}
}

// NewWithHTTPClient builds a Client around a pre-configured transport.
// Authentication and timeouts are the transport's concern; baseURL must end
// with a slash.
func NewWithHTTPClient(httpClient *http.Client, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// CreateOnboarding creates an onboarding request for a merchant.
func (c *Client) CreateOnboarding(ctx context.Context, req models.OnboardRequest) (*models.OnboardCreated, error) {
	var out models.OnboardCreated
	if err := c.post(ctx, "CreateOnboarding", "onboard", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOnboarding retrieves the status of an onboarding request.
func (c *Client) GetOnboarding(ctx context.Context, onboardingID string) (*models.OnboardStatus, error) {
	var out models.OnboardStatus
	if err := c.get(ctx, "GetOnboarding", "onboard/"+onboardingID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOnboarding cancels an onboarding request.
func (c *Client) CancelOnboarding(ctx context.Context, onboardingID string) error {
	return c.delete(ctx, "CancelOnboarding", "onboard/"+onboardingID)
}

// RequestAccountLink requests a link between an integrated partner and a
// merchant account. Notifications, if enabled, are sent for the linked and
// not-linked statuses; if a link is later removed by either party, a
// not-linked notification goes to the original webhook URL.
func (c *Client) RequestAccountLink(ctx context.Context, req models.LinkRequest) error {
	if err := c.post(ctx, "RequestAccountLink", "link", req, nil); err != nil {
		return err
	}
	c.logger.Info("operation succeeded", zap.String("operation", "RequestAccountLink"))
	return nil
}

// GetAccountLink retrieves the status of an account link: pending, linked
// or not-linked.
func (c *Client) GetAccountLink(ctx context.Context, merchantID string) (*models.LinkStatus, error) {
	var out models.LinkStatus
	if err := c.get(ctx, "GetAccountLink", "link/"+merchantID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveAccountLink removes a link between an integrated partner and a
// merchant account.
func (c *Client) RemoveAccountLink(ctx context.Context, merchantID string) error {
	return c.delete(ctx, "RemoveAccountLink", "link/"+merchantID)
}

// CreatePayLater creates a payment request enabled with "pay later" payment
// options. Refer to the integration guide for product field formats.
func (c *Client) CreatePayLater(ctx context.Context, req models.PayLaterRequest) (*models.PayRequestCreated, error) {
	var out models.PayRequestCreated
	if err := c.post(ctx, "CreatePayLater", "paylater", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePayLater updates the product fields on a pay-later request.
func (c *Client) UpdatePayLater(ctx context.Context, prID string, fields []models.ProductField) error {
	return c.patch(ctx, "UpdatePayLater", "paylater/"+prID, models.UpdateProductFields{ProductFields: fields})
}

// GetPayLater retrieves a pay-later request. A request not yet activated
// returns every product it was enabled with; an activated request returns
// only the approved product.
func (c *Client) GetPayLater(ctx context.Context, prID string) (*models.PayLaterDetail, error) {
	var out models.PayLaterDetail
	if err := c.get(ctx, "GetPayLater", "paylater/"+prID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelPayLater cancels a pay-later request.
func (c *Client) CancelPayLater(ctx context.Context, prID string) error {
	return c.delete(ctx, "CancelPayLater", "paylater/"+prID)
}

// CreatePayNow creates a payment request enabled with immediate card
// payment only.
func (c *Client) CreatePayNow(ctx context.Context, req models.PayNowRequest) (*models.PayRequestCreated, error) {
	var out models.PayRequestCreated
	if err := c.post(ctx, "CreatePayNow", "paynow", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPayNow retrieves a pay-now request.
func (c *Client) GetPayNow(ctx context.Context, prID string) (*models.PayNowDetail, error) {
	var out models.PayNowDetail
	if err := c.get(ctx, "GetPayNow", "paynow/"+prID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelPayNow cancels a pay-now request.
func (c *Client) CancelPayNow(ctx context.Context, prID string) error {
	return c.delete(ctx, "CancelPayNow", "paynow/"+prID)
}

// CreateDirect creates a B2B funding request between an onboarded entity
// and FlipPay.
func (c *Client) CreateDirect(ctx context.Context, req models.DirectRequest) (*models.DirectCreated, error) {
	var out models.DirectCreated
	if err := c.post(ctx, "CreateDirect", "direct", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDirect updates the product fields on a direct funding request.
func (c *Client) UpdateDirect(ctx context.Context, prID string, fields []models.ProductField) error {
	return c.patch(ctx, "UpdateDirect", "direct/"+prID, models.UpdateProductFields{ProductFields: fields})
}

// GetDirect retrieves a direct funding request.
func (c *Client) GetDirect(ctx context.Context, prID string) (*models.DirectDetail, error) {
	var out models.DirectDetail
	if err := c.get(ctx, "GetDirect", "direct/"+prID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelDirect cancels a direct funding request.
func (c *Client) CancelDirect(ctx context.Context, prID string) error {
	return c.delete(ctx, "CancelDirect", "direct/"+prID)
}

// ListDirect retrieves a filtered list of direct funding requests. The
// query string is passed through as supplied; merchants may omit every
// parameter, integrated partners must supply merchantId.
func (c *Client) ListDirect(ctx context.Context, query string) ([]models.DirectSummary, error) {
	var out models.DirectList
	if err := c.get(ctx, "ListDirect", "direct?"+query, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// ListBankAccounts retrieves the bank accounts enabled on a merchant
// account.
func (c *Client) ListBankAccounts(ctx context.Context, merchantID string) ([]models.Account, error) {
	var out models.BankAccounts
	if err := c.get(ctx, "ListBankAccounts", "bankaccounts/"+merchantID, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// ListProducts retrieves the products enabled on a merchant account.
func (c *Client) ListProducts(ctx context.Context, merchantID string) ([]models.ProductInfo, error) {
	var out models.Products
	if err := c.get(ctx, "ListProducts", "products/"+merchantID, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, op, path string, body any) error {
	if err := c.do(ctx, op, http.MethodPatch, path, body, nil); err != nil {
		return err
	}
	c.logger.Info("operation succeeded", zap.String("operation", op))
	return nil
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	if err := c.do(ctx, op, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.logger.Info("operation succeeded", zap.String("operation", op))
	return nil
}

// do runs one round trip: join path onto the base URL, attach the body and
// bearer token, and decode the response into out when out is non-nil.
// Identifiers in path are inserted verbatim; callers pre-validate them.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			wrapped := fmt.Errorf("flippay: %s: encoding request: %w", op, err)
			c.logger.Error("request encoding failed", zap.String("operation", op), zap.Error(err))
			return wrapped
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		wrapped := fmt.Errorf("flippay: %s: building request: %w", op, err)
		c.logger.Error("request building failed", zap.String("operation", op), zap.Error(err))
		return wrapped
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		terr := &TransportError{Op: op, Err: err}
		c.logger.Error("request failed", zap.String("operation", op), zap.Error(err))
		return terr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
		c.logger.Error("reading response failed", zap.String("operation", op), zap.Error(err))
		return terr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		terr := &TransportError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
		c.logger.Error("request rejected",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return terr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		serr := &SchemaError{Op: op, Err: err}
		c.logger.Error("response decoding failed", zap.String("operation", op), zap.Error(err))
		return serr
	}
	return nil
}
