package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// ErrPaymentNotFound indicates the gateway doesn't know the payment yet.
var ErrPaymentNotFound = errors.New("payment not registered at gateway")

// TooManyRequestsError represents a rate limiting signal from the gateway.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Status is the settlement state as reported by the gateway.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusRefunded Status = "refunded"
)

// PaymentStatus maps a gateway status onto the domain payment status. The
// second return is false for statuses the reconciliation should ignore.
func (s Status) PaymentStatus() (model.PaymentStatus, bool) {
	switch s {
	case StatusApproved:
		return model.PaymentStatusPaid, true
	case StatusRejected:
		return model.PaymentStatusFailed, true
	case StatusRefunded:
		return model.PaymentStatusRefunded, true
	}
	return model.PaymentStatusPending, false
}

// Payment is the gateway's view of a settlement.
type Payment struct {
	Reference string
	Status    Status
}

// Preference is a hosted checkout session created for an order.
type Preference struct {
	ID        string
	InitPoint string
}

// PreferenceRequest carries the data needed to open a checkout session.
type PreferenceRequest struct {
	OrderNumber string
	AmountCents int64
	PayerEmail  string
}

// Client exposes operations to talk to the payment gateway.
type Client interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error)
	FetchPayment(ctx context.Context, reference string) (*Payment, error)
}

// HTTPClient implements Client via the gateway HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type preferencePayload struct {
	ExternalReference string `json:"external_reference"`
	AmountCents       int64  `json:"amount_cents"`
	PayerEmail        string `json:"payer_email,omitempty"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type paymentResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreatePreference opens a hosted checkout session for an order.
func (c *HTTPClient) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/preferences")

	body, err := json.Marshal(preferencePayload{
		ExternalReference: req.OrderNumber,
		AmountCents:       req.AmountCents,
		PayerEmail:        req.PayerEmail,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data preferenceResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		return &Preference{ID: data.ID, InitPoint: data.InitPoint}, nil
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("gateway preference failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
}

// FetchPayment queries the gateway for the settlement state of a payment.
func (c *HTTPClient) FetchPayment(ctx context.Context, reference string) (*Payment, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/payments/", reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data paymentResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		return &Payment{Reference: data.Reference, Status: Status(data.Status)}, nil
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrPaymentNotFound
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("gateway payment lookup failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
