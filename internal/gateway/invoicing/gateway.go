package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"rolloff/internal/entities"
	retrierconfig "rolloff/pkg/retrier"
	"rolloff/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "invoicing-provider"

	headerAPIKey = "X-Api-Key"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// InvoicingGateway talks to the external invoicing provider over its JSON
// API. Reads and sends retry on transient failures; cancel does not, so a
// void is never replayed after the provider already accepted it.
type InvoicingGateway struct {
	baseURL string
	apiKey  string
	client  httpDoer
	retrier retrier
}

func New(baseURL, apiKey string, client httpDoer) *InvoicingGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &InvoicingGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *InvoicingGateway) CreateInvoice(
	ctx context.Context,
	lineItems []entities.InvoiceLineItem,
	dueDate time.Time,
	deliveryMethod string,
) (*entities.ProviderInvoice, error) {
	req := createInvoiceRequest{
		LineItems:      fromDomainLineItems(lineItems),
		DueDate:        dueDate.Format(time.DateOnly),
		DeliveryMethod: deliveryMethod,
	}

	var resp invoiceResponse

	err := g.executeWithMetrics(ctx, "CreateInvoice", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/v1/invoices", req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway invoicing, create invoice: %w", err)
	}

	return toDomain(&resp), nil
}

func (g *InvoicingGateway) SendInvoice(ctx context.Context, providerInvoiceID string) (*entities.ProviderInvoice, error) {
	var resp invoiceResponse

	path := "/v1/invoices/" + providerInvoiceID + "/send"

	err := g.executeWithMetrics(ctx, "SendInvoice", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, path, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway invoicing, send invoice: %s: %w", providerInvoiceID, err)
	}

	return toDomain(&resp), nil
}

func (g *InvoicingGateway) GetInvoice(ctx context.Context, providerInvoiceID string) (*entities.ProviderInvoice, error) {
	var resp invoiceResponse

	path := "/v1/invoices/" + providerInvoiceID

	err := g.executeWithMetrics(ctx, "GetInvoice", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, path, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway invoicing, get invoice: %s: %w", providerInvoiceID, err)
	}

	return toDomain(&resp), nil
}

// CancelInvoice voids the invoice at the provider. Not retried: a timeout may
// mean the void already landed.
func (g *InvoicingGateway) CancelInvoice(ctx context.Context, providerInvoiceID, reason string) (*entities.ProviderInvoice, error) {
	req := cancelInvoiceRequest{
		Reason: reason,
	}

	var resp invoiceResponse

	path := "/v1/invoices/" + providerInvoiceID + "/cancel"

	err := g.observe(ctx, "CancelInvoice", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, path, req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway invoicing, cancel invoice: %s: %w", providerInvoiceID, err)
	}

	return toDomain(&resp), nil
}

func (g *InvoicingGateway) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(headerAPIKey, g.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type statusError struct {
	code int
	err  error
}

func newStatusError(resp *http.Response) *statusError {
	wrapped := ErrProviderUnavailable
	switch resp.StatusCode {
	case http.StatusNotFound:
		wrapped = ErrInvoiceNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		wrapped = ErrInvalidInvoiceRequest
	}

	return &statusError{
		code: resp.StatusCode,
		err:  wrapped,
	}
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.code, e.err)
}

func (e *statusError) Unwrap() error {
	return e.err
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// transport-level failure
		return true
	}

	switch statusErr.code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (g *InvoicingGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func (g *InvoicingGateway) observe(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	GatewayRequestDuration.WithLabelValues(serviceName, method, statusLabel(err)).Observe(time.Since(start).Seconds())

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}

	return "transport_error"
}
