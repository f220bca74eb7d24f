package ordernumber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrAllocatorUnavailable = errors.New("order number allocator unavailable")

type nextNumberResponse struct {
	OrderNumber string `json:"order_number"`
}

// Gateway allocates order numbers from the numbering service. Next is never
// retried: each call consumes a number, and a replayed request would burn a
// second one for the same order.
type Gateway struct {
	baseURL string
	client  httpDoer
}

func New(baseURL string, client httpDoer) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  client,
	}
}

func (g *Gateway) Next(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/order-numbers", nil)
	if err != nil {
		return "", fmt.Errorf("gateway ordernumber, build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway ordernumber: %w: %w", ErrAllocatorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("gateway ordernumber: %w: status %d", ErrAllocatorUnavailable, resp.StatusCode)
	}

	var parsed nextNumberResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("gateway ordernumber, decode response: %w", err)
	}

	if parsed.OrderNumber == "" {
		return "", fmt.Errorf("gateway ordernumber: %w: empty order number", ErrAllocatorUnavailable)
	}

	return parsed.OrderNumber, nil
}
