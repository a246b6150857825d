package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/PratikDhanave/event-forwarder-service/internal/models"
)

// healthTable is the REST resource receiving forwarded records.
const healthTable = "system_health"

// Inserter is the narrow outbound dependency of the forwarder.
// Tests substitute a fake; production uses Client.
type Inserter interface {
	Insert(ctx context.Context, rec models.HealthRecord) error
}

// Client inserts records through the Supabase REST API.
type Client struct {
	http *resty.Client
	key  string
}

// New builds a REST client for the given project base URL and service-role
// key. The timeout bounds each insert end-to-end; expiry surfaces as an
// ordinary insert error.
func New(baseURL, serviceKey string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: rc, key: serviceKey}
}

// Insert POSTs one record to /rest/v1/system_health. Any 2xx status is
// success; anything else fails with the response body text embedded in the
// error so the caller's envelope carries the backend's reason.
func (c *Client) Insert(ctx context.Context, rec models.HealthRecord) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.key).
		SetHeader("apikey", c.key).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(rec).
		Post("/rest/v1/" + healthTable)
	if err != nil {
		return fmt.Errorf("supabase request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to record metric: %s", resp.String())
	}

	return nil
}
