// Package notifier implements the outbound adapter for the external
// notification service.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// payload is the wire format the notification service accepts on
// POST /api/notifications.
type payload struct {
	UserID     string   `json:"userId"`
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	EntityType string   `json:"entityType"`
	EntityID   string   `json:"entityId"`
	Channels   []string `json:"channels"`
}

// Client posts notifications to the external notification service over HTTP.
// Implements ports.NotificationClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the notification service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Send delivers one notification. Any transport failure or non-2xx response
// is returned as an error so the relay can retry the message later.
func (c *Client) Send(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	channels := make([]string, 0, len(n.Channels()))
	for _, channel := range n.Channels() {
		channels = append(channels, channel.String())
	}

	body, err := json.Marshal(payload{
		UserID:     n.UserID().String(),
		Type:       n.Type(),
		Title:      n.Title(),
		Message:    n.Message(),
		EntityType: n.EntityType(),
		EntityID:   n.EntityID().String(),
		Channels:   channels,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a little of the body so the error is diagnosable.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification service returned %d: %s", resp.StatusCode, snippet)
	}

	return nil
}
