// Package gotify is the outbound push-notification client.
package gotify

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

	"github.com/rs/zerolog"
)

// ErrNotConfigured reports a channel with no endpoint or credential.
var ErrNotConfigured = errors.New("gotify channel is not configured")

const defaultTimeout = 10 * time.Second

// Client posts messages to a Gotify server. One client per channel; the
// token selects the Gotify application the message lands in.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient builds a client for the given server and application token.
// Either may be empty; Send then fails with ErrNotConfigured.
func NewClient(baseURL, token string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// Configured reports whether both the endpoint and the credential are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.token != ""
}

type messagePayload struct {
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Priority int            `json:"priority"`
	Extras   map[string]any `json:"extras,omitempty"`
}

type messageResponse struct {
	ID int `json:"id"`
}

// Send delivers one message and returns the Gotify message id. Messages are
// flagged as markdown so clients render the formatted fragments.
func (c *Client) Send(ctx context.Context, title, message string, priority int) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload := messagePayload{
		Title:    title,
		Message:  message,
		Priority: priority,
		Extras: map[string]any{
			"client::display": map[string]string{"contentType": "text/markdown"},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/message", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gotify-Key", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gotify request failed: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("gotify request failed with status %s", resp.Status)
	}

	var out messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// Delivery succeeded; the id is only used for logging.
		c.log.Warn().Err(err).Msg("could not decode gotify response")
		return "", nil
	}
	return strconv.Itoa(out.ID), nil
}
