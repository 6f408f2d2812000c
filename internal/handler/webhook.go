// Package handler provides the HTTP handlers for the bridge endpoints.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/panoptikauth/panoptikauth/internal/dispatch"
	"github.com/panoptikauth/panoptikauth/internal/event"
	"github.com/panoptikauth/panoptikauth/internal/format"
	"github.com/panoptikauth/panoptikauth/internal/gotify"
	"github.com/panoptikauth/panoptikauth/internal/metrics"
	"github.com/panoptikauth/panoptikauth/internal/model"
	"github.com/panoptikauth/panoptikauth/internal/response"
)

// WebhookHandler turns identity-provider notifications into push messages.
type WebhookHandler struct {
	Channels *dispatch.Registry
	Log      zerolog.Logger
}

// Handle is POST /webhook. Extraction failures degrade to the default
// formatting path; only configuration and transport failures surface as
// non-2xx responses.
func (h *WebhookHandler) Handle(c echo.Context) error {
	n, err := decodeNotification(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "invalid notification payload")
	}
	if strings.TrimSpace(n.Body) == "" {
		return response.BadRequest(c, "notification body is required")
	}

	kind := event.Classify(n.Body)
	ev, err := event.Extract(n.Body, kind)
	if err != nil {
		h.Log.Warn().Err(err).Str("kind", string(kind)).Msg("literal extraction failed, using default formatting")
		metrics.ExtractionFallbacks.Inc()
		ev = event.Default(n.Body)
	}
	metrics.EventsReceived.WithLabelValues(string(ev.Kind)).Inc()

	formatted := format.Format(n, ev)
	priority := gotify.PriorityFromSeverity(n.Severity)

	d, ok := h.Channels.Get(dispatch.ChannelWebhook)
	if !ok || !d.Configured() {
		metrics.Dispatches.WithLabelValues(dispatch.ChannelWebhook, metrics.OutcomeNotConfigured).Inc()
		return response.ServiceUnavailable(c, "gotify channel is not configured")
	}

	deliveryID := uuid.New().String()
	msgID, err := d.Send(c.Request().Context(), formatted.Title, formatted.Message, priority)
	if err != nil {
		if errors.Is(err, gotify.ErrNotConfigured) {
			metrics.Dispatches.WithLabelValues(dispatch.ChannelWebhook, metrics.OutcomeNotConfigured).Inc()
			return response.ServiceUnavailable(c, "gotify channel is not configured")
		}
		metrics.Dispatches.WithLabelValues(dispatch.ChannelWebhook, metrics.OutcomeError).Inc()
		h.Log.Error().Err(err).Str("delivery_id", deliveryID).Str("kind", string(ev.Kind)).Msg("notification dispatch failed")
		return response.InternalError(c, "notification dispatch failed")
	}

	metrics.Dispatches.WithLabelValues(dispatch.ChannelWebhook, metrics.OutcomeOK).Inc()
	h.Log.Info().
		Str("delivery_id", deliveryID).
		Str("message_id", msgID).
		Str("kind", string(ev.Kind)).
		Int("priority", priority).
		Msg("notification dispatched")
	return response.OK(c, "notification dispatched")
}

// decodeNotification accepts the envelope as a JSON object or as a
// JSON-encoded string containing the object.
func decodeNotification(r io.Reader) (model.Notification, error) {
	var n model.Notification
	raw, err := io.ReadAll(r)
	if err != nil {
		return n, fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return n, errors.New("empty body")
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return n, fmt.Errorf("decode wrapper string: %w", err)
		}
		raw = []byte(inner)
	}
	if err := json.Unmarshal(raw, &n); err != nil {
		return n, fmt.Errorf("decode notification: %w", err)
	}
	return n, nil
}
