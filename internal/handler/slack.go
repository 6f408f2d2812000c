package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/panoptikauth/panoptikauth/internal/dispatch"
	"github.com/panoptikauth/panoptikauth/internal/gotify"
	"github.com/panoptikauth/panoptikauth/internal/metrics"
	"github.com/panoptikauth/panoptikauth/internal/model"
	"github.com/panoptikauth/panoptikauth/internal/response"
)

// SlackHandler relays slack-style {text} payloads under a fixed title with
// normal priority, through its own channel credential.
type SlackHandler struct {
	Channels *dispatch.Registry
	Title    string
	Log      zerolog.Logger
}

// Handle is POST /slack.
func (h *SlackHandler) Handle(c echo.Context) error {
	var msg model.SlackMessage
	if err := c.Bind(&msg); err != nil {
		return response.BadRequest(c, "invalid slack payload")
	}

	d, ok := h.Channels.Get(dispatch.ChannelSlack)
	if !ok || !d.Configured() {
		metrics.Dispatches.WithLabelValues(dispatch.ChannelSlack, metrics.OutcomeNotConfigured).Inc()
		return response.ServiceUnavailable(c, "slack channel is not configured")
	}

	if _, err := d.Send(c.Request().Context(), h.Title, msg.Text, gotify.DefaultPriority); err != nil {
		metrics.Dispatches.WithLabelValues(dispatch.ChannelSlack, metrics.OutcomeError).Inc()
		h.Log.Error().Err(err).Msg("slack notification dispatch failed")
		return response.InternalError(c, "notification dispatch failed")
	}

	metrics.Dispatches.WithLabelValues(dispatch.ChannelSlack, metrics.OutcomeOK).Inc()
	return response.OK(c, "notification dispatched")
}
