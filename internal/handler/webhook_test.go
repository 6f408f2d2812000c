package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panoptikauth/panoptikauth/internal/dispatch"
	"github.com/panoptikauth/panoptikauth/internal/response"
)

// fakeDispatcher records the last delivery instead of calling Gotify.
type fakeDispatcher struct {
	configured   bool
	err          error
	calls        int
	lastTitle    string
	lastMessage  string
	lastPriority int
}

func (f *fakeDispatcher) Configured() bool { return f.configured }

func (f *fakeDispatcher) Send(_ context.Context, title, message string, priority int) (string, error) {
	f.calls++
	f.lastTitle = title
	f.lastMessage = message
	f.lastPriority = priority
	if f.err != nil {
		return "", f.err
	}
	return "1", nil
}

func newWebhook(fake *fakeDispatcher) *WebhookHandler {
	channels := dispatch.NewRegistry()
	channels.Register(dispatch.ChannelWebhook, fake)
	return &WebhookHandler{Channels: channels, Log: zerolog.Nop()}
}

func post(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestWebhookDispatchesLoginFailed(t *testing.T) {
	fake := &fakeDispatcher{configured: true}
	h := newWebhook(fake)

	body := `{"body": "login_failed: {'username': 'alice', 'stage': {'pk': '1', 'app': 'a', 'name': 'n', 'model_name': 'm'}}"}`
	rec := post(t, h.Handle, "/webhook", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out response.SuccessBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "Login Failed: alice", fake.lastTitle)
	assert.Contains(t, fake.lastMessage, "**Failed Stage:** a (n, m)")
	assert.Equal(t, 5, fake.lastPriority)
}

func TestWebhookSeverityMapsToPriority(t *testing.T) {
	fake := &fakeDispatcher{configured: true}
	h := newWebhook(fake)

	rec := post(t, h.Handle, "/webhook", `{"body": "something happened", "severity": "CRITICAL"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, fake.lastPriority)
}

func TestWebhookAcceptsDoubleEncodedEnvelope(t *testing.T) {
	fake := &fakeDispatcher{configured: true}
	h := newWebhook(fake)

	inner := `{"body": "user_write: {'username': 'bob', 'created': True}"}`
	wrapper, err := json.Marshal(inner)
	require.NoError(t, err)

	rec := post(t, h.Handle, "/webhook", string(wrapper))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User Created: bob", fake.lastTitle)
	assert.Contains(t, fake.lastMessage, "**Username:** bob")
}

// A truncated literal must not fail the request; the raw body is preserved
// in the default-formatted message.
func TestWebhookMalformedLiteralFallsBack(t *testing.T) {
	fake := &fakeDispatcher{configured: true}
	h := newWebhook(fake)

	raw := "login: {'auth_method': 'password', 'geo': {'city': 'Paris'"
	payload, err := json.Marshal(map[string]string{"body": raw, "event_user_username": "akadmin"})
	require.NoError(t, err)

	rec := post(t, h.Handle, "/webhook", string(payload))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Notification from akadmin", fake.lastTitle)
	assert.Contains(t, fake.lastMessage, raw)
}

func TestWebhookRejectsMissingBody(t *testing.T) {
	fake := &fakeDispatcher{configured: true}
	h := newWebhook(fake)

	for name, payload := range map[string]string{
		"no body field":  `{"severity": "high"}`,
		"blank body":     `{"body": "   "}`,
		"empty request":  ``,
		"not json":       `login: {'auth_method': 'password'}`,
		"wrapped garbage": `"not json either"`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := post(t, h.Handle, "/webhook", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var out response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.NotEmpty(t, out.Error)
		})
	}
	assert.Zero(t, fake.calls)
}

func TestWebhookUnconfiguredChannel(t *testing.T) {
	fake := &fakeDispatcher{configured: false}
	h := newWebhook(fake)

	rec := post(t, h.Handle, "/webhook", `{"body": "something happened"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Zero(t, fake.calls)
}

func TestWebhookDispatchFailure(t *testing.T) {
	fake := &fakeDispatcher{configured: true, err: errors.New("connection refused")}
	h := newWebhook(fake)

	rec := post(t, h.Handle, "/webhook", `{"body": "something happened"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var out response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Error)
}
