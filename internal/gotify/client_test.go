package gotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostsMessage(t *testing.T) {
	var gotPath, gotKey string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Gotify-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"id": 17})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "app-token", zerolog.Nop())
	id, err := c.Send(context.Background(), "Login: alice", "body", 8)
	require.NoError(t, err)

	assert.Equal(t, "17", id)
	assert.Equal(t, "/message", gotPath)
	assert.Equal(t, "app-token", gotKey)
	assert.Equal(t, "Login: alice", gotPayload["title"])
	assert.Equal(t, "body", gotPayload["message"])
	assert.Equal(t, float64(8), gotPayload["priority"])

	extras, ok := gotPayload["extras"].(map[string]any)
	require.True(t, ok)
	display, ok := extras["client::display"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "text/markdown", display["contentType"])
}

func TestSendNotConfigured(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		token   string
	}{
		{"no url", "", "token"},
		{"no token", "http://gotify.local", ""},
		{"neither", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.baseURL, tt.token, zerolog.Nop())
			assert.False(t, c.Configured())
			_, err := c.Send(context.Background(), "t", "m", 5)
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestSendNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong", zerolog.Nop())
	_, err := c.Send(context.Background(), "t", "m", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPriorityFromSeverity(t *testing.T) {
	tests := []struct {
		severity string
		want     int
	}{
		{"low", 2},
		{"normal", 5},
		{"medium", 5},
		{"high", 8},
		{"critical", 10},
		{"CRITICAL", 10},
		{" High ", 8},
		{"", 5},
		{"unknown", 5},
	}
	for _, tt := range tests {
		t.Run("severity "+tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityFromSeverity(tt.severity))
		})
	}
}
