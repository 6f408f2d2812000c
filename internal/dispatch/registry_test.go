package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopDispatcher struct{}

func (nopDispatcher) Configured() bool { return true }

func (nopDispatcher) Send(context.Context, string, string, int) (string, error) {
	return "", nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get(ChannelWebhook)
	assert.False(t, ok)

	r.Register(ChannelWebhook, nopDispatcher{})
	r.Register(ChannelSlack, nopDispatcher{})

	d, ok := r.Get(ChannelWebhook)
	require.True(t, ok)
	assert.True(t, d.Configured())

	assert.ElementsMatch(t, []string{ChannelWebhook, ChannelSlack}, r.Names())
}
