package vimeoclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
	"github.com/reelworks/go-vimeo/pkg/vimeoclient"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := vimeoclient.DefaultConfig("key", "secret")

	assert.Equal(t, "key", config.ConsumerKey)
	assert.Equal(t, "secret", config.ConsumerSecret)
	assert.Equal(t, "json", config.DefaultFormat)
	assert.Equal(t, 120*time.Second, config.CacheTimeout)
	assert.Equal(t, 1000, config.CacheSize)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := vimeoclient.New(ctx, nil)
	require.ErrorIs(t, err, vimeo.ErrConfigRequired)

	_, err = vimeoclient.New(ctx, &vimeo.Config{})
	require.ErrorIs(t, err, vimeo.ErrConsumerCredentialsRequired)

	_, err = vimeoclient.New(ctx, &vimeo.Config{ConsumerKey: "key"})
	require.ErrorIs(t, err, vimeo.ErrConsumerCredentialsRequired)

	_, err = vimeoclient.New(ctx, &vimeo.Config{ConsumerSecret: "secret"})
	require.ErrorIs(t, err, vimeo.ErrConsumerCredentialsRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	config := vimeoclient.DefaultConfig("key", "secret")
	config.APIEndpoint = "vimeo.com/api/rest/v2/"

	client, err := vimeoclient.New(context.Background(), config)
	require.NoError(t, err)
	assert.NotNil(t, client)

	// The scheme was filled in on the config itself
	assert.Equal(t, "https://vimeo.com/api/rest/v2/", config.APIEndpoint)
}

func TestNewWithConsumer(t *testing.T) {
	t.Parallel()

	client, err := vimeoclient.NewWithConsumer(context.Background(), "key", "secret")
	require.NoError(t, err)

	// No access token until the handshake runs
	assert.Nil(t, client.Token())
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := vimeoclient.NewWithToken(context.Background(), "key", "secret", "token", "token-secret")
	require.NoError(t, err)

	token := client.Token()
	require.NotNil(t, token)
	assert.Equal(t, "token", token.Token)
	assert.Equal(t, "token-secret", token.Secret)
}
