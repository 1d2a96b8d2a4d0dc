package vimeoclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/reelworks/go-vimeo/internal/client"
	"github.com/reelworks/go-vimeo/internal/constants"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// DefaultConfig returns a config with the production endpoints, json
// responses, and the standard 120 second response cache.
func DefaultConfig(consumerKey, consumerSecret string) *vimeo.Config {
	return &vimeo.Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		DefaultFormat:  constants.DefaultResponseFormat,
		CacheTimeout:   constants.DefaultCacheTimeout,
		CacheSize:      constants.DefaultCacheSize,
	}
}

// New creates a new Vimeo API client. Consumer credentials are required; a
// zero CacheTimeout disables response caching.
func New(ctx context.Context, config *vimeo.Config) (vimeo.Client, error) {
	if config == nil {
		return nil, vimeo.ErrConfigRequired
	}

	if config.ConsumerKey == "" || config.ConsumerSecret == "" {
		return nil, vimeo.ErrConsumerCredentialsRequired
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithConsumer creates a client with consumer credentials only. Public
// methods work immediately; run the handshake for user-authorized calls.
func NewWithConsumer(ctx context.Context, consumerKey, consumerSecret string) (vimeo.Client, error) {
	return New(ctx, DefaultConfig(consumerKey, consumerSecret))
}

// NewWithToken creates a client with a previously obtained access token.
func NewWithToken(ctx context.Context, consumerKey, consumerSecret, token, tokenSecret string) (vimeo.Client, error) {
	config := DefaultConfig(consumerKey, consumerSecret)
	config.Token = token
	config.TokenSecret = tokenSecret

	return New(ctx, config)
}

// normalizeEndpoint adds a scheme if none is present. The trailing slash is
// kept: the REST endpoint itself ends with one.
func normalizeEndpoint(endpoint string) string {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
