// Package auth walks the three-legged OAuth 1.0a handshake and signs API
// requests. Signing and the token exchanges are delegated to
// github.com/dghubble/oauth1; this package adds the ordered flow state and
// the shared token store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dghubble/oauth1"

	"github.com/reelworks/go-vimeo/internal/constants"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// Static errors for the handshake state machine.
var (
	ErrNoRequestToken = errors.New("no request token present")
	ErrNoVerifier     = errors.New("no verifier set")
)

// Endpoints are the three handshake URLs.
type Endpoints struct {
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
}

// DefaultEndpoints returns the production handshake endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		RequestTokenURL: constants.DefaultRequestTokenURL,
		AuthorizeURL:    constants.DefaultAuthorizeURL,
		AccessTokenURL:  constants.DefaultAccessTokenURL,
	}
}

// FlowManager drives the handshake in order and hands out signing HTTP
// clients for the current credential. Steps called out of order fail with
// ErrNoRequestToken.
type FlowManager struct {
	config *oauth1.Config
	store  *TokenStore
	base   *http.Client
}

// NewFlowManager creates a flow manager for the given consumer credentials.
// base, when non-nil, is the HTTP client the signing transport delegates to.
func NewFlowManager(consumerKey, consumerSecret string, endpoints Endpoints, base *http.Client) *FlowManager {
	config := &oauth1.Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		CallbackURL:    constants.OutOfBandCallback,
		Endpoint: oauth1.Endpoint{
			RequestTokenURL: endpoints.RequestTokenURL,
			AuthorizeURL:    endpoints.AuthorizeURL,
			AccessTokenURL:  endpoints.AccessTokenURL,
		},
	}

	return &FlowManager{
		config: config,
		store:  NewTokenStore(),
		base:   base,
	}
}

// Store exposes the token store, so a pre-obtained access token can be
// seeded or the current one persisted.
func (m *FlowManager) Store() *TokenStore {
	return m.store
}

// SetBase sets the HTTP client the signing transport delegates to. Must be
// called before the first request goes out.
func (m *FlowManager) SetBase(base *http.Client) {
	m.base = base
}

// RequestToken obtains an unauthorized request token (step 1) and replaces
// the stored credential with it.
func (m *FlowManager) RequestToken(ctx context.Context) error {
	requestToken, requestSecret, err := m.config.RequestToken()
	if err != nil {
		return fmt.Errorf("%w: %v", vimeo.ErrTokenExchangeFailed, err)
	}

	m.store.Set(&Token{Token: requestToken, Secret: requestSecret})

	return nil
}

// AuthorizationURL builds the URL the user must visit to grant the given
// permission (step 2a).
func (m *FlowManager) AuthorizationURL(permission string) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", ErrNoRequestToken
	}

	authorizeURL, err := m.config.AuthorizationURL(token.Token)
	if err != nil {
		return "", fmt.Errorf("building authorization url: %w", err)
	}

	if permission == "" {
		permission = constants.DefaultPermission
	}

	query := authorizeURL.Query()
	query.Set("permission", permission)
	authorizeURL.RawQuery = query.Encode()

	return authorizeURL.String(), nil
}

// SetVerifier records the user-granted verifier (step 2b).
func (m *FlowManager) SetVerifier(verifier string) error {
	if !m.store.SetVerifier(verifier) {
		return ErrNoRequestToken
	}

	return nil
}

// AccessToken exchanges the verified request token for an access token
// (step 3), replaces the stored credential, and returns the new token.
func (m *FlowManager) AccessToken(ctx context.Context) (*Token, error) {
	token := m.store.Get()
	if !token.Valid() {
		return nil, ErrNoRequestToken
	}

	if token.Verifier == "" {
		return nil, ErrNoVerifier
	}

	accessToken, accessSecret, err := m.config.AccessToken(token.Token, token.Secret, token.Verifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vimeo.ErrTokenExchangeFailed, err)
	}

	granted := &Token{Token: accessToken, Secret: accessSecret}
	m.store.Set(granted)

	return m.store.Get(), nil
}

// HTTPClient returns an HTTP client that signs every request with the
// consumer credentials and the current token. It is rebuilt per call so a
// token replaced mid-flow is picked up immediately.
func (m *FlowManager) HTTPClient(ctx context.Context) (*http.Client, error) {
	if m.base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, m.base)
	}

	token := m.store.Get()
	if !token.Valid() {
		// Consumer-only signing: public methods work without a user token.
		token = &Token{}
	}

	return m.config.Client(ctx, oauth1.NewToken(token.Token, token.Secret)), nil
}
