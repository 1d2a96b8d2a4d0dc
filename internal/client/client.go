// Package client implements vimeo.Client: method dispatch with response
// caching, the three-legged OAuth handshake, the typed resource clients,
// and the chunked uploader.
package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/reelworks/go-vimeo/internal/auth"
	"github.com/reelworks/go-vimeo/internal/constants"
	internalhttp "github.com/reelworks/go-vimeo/internal/http"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// Client implements the vimeo.Client interface.
type Client struct {
	httpClient    *internalhttp.Client
	flow          *auth.FlowManager
	catalog       *vimeo.Catalog
	cache         vimeo.Cache
	cacheTimeout  time.Duration
	defaultFormat string
	logger        vimeo.Logger

	// Resource clients
	videos   vimeo.VideosClient
	people   vimeo.PeopleClient
	channels vimeo.ChannelsClient
	albums   vimeo.AlbumsClient
	groups   vimeo.GroupsClient
	activity vimeo.ActivityClient
	contacts vimeo.ContactsClient
	test     vimeo.TestClient
}

// New creates a client from the given configuration. Credentials must be
// present; endpoint and cache defaults are filled in.
func New(ctx context.Context, config *vimeo.Config) (*Client, error) {
	if config.ConsumerKey == "" || config.ConsumerSecret == "" {
		return nil, vimeo.ErrConsumerCredentialsRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	flow := auth.NewFlowManager(config.ConsumerKey, config.ConsumerSecret, flowEndpoints(config), nil)
	if config.Token != "" && config.TokenSecret != "" {
		flow.Store().Set(&auth.Token{Token: config.Token, Secret: config.TokenSecret})
	}

	httpClient := internalhttp.NewClient(endpoint, flow, httpOptions(config)...)
	flow.SetBase(httpClient.BaseClient())

	client := &Client{
		httpClient:    httpClient,
		flow:          flow,
		catalog:       vimeo.NewCatalog(),
		cache:         cacheFromConfig(config),
		cacheTimeout:  cacheTimeout(config),
		defaultFormat: defaultFormat(config),
		logger:        config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Call implements vimeo.MethodCaller.Call.
func (c *Client) Call(ctx context.Context, method string, params vimeo.Params) (*vimeo.Result, error) {
	canonical, err := c.catalog.Resolve(method)
	if err != nil {
		return nil, err
	}

	params = withDefaults(params, c.defaultFormat)
	format := params["format"]
	key := vimeo.CacheKey(canonical, params)

	// Lazy eviction: entries past the timeout go before each dispatch.
	if memory, ok := c.cache.(*vimeo.MemoryCache); ok {
		memory.EvictExpired()
	}

	entry, err := c.cache.Get(ctx, key)
	if err == nil {
		return vimeo.ParseResult(format, entry.Data)
	}

	resp, err := c.dispatch(ctx, canonical, params)
	if err != nil {
		return nil, err
	}

	result, err := vimeo.ParseResult(format, resp.Body)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_ = c.cache.Set(ctx, key, &vimeo.CacheEntry{
		Data:      resp.Body,
		CreatedAt: now,
		ExpiresAt: now.Add(c.cacheTimeout),
	})

	return result, nil
}

// CallRaw implements vimeo.MethodCaller.CallRaw. The response comes back
// unprocessed, whatever its status, and never touches the cache.
func (c *Client) CallRaw(ctx context.Context, method string, params vimeo.Params) (*vimeo.RawResult, error) {
	canonical, err := c.catalog.Resolve(method)
	if err != nil {
		return nil, err
	}

	params = withDefaults(params, c.defaultFormat)

	resp, err := c.httpClient.Get(ctx, "", callQuery(canonical, params))
	if resp == nil {
		return nil, fmt.Errorf("calling %s: %w", canonical, err)
	}

	return &vimeo.RawResult{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

// GetRequestToken implements vimeo.OAuthClient.GetRequestToken.
func (c *Client) GetRequestToken(ctx context.Context) error {
	err := c.flow.RequestToken(ctx)
	if err != nil {
		return fmt.Errorf("getting request token: %w", err)
	}

	return nil
}

// AuthorizationURL implements vimeo.OAuthClient.AuthorizationURL.
func (c *Client) AuthorizationURL(permission string) (string, error) {
	return c.flow.AuthorizationURL(permission)
}

// SetVerifier implements vimeo.OAuthClient.SetVerifier.
func (c *Client) SetVerifier(verifier string) error {
	return c.flow.SetVerifier(verifier)
}

// GetAccessToken implements vimeo.OAuthClient.GetAccessToken.
func (c *Client) GetAccessToken(ctx context.Context) (*vimeo.Token, error) {
	token, err := c.flow.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting access token: %w", err)
	}

	return &vimeo.Token{Token: token.Token, Secret: token.Secret}, nil
}

// Token implements vimeo.OAuthClient.Token.
func (c *Client) Token() *vimeo.Token {
	token := c.flow.Store().Get()
	if token == nil {
		return nil
	}

	return &vimeo.Token{Token: token.Token, Secret: token.Secret}
}

// FlushCache implements vimeo.Client.FlushCache.
func (c *Client) FlushCache() {
	_ = c.cache.Clear(context.Background())
}

// StartUpload implements vimeo.Client.StartUpload: it fetches the quota and
// an upload ticket and binds an uploader to them.
func (c *Client) StartUpload(ctx context.Context) (vimeo.Uploader, error) {
	quota, err := c.videos.GetUploadQuota(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting upload quota: %w", err)
	}

	ticket, err := c.videos.GetUploadTicket(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting upload ticket: %w", err)
	}

	return NewUploader(c, c.httpClient, *ticket, quota)
}

// Resource client accessors

// Videos implements vimeo.ResourceClients.Videos.
func (c *Client) Videos() vimeo.VideosClient { return c.videos }

// People implements vimeo.ResourceClients.People.
func (c *Client) People() vimeo.PeopleClient { return c.people }

// Channels implements vimeo.ResourceClients.Channels.
func (c *Client) Channels() vimeo.ChannelsClient { return c.channels }

// Albums implements vimeo.ResourceClients.Albums.
func (c *Client) Albums() vimeo.AlbumsClient { return c.albums }

// Groups implements vimeo.ResourceClients.Groups.
func (c *Client) Groups() vimeo.GroupsClient { return c.groups }

// Activity implements vimeo.ResourceClients.Activity.
func (c *Client) Activity() vimeo.ActivityClient { return c.activity }

// Contacts implements vimeo.ResourceClients.Contacts.
func (c *Client) Contacts() vimeo.ContactsClient { return c.contacts }

// Test implements vimeo.ResourceClients.Test.
func (c *Client) Test() vimeo.TestClient { return c.test }

// dispatch sends the signed GET carrying the method and parameters.
func (c *Client) dispatch(ctx context.Context, canonical string, params vimeo.Params) (*internalhttp.Response, error) {
	resp, err := c.httpClient.Get(ctx, "", callQuery(canonical, params))
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", canonical, err)
	}

	return resp, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.videos = NewVideosClient(c)
	c.people = NewPeopleClient(c)
	c.channels = NewChannelsClient(c)
	c.albums = NewAlbumsClient(c)
	c.groups = NewGroupsClient(c)
	c.activity = NewActivityClient(c)
	c.contacts = NewContactsClient(c)
	c.test = NewTestClient(c)
}

func withDefaults(params vimeo.Params, defaultFormat string) vimeo.Params {
	if params == nil {
		params = vimeo.Params{}
	} else {
		params = params.Clone()
	}

	if params["format"] == "" {
		params["format"] = defaultFormat
	}

	return params
}

func callQuery(canonical string, params vimeo.Params) url.Values {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}

	query.Set("method", canonical)

	return query
}

func flowEndpoints(config *vimeo.Config) auth.Endpoints {
	endpoints := auth.DefaultEndpoints()

	if config.RequestTokenURL != "" {
		endpoints.RequestTokenURL = config.RequestTokenURL
	}

	if config.AuthorizeURL != "" {
		endpoints.AuthorizeURL = config.AuthorizeURL
	}

	if config.AccessTokenURL != "" {
		endpoints.AccessTokenURL = config.AccessTokenURL
	}

	return endpoints
}

func httpOptions(config *vimeo.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

func cacheTimeout(config *vimeo.Config) time.Duration {
	if config.CacheTimeout < 0 {
		return constants.DefaultCacheTimeout
	}

	return config.CacheTimeout
}

func defaultFormat(config *vimeo.Config) string {
	if config.DefaultFormat == "" {
		return constants.DefaultResponseFormat
	}

	return config.DefaultFormat
}

func cacheFromConfig(config *vimeo.Config) vimeo.Cache {
	return vimeo.NewCacheFromConfig(&vimeo.CacheConfig{
		Type:    vimeo.CacheTypeMemory,
		MaxSize: config.CacheSize,
		Timeout: cacheTimeout(config),
	})
}
