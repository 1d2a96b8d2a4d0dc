package vimeo

import (
	"context"
	"io"
	"time"
)

// Client is the full client surface: generic method dispatch, the
// three-legged OAuth handshake, typed resource clients, and uploading.
type Client interface {
	MethodCaller
	OAuthClient
	ResourceClients

	// StartUpload fetches the account quota and an upload ticket and
	// returns an uploader bound to them.
	StartUpload(ctx context.Context) (Uploader, error)

	// FlushCache clears all cached responses unconditionally.
	FlushCache()
}

// MethodCaller dispatches API methods by name.
type MethodCaller interface {
	// Call dispatches a signed GET for the named method and parses the
	// response according to its format. The method name is validated
	// against the catalog; unknown names fail with ErrUnknownMethod.
	// Recent calls are served from the cache.
	Call(ctx context.Context, method string, params Params) (*Result, error)

	// CallRaw dispatches the same request but returns the response
	// headers and body unprocessed. Raw calls bypass the cache.
	CallRaw(ctx context.Context, method string, params Params) (*RawResult, error)
}

// OAuthClient walks the three-legged OAuth handshake. The steps must run in
// order; each mutates the stored credential token.
type OAuthClient interface {
	// GetRequestToken obtains an unauthorized request token (step 1).
	GetRequestToken(ctx context.Context) error

	// AuthorizationURL builds the URL the user must visit to grant the
	// given permission (step 2a). Fails if no request token is present.
	AuthorizationURL(permission string) (string, error)

	// SetVerifier records the verifier string the user received after
	// granting permission (step 2b).
	SetVerifier(verifier string) error

	// GetAccessToken exchanges the verified request token for an access
	// token (step 3) and returns it so it can be persisted elsewhere.
	GetAccessToken(ctx context.Context) (*Token, error)

	// Token returns the currently held credential, or nil.
	Token() *Token
}

// ResourceClients provides access to the typed per-namespace clients.
type ResourceClients interface {
	Videos() VideosClient
	People() PeopleClient
	Channels() ChannelsClient
	Albums() AlbumsClient
	Groups() GroupsClient
	Activity() ActivityClient
	Contacts() ContactsClient
	Test() TestClient
}

// VideosClient wraps the vimeo.videos methods.
type VideosClient interface {
	GetInfo(ctx context.Context, videoID string) (*Video, error)
	GetList(ctx context.Context, userID string) ([]Video, error)
	Search(ctx context.Context, query string, params Params) ([]Video, error)
	GetUploadQuota(ctx context.Context) (*UploadQuota, error)
	GetUploadTicket(ctx context.Context) (*UploadTicket, error)
}

// PeopleClient wraps the vimeo.people methods.
type PeopleClient interface {
	GetInfo(ctx context.Context, userID string) (*Person, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
}

// ChannelsClient wraps the vimeo.channels methods.
type ChannelsClient interface {
	GetInfo(ctx context.Context, channelID string) (*Channel, error)
	GetAll(ctx context.Context, params Params) ([]Channel, error)
}

// AlbumsClient wraps the vimeo.albums methods.
type AlbumsClient interface {
	GetAll(ctx context.Context, userID string) ([]Album, error)
	GetVideos(ctx context.Context, albumID string) ([]Video, error)
}

// GroupsClient wraps the vimeo.groups methods.
type GroupsClient interface {
	GetInfo(ctx context.Context, groupID string) (*Group, error)
	GetAll(ctx context.Context, params Params) ([]Group, error)
}

// ActivityClient wraps the vimeo.activity methods.
type ActivityClient interface {
	UserDid(ctx context.Context, userID string) ([]ActivityItem, error)
	HappenedToUser(ctx context.Context, userID string) ([]ActivityItem, error)
}

// ContactsClient wraps the vimeo.contacts methods.
type ContactsClient interface {
	GetAll(ctx context.Context, userID string) ([]Person, error)
}

// TestClient wraps the vimeo.test methods.
type TestClient interface {
	// Echo returns the parameters the API echoed back.
	Echo(ctx context.Context, params Params) (Params, error)

	// Null checks that the consumer credentials sign correctly.
	Null(ctx context.Context) error

	// Login returns the user the current access token belongs to.
	Login(ctx context.Context) (*Person, error)
}

// Uploader posts file chunks to the endpoint named by an upload ticket.
type Uploader interface {
	// Upload posts the next chunk and advances the chunk counter.
	Upload(ctx context.Context, chunk io.Reader) error

	// VerifyChunks asks the API which chunks arrived intact.
	VerifyChunks(ctx context.Context) (*Result, error)

	// Complete finalizes the upload session under the given filename.
	Complete(ctx context.Context, filename string) error

	// Ticket returns the ticket this uploader is bound to.
	Ticket() UploadTicket

	// Quota returns the account quota fetched when the upload started, if any.
	Quota() *UploadQuota
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a vimeo.Client.
//
// # Credentials
//
// ConsumerKey and ConsumerSecret are required. If Token and TokenSecret are
// set, the client starts authenticated and the handshake steps are not
// needed. Otherwise run GetRequestToken, AuthorizationURL, SetVerifier, and
// GetAccessToken in order.
//
// # Caching
//
// Processed responses are memoized per method and parameter set for
// CacheTimeout. A zero timeout disables caching entirely. Entries are
// evicted lazily on the next call after they expire.
//
// # Retries
//
// Retries are off by default. Setting RetryMax enables transport-level
// retries with the given backoff bounds.
type Config struct {
	// ConsumerKey is the application's OAuth consumer key.
	ConsumerKey string
	// ConsumerSecret is the application's OAuth consumer secret.
	ConsumerSecret string

	// Token and TokenSecret hold a previously obtained access token.
	Token       string
	TokenSecret string

	// DefaultFormat is applied when a call does not set "format".
	// Defaults to "json".
	DefaultFormat string

	// CacheTimeout bounds how long a processed response is served from
	// cache. Zero disables caching. Defaults to 120 seconds when
	// negative or unset via DefaultConfig.
	CacheTimeout time.Duration

	// CacheSize is the maximum number of cached responses.
	CacheSize int

	// APIEndpoint overrides the REST endpoint. Intended for tests.
	APIEndpoint string
	// RequestTokenURL, AuthorizeURL, and AccessTokenURL override the
	// OAuth handshake endpoints. Intended for tests.
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string

	// HTTPTimeout is the default HTTP timeout for API calls.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport retries. Zero means
	// no retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
