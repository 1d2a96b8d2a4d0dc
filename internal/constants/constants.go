package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Default Vimeo Advanced API (v2) endpoints.
const (
	// DefaultAPIEndpoint is the REST endpoint all method calls dispatch to.
	DefaultAPIEndpoint = "http://vimeo.com/api/rest/v2/"

	// DefaultRequestTokenURL is step 1 of the three-legged OAuth handshake.
	DefaultRequestTokenURL = "http://vimeo.com/oauth/request_token"

	// DefaultAuthorizeURL is where the user grants permission (step 2).
	DefaultAuthorizeURL = "http://vimeo.com/oauth/authorize"

	// DefaultAccessTokenURL is the final token exchange (step 3).
	DefaultAccessTokenURL = "http://vimeo.com/oauth/access_token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for chunk uploads, which can run long.
	UploadHTTPTimeout = 5 * time.Minute
)

// Cache defaults.
const (
	// DefaultCacheTimeout is how long a processed response stays cached.
	DefaultCacheTimeout = 120 * time.Second

	// DefaultCacheSize is the maximum number of cached responses.
	DefaultCacheSize = 1000
)

// Response format defaults.
const (
	// DefaultResponseFormat is applied when a call does not set "format".
	DefaultResponseFormat = "json"
)

// DefaultUserAgent identifies the client on the wire.
const DefaultUserAgent = "go-vimeo"

// OAuth defaults.
const (
	// DefaultPermission is the access level requested during authorization.
	DefaultPermission = "read"

	// OutOfBandCallback is used when no callback URL is registered.
	OutOfBandCallback = "oob"
)
