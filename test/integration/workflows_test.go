//go:build integration
// +build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
	"github.com/reelworks/go-vimeo/pkg/vimeoclient"
)

// newFakeAPI stands in for the whole remote service: OAuth handshake,
// method dispatch, and the upload endpoint.
func newFakeAPI(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/request_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=req-token&oauth_token_secret=req-secret&oauth_callback_confirmed=true"))
	})
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=access-token&oauth_token_secret=access-secret"))
	})

	var server *httptest.Server

	mux.HandleFunc("/api/rest/v2/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		switch r.URL.Query().Get("method") {
		case "vimeo.test.login":
			_, _ = w.Write([]byte(`{"stat":"ok","user":{"id":"user-1","username":"ada"}}`))
		case "vimeo.videos.getAll":
			_, _ = w.Write([]byte(`{"stat":"ok","video":[{"id":"1","title":"First"},{"id":"2","title":"Second"}]}`))
		case "vimeo.videos.upload.getQuota":
			_, _ = w.Write([]byte(`{"stat":"ok","user":{"sd_quota":true,"hd_quota":true,"upload_space":1000000}}`))
		case "vimeo.videos.upload.getTicket":
			_, _ = w.Write([]byte(`{"stat":"ok","ticket":{"id":"ticket-1","endpoint":"` + server.URL + `/upload"}}`))
		case "vimeo.videos.upload.verifyChunks", "vimeo.videos.upload.complete":
			_, _ = w.Write([]byte(`{"stat":"ok","ticket":{"id":"ticket-1"}}`))
		default:
			_, _ = w.Write([]byte(`{"stat":"fail","err":{"code":"1","msg":"Method not found"}}`))
		}
	})
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestWorkflow_HandshakeCallAndUpload(t *testing.T) {
	var calls atomic.Int64

	server := newFakeAPI(t, &calls)

	config := vimeoclient.DefaultConfig("consumer-key", "consumer-secret")
	config.APIEndpoint = server.URL + "/api/rest/v2/"
	config.RequestTokenURL = server.URL + "/oauth/request_token"
	config.AuthorizeURL = server.URL + "/oauth/authorize"
	config.AccessTokenURL = server.URL + "/oauth/access_token"
	config.CacheTimeout = 1 * time.Minute

	client, err := vimeoclient.New(context.Background(), config)
	require.NoError(t, err)

	ctx := context.Background()

	// 1. Three-legged handshake
	require.NoError(t, client.GetRequestToken(ctx))

	authURL, err := client.AuthorizationURL("write")
	require.NoError(t, err)
	assert.Contains(t, authURL, "oauth_token=req-token")

	require.NoError(t, client.SetVerifier("granted"))

	token, err := client.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", token.Token)

	// 2. Typed calls with the new token
	me, err := client.Test().Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", me.Username)

	videos, err := client.Videos().GetList(ctx, me.ID)
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	// 3. Repeat call is a cache hit
	before := calls.Load()

	_, err = client.Videos().GetList(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, before, calls.Load())

	// 4. Generic dispatch of an unknown method fails client-side
	_, err = client.Call(ctx, "movies.getAll", nil)
	require.ErrorIs(t, err, vimeo.ErrUnknownMethod)

	// 5. Chunked upload
	uploader, err := client.StartUpload(ctx)
	require.NoError(t, err)
	require.NoError(t, uploader.Upload(ctx, strings.NewReader("chunk-data")))

	_, err = uploader.VerifyChunks(ctx)
	require.NoError(t, err)
	require.NoError(t, uploader.Complete(ctx, "movie.mp4"))

	// 6. Flush forces the next call back to the wire
	client.FlushCache()

	before = calls.Load()

	_, err = client.Videos().GetList(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, calls.Load())
}
