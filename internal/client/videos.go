package client

import (
	"context"
	"fmt"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// VideosClient implements the vimeo.VideosClient interface.
type VideosClient struct {
	caller vimeo.MethodCaller
}

// NewVideosClient creates a new VideosClient.
func NewVideosClient(caller vimeo.MethodCaller) *VideosClient {
	return &VideosClient{caller: caller}
}

// GetInfo retrieves a video's metadata.
func (c *VideosClient) GetInfo(ctx context.Context, videoID string) (*vimeo.Video, error) {
	payload, err := callJSON(ctx, c.caller, "videos.getInfo", vimeo.Params{"video_id": videoID})
	if err != nil {
		return nil, fmt.Errorf("getting video info: %w", err)
	}

	return decodeOne[vimeo.Video](payload, "video")
}

// GetList lists a user's videos.
func (c *VideosClient) GetList(ctx context.Context, userID string) ([]vimeo.Video, error) {
	payload, err := callJSON(ctx, c.caller, "videos.getAll", vimeo.Params{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}

	return decodeItems[vimeo.Video](payload, "video")
}

// Search searches public videos. Extra parameters (page, per_page, sort)
// pass through.
func (c *VideosClient) Search(ctx context.Context, query string, params vimeo.Params) ([]vimeo.Video, error) {
	if params == nil {
		params = vimeo.Params{}
	} else {
		params = params.Clone()
	}

	params["query"] = query

	payload, err := callJSON(ctx, c.caller, "videos.search", params)
	if err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}

	return decodeItems[vimeo.Video](payload, "video")
}

// GetUploadQuota fetches the account's upload allowance.
func (c *VideosClient) GetUploadQuota(ctx context.Context) (*vimeo.UploadQuota, error) {
	payload, err := callJSON(ctx, c.caller, "videos.upload.getQuota", nil)
	if err != nil {
		return nil, fmt.Errorf("getting upload quota: %w", err)
	}

	return decodeOne[vimeo.UploadQuota](payload, "user")
}

// GetUploadTicket opens an upload session.
func (c *VideosClient) GetUploadTicket(ctx context.Context) (*vimeo.UploadTicket, error) {
	payload, err := callJSON(ctx, c.caller, "videos.upload.getTicket", nil)
	if err != nil {
		return nil, fmt.Errorf("getting upload ticket: %w", err)
	}

	return decodeOne[vimeo.UploadTicket](payload, "ticket")
}
