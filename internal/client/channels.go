package client

import (
	"context"
	"fmt"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// ChannelsClient implements the vimeo.ChannelsClient interface.
type ChannelsClient struct {
	caller vimeo.MethodCaller
}

// NewChannelsClient creates a new ChannelsClient.
func NewChannelsClient(caller vimeo.MethodCaller) *ChannelsClient {
	return &ChannelsClient{caller: caller}
}

// GetInfo retrieves a channel's metadata.
func (c *ChannelsClient) GetInfo(ctx context.Context, channelID string) (*vimeo.Channel, error) {
	payload, err := callJSON(ctx, c.caller, "channels.getInfo", vimeo.Params{"channel_id": channelID})
	if err != nil {
		return nil, fmt.Errorf("getting channel info: %w", err)
	}

	return decodeOne[vimeo.Channel](payload, "channel")
}

// GetAll lists channels. Extra parameters (sort, page, per_page) pass
// through.
func (c *ChannelsClient) GetAll(ctx context.Context, params vimeo.Params) ([]vimeo.Channel, error) {
	payload, err := callJSON(ctx, c.caller, "channels.getAll", params)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}

	return decodeItems[vimeo.Channel](payload, "channel")
}

// AlbumsClient implements the vimeo.AlbumsClient interface.
type AlbumsClient struct {
	caller vimeo.MethodCaller
}

// NewAlbumsClient creates a new AlbumsClient.
func NewAlbumsClient(caller vimeo.MethodCaller) *AlbumsClient {
	return &AlbumsClient{caller: caller}
}

// GetAll lists a user's albums.
func (c *AlbumsClient) GetAll(ctx context.Context, userID string) ([]vimeo.Album, error) {
	payload, err := callJSON(ctx, c.caller, "albums.getAll", vimeo.Params{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("listing albums: %w", err)
	}

	return decodeItems[vimeo.Album](payload, "album")
}

// GetVideos lists the videos in an album.
func (c *AlbumsClient) GetVideos(ctx context.Context, albumID string) ([]vimeo.Video, error) {
	payload, err := callJSON(ctx, c.caller, "albums.getVideos", vimeo.Params{"album_id": albumID})
	if err != nil {
		return nil, fmt.Errorf("listing album videos: %w", err)
	}

	return decodeItems[vimeo.Video](payload, "video")
}

// GroupsClient implements the vimeo.GroupsClient interface.
type GroupsClient struct {
	caller vimeo.MethodCaller
}

// NewGroupsClient creates a new GroupsClient.
func NewGroupsClient(caller vimeo.MethodCaller) *GroupsClient {
	return &GroupsClient{caller: caller}
}

// GetInfo retrieves a group's metadata.
func (c *GroupsClient) GetInfo(ctx context.Context, groupID string) (*vimeo.Group, error) {
	payload, err := callJSON(ctx, c.caller, "groups.getInfo", vimeo.Params{"group_id": groupID})
	if err != nil {
		return nil, fmt.Errorf("getting group info: %w", err)
	}

	return decodeOne[vimeo.Group](payload, "group")
}

// GetAll lists groups.
func (c *GroupsClient) GetAll(ctx context.Context, params vimeo.Params) ([]vimeo.Group, error) {
	payload, err := callJSON(ctx, c.caller, "groups.getAll", params)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return decodeItems[vimeo.Group](payload, "group")
}
