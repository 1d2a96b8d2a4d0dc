package client

import (
	"context"
	"fmt"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// ActivityClient implements the vimeo.ActivityClient interface.
type ActivityClient struct {
	caller vimeo.MethodCaller
}

// NewActivityClient creates a new ActivityClient.
func NewActivityClient(caller vimeo.MethodCaller) *ActivityClient {
	return &ActivityClient{caller: caller}
}

// UserDid lists activity performed by the user.
func (c *ActivityClient) UserDid(ctx context.Context, userID string) ([]vimeo.ActivityItem, error) {
	payload, err := callJSON(ctx, c.caller, "activity.userDid", vimeo.Params{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("listing user activity: %w", err)
	}

	return decodeItems[vimeo.ActivityItem](payload, "activity")
}

// HappenedToUser lists activity that happened to the user.
func (c *ActivityClient) HappenedToUser(ctx context.Context, userID string) ([]vimeo.ActivityItem, error) {
	payload, err := callJSON(ctx, c.caller, "activity.happenedToUser", vimeo.Params{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("listing activity for user: %w", err)
	}

	return decodeItems[vimeo.ActivityItem](payload, "activity")
}
