package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// Static errors for payload decoding.
var (
	ErrEmptyResult = errors.New("response contained no items")
)

// callJSON dispatches a method forcing the json format, since the typed
// clients decode from the unwrapped JSON payload.
func callJSON(ctx context.Context, caller vimeo.MethodCaller, method string, params vimeo.Params) (interface{}, error) {
	if params == nil {
		params = vimeo.Params{}
	} else {
		params = params.Clone()
	}

	params["format"] = vimeo.FormatJSON

	result, err := caller.Call(ctx, method, params)
	if err != nil {
		return nil, err
	}

	return result.Payload, nil
}

// decodeItems decodes a payload into a slice of T. The API wraps lists in a
// container keyed by the singular resource name ({"video": [...]}) and
// collapses single results to a bare object, so both shapes are accepted.
func decodeItems[T any](payload interface{}, key string) ([]T, error) {
	if container, ok := payload.(map[string]interface{}); ok {
		if inner, found := container[key]; found {
			payload = inner
		}
	}

	if _, ok := payload.([]interface{}); ok {
		var items []T

		err := vimeo.DecodePayload(payload, &items)
		if err != nil {
			return nil, err
		}

		return items, nil
	}

	var item T

	err := vimeo.DecodePayload(payload, &item)
	if err != nil {
		return nil, err
	}

	return []T{item}, nil
}

// decodeOne decodes a payload expected to hold exactly one T.
func decodeOne[T any](payload interface{}, key string) (*T, error) {
	items, err := decodeItems[T](payload, key)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, key)
	}

	return &items[0], nil
}
