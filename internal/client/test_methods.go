package client

import (
	"context"
	"fmt"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// TestMethodsClient implements the vimeo.TestClient interface, wrapping the
// API's own connectivity checks.
type TestMethodsClient struct {
	caller vimeo.MethodCaller
}

// NewTestClient creates a new TestMethodsClient.
func NewTestClient(caller vimeo.MethodCaller) *TestMethodsClient {
	return &TestMethodsClient{caller: caller}
}

// Echo sends parameters and returns what the API echoed back.
func (c *TestMethodsClient) Echo(ctx context.Context, params vimeo.Params) (vimeo.Params, error) {
	payload, err := callJSON(ctx, c.caller, "test.echo", params)
	if err != nil {
		return nil, fmt.Errorf("echo call: %w", err)
	}

	echoed, ok := payload.(map[string]interface{})
	if !ok {
		return vimeo.Params{}, nil
	}

	result := make(vimeo.Params, len(echoed))
	for key, value := range echoed {
		result[key] = fmt.Sprint(value)
	}

	return result, nil
}

// Null checks that the consumer credentials sign correctly. A successful
// call has an empty payload.
func (c *TestMethodsClient) Null(ctx context.Context) error {
	_, err := callJSON(ctx, c.caller, "test.null", nil)
	if err != nil {
		return fmt.Errorf("null call: %w", err)
	}

	return nil
}

// Login returns the user the current access token belongs to.
func (c *TestMethodsClient) Login(ctx context.Context) (*vimeo.Person, error) {
	payload, err := callJSON(ctx, c.caller, "test.login", nil)
	if err != nil {
		return nil, fmt.Errorf("login call: %w", err)
	}

	return decodeOne[vimeo.Person](payload, "user")
}
