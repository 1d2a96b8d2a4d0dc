package client

import (
	"context"
	"fmt"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// PeopleClient implements the vimeo.PeopleClient interface.
type PeopleClient struct {
	caller vimeo.MethodCaller
}

// NewPeopleClient creates a new PeopleClient.
func NewPeopleClient(caller vimeo.MethodCaller) *PeopleClient {
	return &PeopleClient{caller: caller}
}

// GetInfo retrieves a user's profile.
func (c *PeopleClient) GetInfo(ctx context.Context, userID string) (*vimeo.Person, error) {
	payload, err := callJSON(ctx, c.caller, "people.getInfo", vimeo.Params{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("getting person info: %w", err)
	}

	return decodeOne[vimeo.Person](payload, "person")
}

// FindByEmail looks a user up by email address.
func (c *PeopleClient) FindByEmail(ctx context.Context, email string) (*vimeo.Person, error) {
	payload, err := callJSON(ctx, c.caller, "people.findByEmail", vimeo.Params{"email": email})
	if err != nil {
		return nil, fmt.Errorf("finding person by email: %w", err)
	}

	return decodeOne[vimeo.Person](payload, "user")
}

// ContactsClient implements the vimeo.ContactsClient interface.
type ContactsClient struct {
	caller vimeo.MethodCaller
}

// NewContactsClient creates a new ContactsClient.
func NewContactsClient(caller vimeo.MethodCaller) *ContactsClient {
	return &ContactsClient{caller: caller}
}

// GetAll lists a user's contacts.
func (c *ContactsClient) GetAll(ctx context.Context, userID string) ([]vimeo.Person, error) {
	payload, err := callJSON(ctx, c.caller, "contacts.getAll", vimeo.Params{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return decodeItems[vimeo.Person](payload, "contact")
}
