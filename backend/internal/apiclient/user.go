package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
)

// GetCurrentUser fetches the user the client authenticates as.
func (c *APIClient) GetCurrentUser(ctx context.Context) (confluence.User, error) {
	return c.fetchUser(ctx, nil)
}

// GetUser fetches a user by account id (cloud), username or user key (server).
func (c *APIClient) GetUser(ctx context.Context, lookup confluence.UserLookup) (confluence.User, error) {
	query := url.Values{}
	switch {
	case c.cloud:
		query.Set("accountId", lookup.Identifier)
	case lookup.ByKey:
		query.Set("key", lookup.Identifier)
	default:
		query.Set("username", lookup.Identifier)
	}
	return c.fetchUser(ctx, query)
}

func (c *APIClient) fetchUser(ctx context.Context, query url.Values) (confluence.User, error) {
	path := "/rest/api/user"
	if query == nil {
		path = "/rest/api/user/current"
	}
	resp, err := c.get(ctx, "user", path, query)
	if err != nil {
		return confluence.DefaultUser(), err
	}
	body, err := readBody(resp)
	if err != nil {
		return confluence.DefaultUser(), err
	}
	user, err := confluence.DecodeUser(body)
	if err != nil {
		return confluence.DefaultUser(), fmt.Errorf("cannot decode user response: %w", err)
	}
	return user, nil
}
