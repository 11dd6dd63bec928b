package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
	internal_errors "github.com/itchan-dev/confluence-bridge/shared/errors"
	"github.com/itchan-dev/confluence-bridge/shared/utils"
)

// to mock service in tests
type UserService interface {
	Current(ctx context.Context) (confluence.User, error)
	Get(ctx context.Context, lookup confluence.UserLookup) (confluence.User, error)
}

type UserClient interface {
	IsCloud() bool
	GetCurrentUser(ctx context.Context) (confluence.User, error)
	GetUser(ctx context.Context, lookup confluence.UserLookup) (confluence.User, error)
}

type User struct {
	client UserClient
}

func NewUser(client UserClient) UserService {
	return &User{client}
}

func (u *User) Current(ctx context.Context) (confluence.User, error) {
	return u.client.GetCurrentUser(ctx)
}

func (u *User) Get(ctx context.Context, lookup confluence.UserLookup) (confluence.User, error) {
	lookup.Identifier = strings.TrimSpace(lookup.Identifier)
	if err := utils.Validate(lookup); err != nil {
		return confluence.DefaultUser(), err
	}
	if lookup.ByKey && u.client.IsCloud() {
		return confluence.DefaultUser(), &internal_errors.ErrorWithStatusCode{
			Message:    "user key lookup is only supported by server deployments",
			StatusCode: http.StatusBadRequest,
		}
	}
	return u.client.GetUser(ctx, lookup)
}
