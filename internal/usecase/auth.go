package usecase

import (
	"context"

	"github.com/venkatbala210/hotel-management-system/internal/gateway"
)

// AuthProxy forwards credential checks to the gateway. Enforcement lives
// upstream; this exists so the login screen has somewhere to post and the
// browser gets a token plus role to store.
type AuthProxy interface {
	Login(ctx context.Context, email, password string) (gateway.LoginResult, error)
}

type authProxyImpl struct {
	users UserGateway
}

func NewAuthProxy(users UserGateway) AuthProxy {
	return &authProxyImpl{users: users}
}

func (a *authProxyImpl) Login(ctx context.Context, email, password string) (gateway.LoginResult, error) {
	return a.users.Login(ctx, email, password)
}
