package usecase

import (
	"context"
	"net/mail"
	"strings"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/domain/repository"
	pkgAuth "github.com/elcriollo/restaurant/internal/pkg/auth"
)

// AuthUseCase handles account registration, login and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	sink   NotificationSink
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, sink NotificationSink) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, sink: sink}
}

// Register creates a new account and returns an auth token for immediate
// login. The welcome notification is best-effort.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password, role string) (*model.RegisteredUser, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainErrors.ErrInvalidInput
	}

	// New staff accounts default to Server, as the waiting staff is the
	// common case.
	if role == "" {
		role = string(model.RoleServer)
	}
	parsedRole, err := model.ParseRole(role)
	if err != nil {
		return nil, domainErrors.ErrInvalidInput
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, name, email, hash, parsedRole)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.IssueToken(usr)
	if err != nil {
		return nil, err
	}

	sent := u.sink.Send(ctx, NotifyWelcome, usr.Email, map[string]any{
		"name": usr.Name,
	})

	return &model.RegisteredUser{User: usr, Token: token, NotificationSent: sent}, nil
}

// Authenticate validates credentials and returns the user with an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domainErrors.ErrNotFound {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if !usr.Active {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken resolves the actor context encoded in a bearer token.
func (u *AuthUseCase) ParseToken(token string) (*model.Actor, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetUser fetches an account; restricted to user management roles.
func (u *AuthUseCase) GetUser(ctx context.Context, actor model.Actor, id int64) (*model.User, error) {
	if !actor.Role.Can(model.OpManageUsers) {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.GetByID(ctx, id)
}

// ListUsers returns all accounts; restricted to user management roles.
func (u *AuthUseCase) ListUsers(ctx context.Context, actor model.Actor) ([]model.User, error) {
	if !actor.Role.Can(model.OpManageUsers) {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.List(ctx)
}
