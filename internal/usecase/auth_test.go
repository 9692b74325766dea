package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
	pkgAuth "github.com/elcriollo/restaurant/internal/pkg/auth"
	testhelpers "github.com/elcriollo/restaurant/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(user *model.User) (string, error) {
			return fmt.Sprintf("token-%d", user.ID), nil
		},
		ParseFn: func(token string) (*model.Actor, error) {
			if !strings.HasPrefix(token, "token-") {
				return nil, pkgAuth.ErrInvalidToken
			}
			id, err := strconv.ParseInt(strings.TrimPrefix(token, "token-"), 10, 64)
			if err != nil {
				return nil, pkgAuth.ErrInvalidToken
			}
			return &model.Actor{UserID: id, Role: model.RoleServer}, nil
		},
	}
}

func newAuthUseCase(repo *testhelpers.UserRepositoryStub, sink *testhelpers.NotificationSinkStub) *AuthUseCase {
	return NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), sink)
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	sink := testhelpers.NewNotificationSinkStub()
	uc := newAuthUseCase(repo, sink)

	ctx := context.Background()
	registered, err := uc.Register(ctx, "Maria", "maria@elcriollo.do", "password", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if registered.User.ID == 0 {
		t.Fatal("expected user to have ID assigned")
	}
	if registered.Token != "token-1" {
		t.Fatalf("unexpected token %q", registered.Token)
	}
	if registered.User.Role != model.RoleServer {
		t.Fatalf("expected default Server role, got %q", registered.User.Role)
	}
	if !registered.NotificationSent {
		t.Fatal("welcome notification outcome should be reported")
	}
	stored, err := repo.GetByEmail(ctx, "maria@elcriollo.do")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if len(sink.Sent) != 1 || sink.Sent[0].Kind != NotifyWelcome {
		t.Fatalf("expected one welcome notification, got %+v", sink.Sent)
	}
}

func TestAuthUseCaseRegisterNormalizesEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo, testhelpers.NewNotificationSinkStub())

	registered, err := uc.Register(context.Background(), "Jose", "  Jose@ElCriollo.DO ", "secret", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if registered.User.Email != "jose@elcriollo.do" {
		t.Fatalf("email not normalized: %q", registered.User.Email)
	}
}

func TestAuthUseCaseRegisterExplicitRole(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.NewNotificationSinkStub())

	registered, err := uc.Register(context.Background(), "Ana", "ana@elcriollo.do", "secret", "Cashier")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if registered.User.Role != model.RoleCashier {
		t.Fatalf("expected Cashier role, got %q", registered.User.Role)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.NewNotificationSinkStub())
	ctx := context.Background()

	cases := []struct {
		name, email, password, role string
	}{
		{"", "a@b.do", "pass", ""},
		{"Ana", "", "pass", ""},
		{"Ana", "a@b.do", "", ""},
		{"Ana", "not-an-email", "pass", ""},
		{"Ana", "a@b.do", "pass", "Ghost"},
	}
	for _, c := range cases {
		if _, err := uc.Register(ctx, c.name, c.email, c.password, c.role); err != domainErrors.ErrInvalidInput {
			t.Fatalf("register(%q,%q,%q,%q): expected ErrInvalidInput, got %v", c.name, c.email, c.password, c.role, err)
		}
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.NewNotificationSinkStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "Pedro", "pedro@elcriollo.do", "secret", ""); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, err := uc.Register(ctx, "Pedro", "pedro@elcriollo.do", "secret", ""); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterDegradedNotification(t *testing.T) {
	sink := testhelpers.NewNotificationSinkStub()
	sink.Result = false
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), sink)

	registered, err := uc.Register(context.Background(), "Luz", "luz@elcriollo.do", "secret", "")
	if err != nil {
		t.Fatalf("register must succeed despite sink failure: %v", err)
	}
	if registered.NotificationSent {
		t.Fatal("degraded delivery must be reported as not sent")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo, testhelpers.NewNotificationSinkStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "Carla", "carla@elcriollo.do", "123456", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carla@elcriollo.do", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@elcriollo.do", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carla@elcriollo.do", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Email != "carla@elcriollo.do" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestAuthUseCaseAuthenticateInactive(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo, testhelpers.NewNotificationSinkStub())

	ctx := context.Background()
	registered, err := uc.Register(ctx, "Raul", "raul@elcriollo.do", "secret", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.ByID[registered.User.ID].Active = false

	if _, _, err := uc.Authenticate(ctx, "raul@elcriollo.do", "secret"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("inactive account must not authenticate, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.NewNotificationSinkStub())

	actor, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if actor.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", actor.UserID)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseUserManagementGate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo, testhelpers.NewNotificationSinkStub())
	ctx := context.Background()

	registered, err := uc.Register(ctx, "Eva", "eva@elcriollo.do", "secret", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	server := model.Actor{UserID: 2, Role: model.RoleServer}
	if _, err := uc.ListUsers(ctx, server); err != domainErrors.ErrForbidden {
		t.Fatalf("server must not list users, got %v", err)
	}
	if _, err := uc.GetUser(ctx, server, registered.User.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("server must not fetch users, got %v", err)
	}

	admin := model.Actor{UserID: 1, Role: model.RoleAdministrator}
	users, err := uc.ListUsers(ctx, admin)
	if err != nil {
		t.Fatalf("admin list users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one account, got %d", len(users))
	}
	fetched, err := uc.GetUser(ctx, admin, registered.User.ID)
	if err != nil {
		t.Fatalf("admin get user failed: %v", err)
	}
	if fetched.Email != "eva@elcriollo.do" {
		t.Fatalf("unexpected account %+v", fetched)
	}
}
