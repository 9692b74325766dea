package auth

import (
	"testing"
	"time"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    7,
		Name:  "Maria",
		Email: "maria@elcriollo.do",
		Role:  model.RoleServer,
	}
}

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	actor, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if actor.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", actor.UserID)
	}
	if actor.Name != "Maria" || actor.Email != "maria@elcriollo.do" {
		t.Fatalf("actor context lost: %+v", actor)
	}
	if actor.Role != model.RoleServer {
		t.Fatalf("expected Server role, got %q", actor.Role)
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret", Options{TTL: time.Hour})
	verifier := NewJWTStrategy("other", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestJWTStrategyRejectsExpired(t *testing.T) {
	strategy := &JWTStrategy{secret: []byte("secret"), ttl: -time.Minute}

	token, err := strategy.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategyRejectsUnknownRole(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	user := testUser()
	user.Role = model.Role("Ghost")
	token, err := strategy.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unknown role, got %v", err)
	}
}

func TestJWTStrategyName(t *testing.T) {
	if got := NewJWTStrategy("secret", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected strategy name %q", got)
	}
}
