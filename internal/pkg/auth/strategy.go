package auth

import (
	"errors"
	"time"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies bearer credentials carrying the actor context.
type Strategy interface {
	IssueToken(user *model.User) (string, error)
	ParseToken(token string) (*model.Actor, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
