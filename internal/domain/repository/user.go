package repository

import (
	"context"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

// UserRepository describes persistence operations with user accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
