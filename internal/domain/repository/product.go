package repository

import (
	"context"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

// ProductRepository describes persistence operations with the menu catalog.
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	ListAvailable(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id int64, p model.Product) (*model.Product, error)
	// Delete fails with ErrConflict when order lines reference the product.
	Delete(ctx context.Context, id int64) error
}
