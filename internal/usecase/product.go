package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/domain/repository"
)

// ProductUseCase manages the menu catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

func validProduct(p model.Product) bool {
	name := strings.TrimSpace(p.Name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return false
	}
	if utf8.RuneCountInString(p.Description) > 200 {
		return false
	}
	if !model.ValidCategory(p.Category) {
		return false
	}
	return p.Price >= model.MinProductPrice && p.Price <= model.MaxProductPrice
}

// Create adds a menu item.
func (u *ProductUseCase) Create(ctx context.Context, actor model.Actor, p model.Product) (*model.Product, error) {
	if !actor.Role.Can(model.OpManageMenu) {
		return nil, domainErrors.ErrForbidden
	}
	if !validProduct(p) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.Create(ctx, p)
}

// Get returns a menu item by id.
func (u *ProductUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*model.Product, error) {
	if !actor.Role.Can(model.OpViewProducts) {
		return nil, domainErrors.ErrForbidden
	}
	return u.products.GetByID(ctx, id)
}

// List returns the whole catalog.
func (u *ProductUseCase) List(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	if !actor.Role.Can(model.OpViewProducts) {
		return nil, domainErrors.ErrForbidden
	}
	return u.products.List(ctx)
}

// ListByCategory returns items of one menu category.
func (u *ProductUseCase) ListByCategory(ctx context.Context, actor model.Actor, category string) ([]model.Product, error) {
	if !actor.Role.Can(model.OpViewProducts) {
		return nil, domainErrors.ErrForbidden
	}
	if !model.ValidCategory(category) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.ListByCategory(ctx, category)
}

// ListAvailable returns items currently sellable.
func (u *ProductUseCase) ListAvailable(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	if !actor.Role.Can(model.OpViewProducts) {
		return nil, domainErrors.ErrForbidden
	}
	return u.products.ListAvailable(ctx)
}

// Update replaces a menu item's attributes. Captured prices on existing
// order lines are untouched.
func (u *ProductUseCase) Update(ctx context.Context, actor model.Actor, id int64, p model.Product) (*model.Product, error) {
	if !actor.Role.Can(model.OpManageMenu) {
		return nil, domainErrors.ErrForbidden
	}
	if !validProduct(p) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.Update(ctx, id, p)
}

// Delete removes a menu item that no order line references.
func (u *ProductUseCase) Delete(ctx context.Context, actor model.Actor, id int64) error {
	if !actor.Role.Can(model.OpManageMenu) {
		return domainErrors.ErrForbidden
	}
	return u.products.Delete(ctx, id)
}
