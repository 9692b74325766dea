package usecase

import (
	"context"
	"unicode/utf8"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/domain/repository"
)

// TableUseCase manages the table registry. Occupancy is owned by the order
// lifecycle; the only client-driven state changes go through Update, which
// is role-differentiated.
type TableUseCase struct {
	tables repository.TableRepository
}

// NewTableUseCase constructs TableUseCase.
func NewTableUseCase(tables repository.TableRepository) *TableUseCase {
	return &TableUseCase{tables: tables}
}

func validTableAttributes(number, capacity int, location string) bool {
	if number < model.MinTableNumber || number > model.MaxTableNumber {
		return false
	}
	if capacity < model.MinTableCapacity || capacity > model.MaxTableCapacity {
		return false
	}
	return utf8.RuneCountInString(location) <= model.MaxLocationLength
}

// Create registers a new table in Free state.
func (u *TableUseCase) Create(ctx context.Context, actor model.Actor, number, capacity int, location string) (*model.Table, error) {
	if !actor.Role.Can(model.OpCreateTable) {
		return nil, domainErrors.ErrForbidden
	}
	if !validTableAttributes(number, capacity, location) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.tables.Create(ctx, number, capacity, location)
}

// Get returns a table by id.
func (u *TableUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*model.Table, error) {
	if !actor.Role.Can(model.OpViewTables) {
		return nil, domainErrors.ErrForbidden
	}
	return u.tables.GetByID(ctx, id)
}

// List returns all tables ordered by number.
func (u *TableUseCase) List(ctx context.Context, actor model.Actor) ([]model.Table, error) {
	if !actor.Role.Can(model.OpViewTables) {
		return nil, domainErrors.ErrForbidden
	}
	return u.tables.List(ctx)
}

// Update applies a table patch. A Server may change only the state and must
// actually change it; an Administrator may replace every attribute.
func (u *TableUseCase) Update(ctx context.Context, actor model.Actor, id int64, patch model.TablePatch) (*model.Table, error) {
	if !actor.Role.Can(model.OpUpdateTable) {
		return nil, domainErrors.ErrForbidden
	}
	if !patch.State.Valid() {
		return nil, domainErrors.ErrInvalidInput
	}

	if actor.Role == model.RoleAdministrator {
		if !validTableAttributes(patch.Number, patch.Capacity, patch.Location) {
			return nil, domainErrors.ErrInvalidInput
		}
		return u.tables.Update(ctx, id, patch)
	}

	// Server path: manual state override only, and a no-op state change is
	// rejected so the audit trail reflects real transitions.
	current, err := u.tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.State == patch.State {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.tables.SetState(ctx, id, patch.State)
}

// Delete removes a table that is Free and has no non-terminal orders.
func (u *TableUseCase) Delete(ctx context.Context, actor model.Actor, id int64) error {
	if !actor.Role.Can(model.OpDeleteTable) {
		return domainErrors.ErrForbidden
	}
	return u.tables.Delete(ctx, id)
}

// Stats aggregates table counts by occupancy state.
func (u *TableUseCase) Stats(ctx context.Context, actor model.Actor) (*model.TableStats, error) {
	if !actor.Role.Can(model.OpViewStats) {
		return nil, domainErrors.ErrForbidden
	}
	return u.tables.Stats(ctx)
}
