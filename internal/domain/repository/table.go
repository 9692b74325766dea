package repository

import (
	"context"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

// TableRepository describes persistence operations with dining tables.
type TableRepository interface {
	Create(ctx context.Context, number, capacity int, location string) (*model.Table, error)
	GetByID(ctx context.Context, id int64) (*model.Table, error)
	List(ctx context.Context) ([]model.Table, error)
	// Update replaces every mutable attribute. Number collisions with a
	// different table fail with ErrDuplicateTable.
	Update(ctx context.Context, id int64, patch model.TablePatch) (*model.Table, error)
	// SetState writes occupancy only; reserved for coordinator paths.
	SetState(ctx context.Context, id int64, state model.TableState) (*model.Table, error)
	// Delete removes a table. It fails with ErrConflict while the table is
	// Occupied or Reserved, or while any non-terminal order references it.
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*model.TableStats, error)
}
