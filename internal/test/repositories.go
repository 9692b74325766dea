package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers an account unless the email is taken or the stub has an
// explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches an account by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches an account by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored account.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	return users, nil
}

// TableRepositoryStub stores dining tables in-memory for tests.
type TableRepositoryStub struct {
	Tables map[int64]*model.Table
	Next   int64
	Err    error

	DeleteFn func(context.Context, int64) error
}

// NewTableRepositoryStub constructs stub repository with initialized map.
func NewTableRepositoryStub() *TableRepositoryStub {
	return &TableRepositoryStub{
		Tables: make(map[int64]*model.Table),
		Next:   1,
	}
}

// Seed inserts a table directly and returns it.
func (s *TableRepositoryStub) Seed(number, capacity int, state model.TableState) *model.Table {
	if s.Tables == nil {
		s.Tables = make(map[int64]*model.Table)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	table := &model.Table{
		ID:        s.Next,
		Number:    number,
		Capacity:  capacity,
		State:     state,
		CreatedAt: time.Now(),
	}
	s.Next++
	s.Tables[table.ID] = table
	return table
}

// Create persists a Free table unless the number is taken.
func (s *TableRepositoryStub) Create(ctx context.Context, number, capacity int, location string) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, t := range s.Tables {
		if t.Number == number {
			return nil, domainErrors.ErrDuplicateTable
		}
	}
	table := s.Seed(number, capacity, model.TableStateFree)
	table.Location = location
	return table, nil
}

// GetByID fetches a table by identifier or returns not found.
func (s *TableRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if table, ok := s.Tables[id]; ok {
		copied := *table
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored table.
func (s *TableRepositoryStub) List(ctx context.Context) ([]model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	tables := make([]model.Table, 0, len(s.Tables))
	for _, t := range s.Tables {
		tables = append(tables, *t)
	}
	return tables, nil
}

// Update replaces mutable attributes, guarding number collisions.
func (s *TableRepositoryStub) Update(ctx context.Context, id int64, patch model.TablePatch) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	table, ok := s.Tables[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	for _, t := range s.Tables {
		if t.ID != id && t.Number == patch.Number {
			return nil, domainErrors.ErrDuplicateTable
		}
	}
	table.Number = patch.Number
	table.Capacity = patch.Capacity
	table.Location = patch.Location
	table.State = patch.State
	copied := *table
	return &copied, nil
}

// SetState writes occupancy only.
func (s *TableRepositoryStub) SetState(ctx context.Context, id int64, state model.TableState) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	table, ok := s.Tables[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	table.State = state
	copied := *table
	return &copied, nil
}

// Delete removes a Free table or fails with conflict.
func (s *TableRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if s.Err != nil {
		return s.Err
	}
	table, ok := s.Tables[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if table.State != model.TableStateFree {
		return domainErrors.ErrConflict
	}
	delete(s.Tables, id)
	return nil
}

// Stats counts stored tables by occupancy state.
func (s *TableRepositoryStub) Stats(ctx context.Context) (*model.TableStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stats := &model.TableStats{}
	for _, t := range s.Tables {
		stats.Total++
		switch t.State {
		case model.TableStateFree:
			stats.Free++
		case model.TableStateOccupied:
			stats.Occupied++
		case model.TableStateReserved:
			stats.Reserved++
		}
	}
	return stats, nil
}

// ProductRepositoryStub stores menu items in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	InUse    map[int64]bool
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{
		Products: make(map[int64]*model.Product),
		InUse:    make(map[int64]bool),
		Next:     1,
	}
}

// Seed inserts a product directly and returns it.
func (s *ProductRepositoryStub) Seed(name, category string, price float64, available bool) *model.Product {
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	product := &model.Product{
		ID:        s.Next,
		Name:      name,
		Category:  category,
		Price:     price,
		Available: available,
		CreatedAt: time.Now(),
	}
	s.Next++
	s.Products[product.ID] = product
	return product
}

// Create persists a new menu item.
func (s *ProductRepositoryStub) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product := s.Seed(p.Name, p.Category, p.Price, p.Available)
	product.Description = p.Description
	copied := *product
	return &copied, nil
}

// GetByID fetches a menu item or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored menu item.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, *p)
	}
	return products, nil
}

// ListByCategory filters stored items by category.
func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0)
	for _, p := range s.Products {
		if p.Category == category {
			products = append(products, *p)
		}
	}
	return products, nil
}

// ListAvailable filters stored items by availability.
func (s *ProductRepositoryStub) ListAvailable(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0)
	for _, p := range s.Products {
		if p.Available {
			products = append(products, *p)
		}
	}
	return products, nil
}

// Update replaces mutable attributes of a menu item.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	product.Name = p.Name
	product.Description = p.Description
	product.Category = p.Category
	product.Price = p.Price
	product.Available = p.Available
	copied := *product
	return &copied, nil
}

// Delete removes a menu item unless order lines reference it.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	if s.InUse[id] {
		return domainErrors.ErrConflict
	}
	delete(s.Products, id)
	return nil
}

// OrderRepositoryStub keeps orders in-memory and mirrors the occupancy
// coupling of the real storage: creating an order occupies its table,
// entering a terminal state frees the table when no other open order
// remains on it.
type OrderRepositoryStub struct {
	Tables   *TableRepositoryStub
	Users    *UserRepositoryStub
	Products *ProductRepositoryStub
	Orders   map[int64]*model.Order
	Next     int64
	Err      error

	CreateFn   func(context.Context, int64, int64, []model.OrderLineInput) (*model.Order, *model.Table, error)
	SetStateFn func(context.Context, int64, model.OrderState) (*model.Order, *model.Table, error)
}

// NewOrderRepositoryStub wires the order stub to its companion stubs.
func NewOrderRepositoryStub(tables *TableRepositoryStub, users *UserRepositoryStub, products *ProductRepositoryStub) *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Tables:   tables,
		Users:    users,
		Products: products,
		Orders:   make(map[int64]*model.Order),
		Next:     1,
	}
}

// Create builds a Placed order with price snapshots and occupies the table.
func (s *OrderRepositoryStub) Create(ctx context.Context, tableID, userID int64, lines []model.OrderLineInput) (*model.Order, *model.Table, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, tableID, userID, lines)
	}
	if s.Err != nil {
		return nil, nil, s.Err
	}
	table, ok := s.Tables.Tables[tableID]
	if !ok {
		return nil, nil, domainErrors.ErrNotFound
	}
	if _, ok := s.Users.ByID[userID]; !ok {
		return nil, nil, domainErrors.ErrNotFound
	}

	order := &model.Order{
		ID:        s.Next,
		TableID:   tableID,
		UserID:    userID,
		State:     model.OrderStatePlaced,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, input := range lines {
		product, ok := s.Products.Products[input.ProductID]
		if !ok {
			return nil, nil, domainErrors.ErrNotFound
		}
		if !product.Available {
			return nil, nil, domainErrors.ErrInvalidInput
		}
		line := model.OrderLine{
			ID:          int64(len(order.Lines) + 1),
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    input.Quantity,
			UnitPrice:   product.Price,
			Note:        input.Note,
		}
		order.Lines = append(order.Lines, line)
		order.Total += line.Subtotal()
	}
	s.Next++
	s.Orders[order.ID] = order

	if table.State != model.TableStateOccupied {
		table.State = model.TableStateOccupied
	}

	orderCopy := *order
	tableCopy := *table
	return &orderCopy, &tableCopy, nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List filters stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	orders := make([]model.Order, 0)
	for _, o := range s.Orders {
		if filter.State != "" && o.State != filter.State {
			continue
		}
		if filter.TableID != 0 && o.TableID != filter.TableID {
			continue
		}
		if filter.UserID != 0 && o.UserID != filter.UserID {
			continue
		}
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

// SetState applies a lifecycle transition and recomputes table occupancy.
func (s *OrderRepositoryStub) SetState(ctx context.Context, id int64, next model.OrderState) (*model.Order, *model.Table, error) {
	if s.SetStateFn != nil {
		return s.SetStateFn(ctx, id, next)
	}
	if s.Err != nil {
		return nil, nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, nil, domainErrors.ErrNotFound
	}
	if order.State == model.OrderStateDelivered && next == model.OrderStateCancelled {
		return nil, nil, domainErrors.ErrConflict
	}
	if !order.State.CanTransitionTo(next) {
		return nil, nil, domainErrors.ErrInvalidTransition
	}
	order.State = next
	order.UpdatedAt = time.Now()

	table := s.Tables.Tables[order.TableID]
	if next.Terminal() && table != nil {
		hasOther := false
		for _, o := range s.Orders {
			if o.ID != order.ID && o.TableID == order.TableID && !o.State.Terminal() {
				hasOther = true
				break
			}
		}
		if !hasOther && table.State == model.TableStateOccupied {
			table.State = model.TableStateFree
		}
	}

	orderCopy := *order
	if table == nil {
		return &orderCopy, nil, nil
	}
	tableCopy := *table
	return &orderCopy, &tableCopy, nil
}

// Delete removes the order with its lines. Only terminal orders may go.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if !order.State.Terminal() {
		return domainErrors.ErrConflict
	}
	delete(s.Orders, id)
	return nil
}

// Stats counts stored orders by state.
func (s *OrderRepositoryStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stats := &model.OrderStats{}
	today := time.Now().Truncate(24 * time.Hour)
	for _, o := range s.Orders {
		stats.Total++
		switch o.State {
		case model.OrderStatePlaced:
			stats.Placed++
		case model.OrderStatePreparing:
			stats.Preparing++
		case model.OrderStateReady:
			stats.Ready++
		case model.OrderStateDelivered:
			stats.Delivered++
		case model.OrderStateCancelled:
			stats.Cancelled++
		}
		if !o.CreatedAt.Before(today) {
			stats.Today++
		}
	}
	return stats, nil
}
