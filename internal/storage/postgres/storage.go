package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; tests swap in
// a mock implementation.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type tableRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Tables() repository.TableRepository {
	return &tableRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS tables (
            id SERIAL PRIMARY KEY,
            number INT UNIQUE NOT NULL,
            capacity INT NOT NULL,
            location TEXT NOT NULL DEFAULT '',
            state TEXT NOT NULL DEFAULT 'Free',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            table_id BIGINT NOT NULL REFERENCES tables(id),
            user_id BIGINT NOT NULL REFERENCES users(id),
            state TEXT NOT NULL,
            total DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES products(id),
            product_name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            note TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_table ON orders(table_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, active, created_at`
	u := model.User{Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash, string(role)).
		Scan(&u.ID, &u.Active, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, active, created_at FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, active, created_at FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, active, created_at FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- TableRepository implementation ---

func (r *tableRepository) Create(ctx context.Context, number, capacity int, location string) (*model.Table, error) {
	const query = `INSERT INTO tables (number, capacity, location, state)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	t := model.Table{Number: number, Capacity: capacity, Location: location, State: model.TableStateFree}
	err := r.storage.pool.QueryRow(ctx, query, number, capacity, location, string(model.TableStateFree)).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrDuplicateTable
		}
		return nil, err
	}
	return &t, nil
}

func scanTable(row pgx.Row) (*model.Table, error) {
	var t model.Table
	var state string
	err := row.Scan(&t.ID, &t.Number, &t.Capacity, &t.Location, &state, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	t.State = model.TableState(state)
	return &t, nil
}

func (r *tableRepository) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	const query = `SELECT id, number, capacity, location, state, created_at FROM tables WHERE id=$1`
	return scanTable(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *tableRepository) List(ctx context.Context) ([]model.Table, error) {
	const query = `SELECT id, number, capacity, location, state, created_at FROM tables ORDER BY number`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Table
	for rows.Next() {
		var t model.Table
		var state string
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Location, &state, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.State = model.TableState(state)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *tableRepository) Update(ctx context.Context, id int64, patch model.TablePatch) (*model.Table, error) {
	const query = `UPDATE tables SET number=$1, capacity=$2, location=$3, state=$4
                   WHERE id=$5
                   RETURNING id, number, capacity, location, state, created_at`
	t, err := scanTable(r.storage.pool.QueryRow(ctx, query,
		patch.Number, patch.Capacity, patch.Location, string(patch.State), id))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrDuplicateTable
		}
		return nil, err
	}
	return t, nil
}

func (r *tableRepository) SetState(ctx context.Context, id int64, state model.TableState) (*model.Table, error) {
	const query = `UPDATE tables SET state=$1 WHERE id=$2
                   RETURNING id, number, capacity, location, state, created_at`
	return scanTable(r.storage.pool.QueryRow(ctx, query, string(state), id))
}

func (r *tableRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT state FROM tables WHERE id=$1 FOR UPDATE`
		var state string
		if err := tx.QueryRow(ctx, lockQuery, id).Scan(&state); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if model.TableState(state) != model.TableStateFree {
			return domainErrors.ErrConflict
		}

		const activeQuery = `SELECT EXISTS(
                                 SELECT 1 FROM orders
                                 WHERE table_id=$1 AND state NOT IN ($2, $3))`
		var hasActive bool
		err := tx.QueryRow(ctx, activeQuery, id,
			string(model.OrderStateDelivered), string(model.OrderStateCancelled)).Scan(&hasActive)
		if err != nil {
			return err
		}
		if hasActive {
			return domainErrors.ErrConflict
		}

		_, err = tx.Exec(ctx, `DELETE FROM tables WHERE id=$1`, id)
		return err
	})
}

func (r *tableRepository) Stats(ctx context.Context) (*model.TableStats, error) {
	const query = `SELECT COUNT(*),
                          COUNT(*) FILTER (WHERE state=$1),
                          COUNT(*) FILTER (WHERE state=$2),
                          COUNT(*) FILTER (WHERE state=$3)
                   FROM tables`
	var stats model.TableStats
	err := r.storage.pool.QueryRow(ctx, query,
		string(model.TableStateFree), string(model.TableStateOccupied), string(model.TableStateReserved)).
		Scan(&stats.Total, &stats.Free, &stats.Occupied, &stats.Reserved)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, tableID, userID int64, lines []model.OrderLineInput) (*model.Order, *model.Table, error) {
	var order *model.Order
	var table *model.Table

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// The table row lock serializes occupancy changes with concurrent
		// terminal transitions on the same table.
		const tableQuery = `SELECT id, number, capacity, location, state, created_at
                            FROM tables WHERE id=$1 FOR UPDATE`
		t, err := scanTable(tx.QueryRow(ctx, tableQuery, tableID))
		if err != nil {
			return err
		}

		const userQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`
		var userExists bool
		if err := tx.QueryRow(ctx, userQuery, userID).Scan(&userExists); err != nil {
			return err
		}
		if !userExists {
			return domainErrors.ErrNotFound
		}

		built := make([]model.OrderLine, 0, len(lines))
		var total float64
		for _, in := range lines {
			const productQuery = `SELECT name, price, available FROM products WHERE id=$1`
			var name string
			var price float64
			var available bool
			err := tx.QueryRow(ctx, productQuery, in.ProductID).Scan(&name, &price, &available)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			if !available {
				return domainErrors.ErrInvalidInput
			}
			line := model.OrderLine{
				ProductID:   in.ProductID,
				ProductName: name,
				Quantity:    in.Quantity,
				UnitPrice:   price,
				Note:        in.Note,
			}
			total += line.Subtotal()
			built = append(built, line)
		}

		const insertOrder = `INSERT INTO orders (table_id, user_id, state, total)
                             VALUES ($1, $2, $3, $4)
                             RETURNING id, created_at, updated_at`
		o := model.Order{TableID: tableID, UserID: userID, State: model.OrderStatePlaced, Total: total}
		err = tx.QueryRow(ctx, insertOrder, tableID, userID, string(model.OrderStatePlaced), total).
			Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}

		for i := range built {
			built[i].OrderID = o.ID
			const insertLine = `INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price, note)
                                VALUES ($1, $2, $3, $4, $5, $6)
                                RETURNING id`
			err := tx.QueryRow(ctx, insertLine, o.ID, built[i].ProductID, built[i].ProductName,
				built[i].Quantity, built[i].UnitPrice, built[i].Note).Scan(&built[i].ID)
			if err != nil {
				return err
			}
		}
		o.Lines = built

		// Occupying an already-Occupied table is a no-op.
		if t.State != model.TableStateOccupied {
			const occupy = `UPDATE tables SET state=$1 WHERE id=$2`
			if _, err := tx.Exec(ctx, occupy, string(model.TableStateOccupied), tableID); err != nil {
				return err
			}
			t.State = model.TableStateOccupied
		}

		order = &o
		table = t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, table, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var state string
	err := row.Scan(&o.ID, &o.TableID, &o.UserID, &state, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.State = model.OrderState(state)
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, table_id, user_id, state, total, created_at, updated_at
                   FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	const linesQuery = `SELECT id, order_id, product_id, product_name, quantity, unit_price, note
                        FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.Note); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := `SELECT id, table_id, user_id, state, total, created_at, updated_at FROM orders`
	var conditions []string
	var args []any
	if filter.State != "" {
		args = append(args, string(filter.State))
		conditions = append(conditions, fmt.Sprintf("state=$%d", len(args)))
	}
	if filter.TableID != 0 {
		args = append(args, filter.TableID)
		conditions = append(conditions, fmt.Sprintf("table_id=$%d", len(args)))
	}
	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id=$%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		var state string
		if err := rows.Scan(&o.ID, &o.TableID, &o.UserID, &state, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.State = model.OrderState(state)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) SetState(ctx context.Context, id int64, next model.OrderState) (*model.Order, *model.Table, error) {
	var order *model.Order
	var table *model.Table

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const orderQuery = `SELECT id, table_id, user_id, state, total, created_at, updated_at
                            FROM orders WHERE id=$1 FOR UPDATE`
		o, err := scanOrder(tx.QueryRow(ctx, orderQuery, id))
		if err != nil {
			return err
		}

		// Lock the table row before deciding occupancy so two terminal
		// transitions on the same table serialize their read-then-write.
		const tableQuery = `SELECT id, number, capacity, location, state, created_at
                            FROM tables WHERE id=$1 FOR UPDATE`
		t, err := scanTable(tx.QueryRow(ctx, tableQuery, o.TableID))
		if err != nil {
			return err
		}

		switch {
		case o.State == model.OrderStateDelivered && next == model.OrderStateCancelled:
			return domainErrors.ErrConflict
		case !o.State.CanTransitionTo(next):
			return domainErrors.ErrInvalidTransition
		}

		const updateOrder = `UPDATE orders SET state=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`
		if err := tx.QueryRow(ctx, updateOrder, string(next), id).Scan(&o.UpdatedAt); err != nil {
			return err
		}
		o.State = next

		if next.Terminal() {
			const otherActive = `SELECT EXISTS(
                                     SELECT 1 FROM orders
                                     WHERE table_id=$1 AND id<>$2 AND state NOT IN ($3, $4))`
			var hasOther bool
			err := tx.QueryRow(ctx, otherActive, o.TableID, o.ID,
				string(model.OrderStateDelivered), string(model.OrderStateCancelled)).Scan(&hasOther)
			if err != nil {
				return err
			}
			if !hasOther && t.State == model.TableStateOccupied {
				const free = `UPDATE tables SET state=$1 WHERE id=$2`
				if _, err := tx.Exec(ctx, free, string(model.TableStateFree), t.ID); err != nil {
					return err
				}
				t.State = model.TableStateFree
			}
		}

		order = o
		table = t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, table, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT state FROM orders WHERE id=$1 FOR UPDATE`
		var state string
		if err := tx.QueryRow(ctx, lockQuery, id).Scan(&state); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		// Only terminal orders may be removed: a live order still holds its
		// table occupied, so it has to be delivered or cancelled first.
		if !model.OrderState(state).Terminal() {
			return domainErrors.ErrConflict
		}
		// Lines go with the order (ON DELETE CASCADE).
		_, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
		return err
	})
}

func (r *orderRepository) Stats(ctx context.Context) (*model.OrderStats, error) {
	const query = `SELECT COUNT(*),
                          COUNT(*) FILTER (WHERE state=$1),
                          COUNT(*) FILTER (WHERE state=$2),
                          COUNT(*) FILTER (WHERE state=$3),
                          COUNT(*) FILTER (WHERE state=$4),
                          COUNT(*) FILTER (WHERE state=$5),
                          COUNT(*) FILTER (WHERE created_at >= date_trunc('day', NOW()))
                   FROM orders`
	var stats model.OrderStats
	err := r.storage.pool.QueryRow(ctx, query,
		string(model.OrderStatePlaced), string(model.OrderStatePreparing), string(model.OrderStateReady),
		string(model.OrderStateDelivered), string(model.OrderStateCancelled)).
		Scan(&stats.Total, &stats.Placed, &stats.Preparing, &stats.Ready,
			&stats.Delivered, &stats.Cancelled, &stats.Today)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, category, price, available)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	created := p
	err := r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Available).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Available, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, description, category, price, available, created_at FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) collect(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Available, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, description, category, price, available, created_at
                   FROM products ORDER BY category, name`
	return r.collect(ctx, query)
}

func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	const query = `SELECT id, name, description, category, price, available, created_at
                   FROM products WHERE category=$1 ORDER BY name`
	return r.collect(ctx, query, category)
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, description, category, price, available, created_at
                   FROM products WHERE available ORDER BY category, name`
	return r.collect(ctx, query)
}

func (r *productRepository) Update(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	const query = `UPDATE products SET name=$1, description=$2, category=$3, price=$4, available=$5
                   WHERE id=$6
                   RETURNING id, name, description, category, price, available, created_at`
	return scanProduct(r.storage.pool.QueryRow(ctx, query,
		p.Name, p.Description, p.Category, p.Price, p.Available, id))
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const referenced = `SELECT EXISTS(SELECT 1 FROM order_lines WHERE product_id=$1)`
		var inUse bool
		if err := tx.QueryRow(ctx, referenced, id).Scan(&inUse); err != nil {
			return err
		}
		if inUse {
			return domainErrors.ErrConflict
		}

		tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
