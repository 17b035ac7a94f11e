package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/merolaashraf15-source/MED/internal/app/entity"
	err_storage "github.com/merolaashraf15-source/MED/internal/app/storage/api/errors"
	"github.com/merolaashraf15-source/MED/internal/app/storage/api/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	connTimeout = 5 * time.Second

	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 30 * time.Minute
)

const orderColumns = `id, customer_name, phone, medicine, status, created_at`

type Storage struct {
	db *sql.DB
}

var _ model.Storage = (*Storage)(nil)

func NewStorage(dbConnect string) (*Storage, error) {
	db, err := sql.Open("pgx", dbConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error while postgresql ping: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		db: db,
	}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error while setting goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("error while applying migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	return s.db.PingContext(pingCtx)
}

func (s *Storage) CreateOrder(ctx context.Context, create entity.CreateOrder) (entity.Order, error) {
	order := entity.Order{
		ID:           uuid.New().String(),
		CustomerName: create.CustomerName,
		Phone:        create.Phone,
		Medicine:     create.Medicine,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.ID, order.CustomerName, order.Phone, order.Medicine, string(order.Status), order.CreatedAt)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while inserting order: %w", err)
	}

	return order, nil
}

func (s *Storage) GetOrder(ctx context.Context, id string) (entity.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}
		return entity.Order{}, fmt.Errorf("error while selecting order: %w", err)
	}

	return order, nil
}

func (s *Storage) ListOrders(ctx context.Context, query entity.OrderQuery) (entity.OrderPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	// POSITION keeps plain substring semantics: the search term carries
	// no SQL wildcards. The phone match stays case-sensitive.
	where := ``
	args := []any{}
	search := strings.TrimSpace(query.Search)
	if search != "" {
		where = `
		WHERE POSITION($1 IN LOWER(customer_name)) > 0
			OR POSITION($1 IN LOWER(medicine)) > 0
			OR POSITION($2 IN phone) > 0`
		args = append(args, strings.ToLower(search), search)
	}

	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total)
	if err != nil {
		return entity.OrderPage{}, fmt.Errorf("error while counting orders: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT `+orderColumns+`
		FROM orders
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return entity.OrderPage{}, fmt.Errorf("error while selecting orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0, limit)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return entity.OrderPage{}, fmt.Errorf("error while scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return entity.OrderPage{}, fmt.Errorf("error while iterating order rows: %w", err)
	}

	return entity.OrderPage{
		Orders: orders,
		Total:  total,
	}, nil
}

func (s *Storage) UpdateOrder(ctx context.Context, id string, update entity.UpdateOrder) (entity.Order, error) {
	assignments := make([]string, 0, 4)
	args := []any{}

	appendAssignment := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.CustomerName != nil {
		appendAssignment("customer_name", *update.CustomerName)
	}
	if update.Phone != nil {
		appendAssignment("phone", *update.Phone)
	}
	if update.Medicine != nil {
		appendAssignment("medicine", *update.Medicine)
	}
	if update.Status != nil {
		appendAssignment("status", string(*update.Status))
	}

	if len(assignments) == 0 {
		return s.GetOrder(ctx, id)
	}

	args = append(args, id)
	updateQuery := fmt.Sprintf(`
		UPDATE orders
		SET %s
		WHERE id = $%d
		RETURNING `+orderColumns+`
	`, strings.Join(assignments, ", "), len(args))

	order, err := scanOrder(s.db.QueryRowContext(ctx, updateQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}
		return entity.Order{}, fmt.Errorf("error while updating order: %w", err)
	}

	return order, nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error while deleting order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error while reading delete result: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var order entity.Order
	var status string

	err := row.Scan(&order.ID, &order.CustomerName, &order.Phone, &order.Medicine, &status, &order.CreatedAt)
	if err != nil {
		return entity.Order{}, err
	}
	order.Status = entity.OrderStatus(status)

	return order, nil
}
