package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketflow/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// Create persists the order and its line items in one transaction. The order
// row only exists once every item row is written; there are no partial
// orders.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (total, first_name, last_name, email, address, city, state, zip_code, country,
                    card_number, expiry_date, cvv, name_on_card, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id, order_date`
	order := domain.Order{
		Items:           append([]domain.OrderItem(nil), in.Items...),
		Total:           in.Total,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		Status:          in.Status,
	}
	addr, pay := in.ShippingAddress, in.PaymentMethod
	if err := tx.QueryRow(ctx, insertOrder,
		in.Total,
		addr.FirstName, addr.LastName, addr.Email, addr.Address, addr.City, addr.State, addr.ZipCode, addr.Country,
		pay.CardNumber, pay.ExpiryDate, pay.CVV, pay.NameOnCard,
		in.Status,
	).Scan(&order.ID, &order.OrderDate); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	const insertItem = `INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`
	for _, item := range in.Items {
		if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &order, nil
}

const orderColumns = `
id, total, first_name, last_name, email, address, city, state, zip_code, country,
card_number, expiry_date, cvv, name_on_card, status, order_date`

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC, id DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.fetchItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	const q = `SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	addr, pay := &o.ShippingAddress, &o.PaymentMethod
	return row.Scan(
		&o.ID,
		&o.Total,
		&addr.FirstName, &addr.LastName, &addr.Email, &addr.Address, &addr.City, &addr.State, &addr.ZipCode, &addr.Country,
		&pay.CardNumber, &pay.ExpiryDate, &pay.CVV, &pay.NameOnCard,
		&o.Status,
		&o.OrderDate,
	)
}
