package repository

import (
	"context"
	"database/sql"

	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	orderQuery := `SELECT id, user_id, order_date FROM orders WHERE id = ?`
	associationQuery := `SELECT product_id FROM order_products WHERE order_id = ? ORDER BY product_id`

	order := &entity.Order{}
	err := r.db.QueryRowContext(ctx, orderQuery, id).Scan(&order.ID, &order.UserID, &order.OrderDate)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, associationQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.ProductIDs = []int{}
	for rows.Next() {
		var productID int
		if err := rows.Scan(&productID); err != nil {
			return nil, err
		}
		order.ProductIDs = append(order.ProductIDs, productID)
	}

	return order, rows.Err()
}

func (r *OrderRepository) GetOrdersByUser(ctx context.Context, userID int) ([]entity.Order, error) {
	query := `SELECT id, user_id, order_date FROM orders WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.OrderDate); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		productIDs, err := r.getProductIDs(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].ProductIDs = productIDs
	}

	return orders, nil
}

// CreateOrder inserts the order row plus one association row per product id,
// as one transaction. Callers pass product ids already de-duplicated.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	orderQuery := `INSERT INTO orders (user_id, order_date) VALUES (?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.UserID, order.OrderDate)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(order.ProductIDs) > 0 {
		// Batch insert the association rows
		associationQuery := `INSERT INTO order_products (order_id, product_id) VALUES `

		var values []interface{}
		for _, productID := range order.ProductIDs {
			associationQuery += "(?, ?),"
			values = append(values, orderID, productID)
		}
		associationQuery = associationQuery[:len(associationQuery)-1]

		if _, err := tx.ExecContext(ctx, associationQuery, values...); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = int(orderID)
	return order, nil
}

func (r *OrderRepository) AttachProduct(ctx context.Context, orderID, productID int) error {
	query := `INSERT INTO order_products (order_id, product_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, orderID, productID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}

	return nil
}

// DetachProduct removes an association row. It returns sql.ErrNoRows when no
// association existed.
func (r *OrderRepository) DetachProduct(ctx context.Context, orderID, productID int) error {
	query := `DELETE FROM order_products WHERE order_id = ? AND product_id = ?`
	res, err := r.db.ExecContext(ctx, query, orderID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *OrderRepository) getProductIDs(ctx context.Context, orderID int) ([]int, error) {
	query := `SELECT product_id FROM order_products WHERE order_id = ? ORDER BY product_id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	productIDs := []int{}
	for rows.Next() {
		var productID int
		if err := rows.Scan(&productID); err != nil {
			return nil, err
		}
		productIDs = append(productIDs, productID)
	}

	return productIDs, rows.Err()
}
