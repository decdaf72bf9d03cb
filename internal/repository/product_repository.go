package repository

import (
	"context"
	"database/sql"

	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

func (r *ProductRepository) GetProducts(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT id, name, price FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		var product entity.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product := &entity.Product{}
	query := `SELECT id, name, price FROM products WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductsByOrder returns the products currently associated with an order.
func (r *ProductRepository) GetProductsByOrder(ctx context.Context, orderID int) ([]entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.price
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = ?
		ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		var product entity.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, price) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Price)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	product.ID = int(id)
	return product, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `UPDATE products SET name = ?, price = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, product.Name, product.Price, product.ID)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product and its order associations as one
// transaction.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	associationQuery := `DELETE FROM order_products WHERE product_id = ?`
	if _, err := tx.ExecContext(ctx, associationQuery, id); err != nil {
		tx.Rollback()
		return err
	}

	productQuery := `DELETE FROM products WHERE id = ?`
	if _, err := tx.ExecContext(ctx, productQuery, id); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
