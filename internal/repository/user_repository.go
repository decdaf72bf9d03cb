package repository

import (
	"context"
	"database/sql"

	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	query := `SELECT id, name, COALESCE(address, ''), email FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Address, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, name, COALESCE(address, ''), email FROM users WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Address, &user.Email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, name, COALESCE(address, ''), email FROM users WHERE email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Name, &user.Address, &user.Email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (name, address, email) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Name, user.Address, user.Email)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `UPDATE users SET name = ?, address = ?, email = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, user.Name, user.Address, user.Email, user.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user together with their orders and any order/product
// association rows, as one transaction.
func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	associationQuery := `DELETE FROM order_products WHERE order_id IN (SELECT id FROM orders WHERE user_id = ?)`
	if _, err := tx.ExecContext(ctx, associationQuery, id); err != nil {
		tx.Rollback()
		return err
	}

	ordersQuery := `DELETE FROM orders WHERE user_id = ?`
	if _, err := tx.ExecContext(ctx, ordersQuery, id); err != nil {
		tx.Rollback()
		return err
	}

	userQuery := `DELETE FROM users WHERE id = ?`
	if _, err := tx.ExecContext(ctx, userQuery, id); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
