package migrations

import "database/sql"

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(120) NOT NULL,
			address VARCHAR(255),
			email VARCHAR(255) NOT NULL UNIQUE
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateProducts creates the products table if it does not exist.
func AutoMigrateProducts(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE NOT NULL
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateOrders creates the orders table if it does not exist.
func AutoMigrateOrders(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			order_date DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateOrderProducts creates the order/product association table if it
// does not exist. The composite primary key prevents duplicate associations.
func AutoMigrateOrderProducts(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS order_products (
			order_id INT NOT NULL,
			product_id INT NOT NULL,
			PRIMARY KEY (order_id, product_id),
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
		);
	`
	_, err := db.Exec(query)
	return err
}

// All runs every migration in dependency order. Repeated calls are no-ops.
func All(db *sql.DB) error {
	for _, migrate := range []func(*sql.DB) error{
		AutoMigrateUsers,
		AutoMigrateProducts,
		AutoMigrateOrders,
		AutoMigrateOrderProducts,
	} {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}
