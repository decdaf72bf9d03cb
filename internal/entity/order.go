package entity

import "time"

type Order struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	OrderDate  time.Time `json:"order_date"`
	ProductIDs []int     `json:"product_ids"`
}

/*
MySQL schema:

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	order_date DATETIME NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

// composite primary key prevents duplicate product rows per order
CREATE TABLE order_products (
	order_id INT NOT NULL,
	product_id INT NOT NULL,
	PRIMARY KEY (order_id, product_id),
	FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
	FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
);
*/
