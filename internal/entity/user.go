package entity

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email"`
}

/*
MySQL schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(120) NOT NULL,
	address VARCHAR(255),
	email VARCHAR(255) NOT NULL UNIQUE
);
*/
