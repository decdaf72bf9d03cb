package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate is returned when a write violates a unique constraint
// (duplicate email, duplicate order/product association).
var ErrDuplicate = errors.New("duplicate key")

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
