package api

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/Aldonvacriates/E-Commerce-API/migrations"
)

type BootstrapHandler struct {
	db *sql.DB
}

func NewBootstrapHandler(db *sql.DB) *BootstrapHandler {
	return &BootstrapHandler{db: db}
}

// InitDB creates all tables if absent --> POST /init-db. Repeated calls are
// no-ops.
func (h *BootstrapHandler) InitDB(c echo.Context) error {
	if err := migrations.All(h.db); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(201, map[string]string{"message": "tables created"})
}
