package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Aldonvacriates/E-Commerce-API/internal/apperror"
)

// errorJSON maps an error kind to its HTTP status and writes the JSON error
// body. Unknown kinds are 500.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case apperror.IsValidation(err):
		status = http.StatusBadRequest
	case apperror.IsNotFound(err):
		status = http.StatusNotFound
	case apperror.IsConflict(err):
		status = http.StatusConflict
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
