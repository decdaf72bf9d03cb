package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
	"github.com/Aldonvacriates/E-Commerce-API/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers lists all users --> GET /users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, users)
}

// GetUserByID retrieves a user by ID --> GET /users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, user)
}

// CreateUser creates a new user --> POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	createdUser, err := h.userService.CreateUser(c.Request().Context(), &user)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(201, createdUser)
}

// UpdateUser applies a partial update to a user --> PUT /users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	update := service.UserUpdate{}
	if err := c.Bind(&update); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	updatedUser, err := h.userService.UpdateUser(c.Request().Context(), id, update)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, updatedUser)
}

// DeleteUser deletes a user and their orders --> DELETE /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, map[string]string{"message": fmt.Sprintf("user %d deleted", id)})
}
