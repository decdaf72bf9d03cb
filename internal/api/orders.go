package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Aldonvacriates/E-Commerce-API/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder creates a new order --> POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	in := service.OrderCreate{}
	if err := c.Bind(&in); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	createdOrder, err := h.orderService.CreateOrder(c.Request().Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(201, createdOrder)
}

// GetOrderByID retrieves an order with its product ids --> GET /orders/:id
func (h *OrderHandler) GetOrderByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	order, err := h.orderService.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, order)
}

// GetOrdersByUser lists a user's orders --> GET /orders/user/:user_id
func (h *OrderHandler) GetOrdersByUser(c echo.Context) error {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	orders, err := h.orderService.GetOrdersByUser(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, orders)
}

// GetOrderProducts lists the products in an order --> GET /orders/:id/products
func (h *OrderHandler) GetOrderProducts(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	products, err := h.orderService.GetOrderProducts(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, products)
}

// AttachProduct adds a product to an order --> PUT /orders/:id/add_product/:product_id
func (h *OrderHandler) AttachProduct(c echo.Context) error {
	orderID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid product ID"})
	}

	order, err := h.orderService.AttachProduct(c.Request().Context(), orderID, productID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, order)
}

// DetachProduct removes a product from an order --> DELETE /orders/:id/remove_product/:product_id
func (h *OrderHandler) DetachProduct(c echo.Context) error {
	orderID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid product ID"})
	}

	order, err := h.orderService.DetachProduct(c.Request().Context(), orderID, productID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, order)
}
