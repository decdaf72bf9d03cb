package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
	"github.com/Aldonvacriates/E-Commerce-API/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts lists all products --> GET /products
func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.productService.GetProducts(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, products)
}

// GetProductByID retrieves a product by ID --> GET /products/:id
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	product, err := h.productService.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, product)
}

// CreateProduct creates a new product --> POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	product := entity.Product{}
	if err := c.Bind(&product); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	createdProduct, err := h.productService.CreateProduct(c.Request().Context(), &product)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(201, createdProduct)
}

// UpdateProduct applies a partial update to a product --> PUT /products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	update := service.ProductUpdate{}
	if err := c.Bind(&update); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	updatedProduct, err := h.productService.UpdateProduct(c.Request().Context(), id, update)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, updatedProduct)
}

// DeleteProduct deletes a product --> DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.productService.DeleteProduct(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, map[string]string{"message": fmt.Sprintf("product %d deleted", id)})
}
