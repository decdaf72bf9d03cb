package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Aldonvacriates/E-Commerce-API/internal/apperror"
	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
	"github.com/Aldonvacriates/E-Commerce-API/internal/repository"
)

// OrderRepository is the persistence surface the order service depends on.
type OrderRepository interface {
	GetOrderByID(ctx context.Context, id int) (*entity.Order, error)
	GetOrdersByUser(ctx context.Context, userID int) ([]entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	AttachProduct(ctx context.Context, orderID, productID int) error
	DetachProduct(ctx context.Context, orderID, productID int) error
}

// OrderCreate is the payload for creating an order.
type OrderCreate struct {
	UserID     int    `json:"user_id"`
	OrderDate  string `json:"order_date"`
	ProductIDs []int  `json:"product_ids"`
}

// OrderService is a service that provides order-related operations.
type OrderService struct {
	orderRepo   OrderRepository
	userRepo    UserRepository
	productRepo ProductRepository
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(orderRepo OrderRepository, userRepo UserRepository, productRepo ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// CreateOrder creates a new order with one association row per unique
// product id. Nothing persists when the user or any product is unknown.
func (s *OrderService) CreateOrder(ctx context.Context, in OrderCreate) (*entity.Order, error) {
	orderDate, err := parseOrderDate(in.OrderDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("user %d not found", in.UserID)
		}
		logger.Error().Err(err).Msgf("Error getting user by ID %d", in.UserID)
		return nil, err
	}

	productIDs := dedupIDs(in.ProductIDs)
	for _, productID := range productIDs {
		if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperror.NotFoundf("product %d not found", productID)
			}
			logger.Error().Err(err).Msgf("Error getting product by ID %d", productID)
			return nil, err
		}
	}

	order := &entity.Order{
		UserID:     in.UserID,
		OrderDate:  orderDate,
		ProductIDs: productIDs,
	}

	createdOrder, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	return createdOrder, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("order %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting order by ID %d", id)
		return nil, err
	}

	return order, nil
}

// GetOrdersByUser returns the user's orders; an unknown user is 404, a known
// user with no orders is an empty list.
func (s *OrderService) GetOrdersByUser(ctx context.Context, userID int) ([]entity.Order, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("user %d not found", userID)
		}
		logger.Error().Err(err).Msgf("Error getting user by ID %d", userID)
		return nil, err
	}

	orders, err := s.orderRepo.GetOrdersByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing orders for user %d", userID)
		return nil, err
	}

	return orders, nil
}

// GetOrderProducts returns the full product records associated with an order.
func (s *OrderService) GetOrderProducts(ctx context.Context, orderID int) ([]entity.Product, error) {
	if _, err := s.orderRepo.GetOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("order %d not found", orderID)
		}
		logger.Error().Err(err).Msgf("Error getting order by ID %d", orderID)
		return nil, err
	}

	products, err := s.productRepo.GetProductsByOrder(ctx, orderID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing products for order %d", orderID)
		return nil, err
	}

	return products, nil
}

// AttachProduct adds a product to an order; a second attach of the same
// product is a conflict.
func (s *OrderService) AttachProduct(ctx context.Context, orderID, productID int) (*entity.Order, error) {
	if err := s.checkOrderAndProduct(ctx, orderID, productID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.AttachProduct(ctx, orderID, productID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflictf("product %d already in order %d", productID, orderID)
		}
		logger.Error().Err(err).Msgf("Error attaching product %d to order %d", productID, orderID)
		return nil, err
	}

	return s.GetOrderByID(ctx, orderID)
}

// DetachProduct removes a product from an order; a missing association is
// not found.
func (s *OrderService) DetachProduct(ctx context.Context, orderID, productID int) (*entity.Order, error) {
	if err := s.checkOrderAndProduct(ctx, orderID, productID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.DetachProduct(ctx, orderID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("product %d not in order %d", productID, orderID)
		}
		logger.Error().Err(err).Msgf("Error detaching product %d from order %d", productID, orderID)
		return nil, err
	}

	return s.GetOrderByID(ctx, orderID)
}

func (s *OrderService) checkOrderAndProduct(ctx context.Context, orderID, productID int) error {
	if _, err := s.orderRepo.GetOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFoundf("order %d not found", orderID)
		}
		logger.Error().Err(err).Msgf("Error getting order by ID %d", orderID)
		return err
	}
	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFoundf("product %d not found", productID)
		}
		logger.Error().Err(err).Msgf("Error getting product by ID %d", productID)
		return err
	}
	return nil
}

func parseOrderDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperror.Validationf("order_date is required")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Validationf("order_date must be ISO 8601 (e.g. 2025-09-23T10:30:00)")
}

func dedupIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := []int{}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
