package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aldonvacriates/E-Commerce-API/internal/apperror"
	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
)

// ProductRepository is the persistence surface the product service depends on.
type ProductRepository interface {
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id int) (*entity.Product, error)
	GetProductsByOrder(ctx context.Context, orderID int) ([]entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// ProductUpdate carries the fields of a partial product update; nil means
// "leave unchanged".
type ProductUpdate struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type ProductService struct {
	productRepo ProductRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}

	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("product %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		return nil, err
	}

	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product.Name == "" {
		return nil, apperror.Validationf("name is required")
	}
	if product.Price < 0 {
		return nil, apperror.Validationf("price must be a non-negative number")
	}

	createdProduct, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	return createdProduct, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, update ProductUpdate) (*entity.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundf("product %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, apperror.Validationf("price must be a non-negative number")
		}
		product.Price = *update.Price
	}

	updatedProduct, err := s.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating product %d", id)
		return nil, err
	}

	return updatedProduct, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.productRepo.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFoundf("product %d not found", id)
		}
		logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %d", id)
		return err
	}

	return nil
}
