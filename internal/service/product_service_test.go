package service

import (
	"context"
	"testing"

	"github.com/Aldonvacriates/E-Commerce-API/internal/apperror"
	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
)

func TestCreateProduct(t *testing.T) {
	store := newFakeStore()
	svc := NewProductService(store)

	created, err := svc.CreateProduct(context.Background(), &entity.Product{Name: "Widget", Price: 19.99})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	got, err := svc.GetProductByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("failed to get product back: %v", err)
	}
	if got.Name != "Widget" || got.Price != 19.99 {
		t.Errorf("round-trip mismatch: got %q/%v", got.Name, got.Price)
	}
}

func TestCreateProductNegativePrice(t *testing.T) {
	store := newFakeStore()
	svc := NewProductService(store)

	_, err := svc.CreateProduct(context.Background(), &entity.Product{Name: "Widget", Price: -1})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(store.products) != 0 {
		t.Errorf("expected no product persisted, got %d", len(store.products))
	}
}

func TestCreateProductZeroPrice(t *testing.T) {
	svc := NewProductService(newFakeStore())

	if _, err := svc.CreateProduct(context.Background(), &entity.Product{Name: "Freebie", Price: 0}); err != nil {
		t.Errorf("expected zero price to be allowed, got %v", err)
	}
}

func TestUpdateProduct(t *testing.T) {
	store := newFakeStore()
	svc := NewProductService(store)

	created, err := svc.CreateProduct(context.Background(), &entity.Product{Name: "Widget", Price: 19.99})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	price := 24.99
	updated, err := svc.UpdateProduct(context.Background(), created.ID, ProductUpdate{Price: &price})
	if err != nil {
		t.Fatalf("failed to update product: %v", err)
	}
	if updated.Price != 24.99 {
		t.Errorf("expected price 24.99, got %v", updated.Price)
	}
	if updated.Name != "Widget" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}
}

func TestUpdateProductNegativePrice(t *testing.T) {
	store := newFakeStore()
	svc := NewProductService(store)

	created, err := svc.CreateProduct(context.Background(), &entity.Product{Name: "Widget", Price: 19.99})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	price := -5.0
	_, err = svc.UpdateProduct(context.Background(), created.ID, ProductUpdate{Price: &price})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeStore())

	price := 1.0
	_, err := svc.UpdateProduct(context.Background(), 404, ProductUpdate{Price: &price})
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestDeleteProductRemovesAssociations(t *testing.T) {
	store := newFakeStore()
	productSvc := NewProductService(store)
	orderSvc := NewOrderService(store, store, store)

	user, err := store.CreateUser(context.Background(), &entity.User{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	product, err := productSvc.CreateProduct(context.Background(), &entity.Product{Name: "Widget", Price: 9.99})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	order, err := orderSvc.CreateOrder(context.Background(), OrderCreate{
		UserID:     user.ID,
		OrderDate:  "2025-09-23T10:30:00",
		ProductIDs: []int{product.ID},
	})
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}

	if err := productSvc.DeleteProduct(context.Background(), product.ID); err != nil {
		t.Fatalf("failed to delete product: %v", err)
	}

	products, err := orderSvc.GetOrderProducts(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("failed to list order products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected no products left in order, got %d", len(products))
	}
}
