package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Aldonvacriates/E-Commerce-API/internal/entity"
	"github.com/Aldonvacriates/E-Commerce-API/internal/repository"
)

// fakeStore is an in-memory stand-in for the MySQL repositories. It mirrors
// their error contract: sql.ErrNoRows for missing rows, repository.ErrDuplicate
// for unique-key violations.
type fakeStore struct {
	users         map[int]entity.User
	products      map[int]entity.Product
	orders        map[int]entity.Order
	associations  map[[2]int]bool
	nextUserID    int
	nextProductID int
	nextOrderID   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         map[int]entity.User{},
		products:      map[int]entity.Product{},
		orders:        map[int]entity.Order{},
		associations:  map[[2]int]bool{},
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
	}
}

func (f *fakeStore) GetUsers(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, repository.ErrDuplicate
		}
	}
	user.ID = f.nextUserID
	f.nextUserID++
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return nil, repository.ErrDuplicate
		}
	}
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id int) error {
	for orderID, order := range f.orders {
		if order.UserID != id {
			continue
		}
		for key := range f.associations {
			if key[0] == orderID {
				delete(f.associations, key)
			}
		}
		delete(f.orders, orderID)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeStore) GetProducts(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	for _, product := range f.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (f *fakeStore) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &product, nil
}

func (f *fakeStore) GetProductsByOrder(ctx context.Context, orderID int) ([]entity.Product, error) {
	products := []entity.Product{}
	for key := range f.associations {
		if key[0] == orderID {
			products = append(products, f.products[key[1]])
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.ID = f.nextProductID
	f.nextProductID++
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id int) error {
	for key := range f.associations {
		if key[1] == id {
			delete(f.associations, key)
		}
	}
	delete(f.products, id)
	return nil
}

func (f *fakeStore) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	order.ProductIDs = f.productIDs(id)
	return &order, nil
}

func (f *fakeStore) GetOrdersByUser(ctx context.Context, userID int) ([]entity.Order, error) {
	orders := []entity.Order{}
	for _, order := range f.orders {
		if order.UserID == userID {
			order.ProductIDs = f.productIDs(order.ID)
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (f *fakeStore) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	order.ID = f.nextOrderID
	f.nextOrderID++
	f.orders[order.ID] = *order
	for _, productID := range order.ProductIDs {
		f.associations[[2]int{order.ID, productID}] = true
	}
	return order, nil
}

func (f *fakeStore) AttachProduct(ctx context.Context, orderID, productID int) error {
	key := [2]int{orderID, productID}
	if f.associations[key] {
		return repository.ErrDuplicate
	}
	f.associations[key] = true
	return nil
}

func (f *fakeStore) DetachProduct(ctx context.Context, orderID, productID int) error {
	key := [2]int{orderID, productID}
	if !f.associations[key] {
		return sql.ErrNoRows
	}
	delete(f.associations, key)
	return nil
}

func (f *fakeStore) productIDs(orderID int) []int {
	productIDs := []int{}
	for key := range f.associations {
		if key[0] == orderID {
			productIDs = append(productIDs, key[1])
		}
	}
	sort.Ints(productIDs)
	return productIDs
}
