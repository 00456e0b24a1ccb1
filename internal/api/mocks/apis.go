// Package mocks provides testify mocks for the api interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *AuthAPI) Validate(ctx context.Context) (bool, error) {
	args := m.Called(ctx)

	return args.Bool(0), args.Error(1)
}

func (m *AuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

type ProductsAPI struct {
	mock.Mock
}

func (m *ProductsAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductsAPI) CreateProduct(ctx context.Context, req models.SaveProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductsAPI) UpdateProduct(ctx context.Context, id int64, req models.SaveProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductsAPI) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type UploadsAPI struct {
	mock.Mock
}

func (m *UploadsAPI) UploadProductImage(ctx context.Context, filename string, size int64, content []byte) (*models.UploadResult, error) {
	args := m.Called(ctx, filename, size, content)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.UploadResult), args.Error(1)
}

type CustomersAPI struct {
	mock.Mock
}

func (m *CustomersAPI) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *CustomersAPI) CreateCustomer(ctx context.Context, req models.SaveCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *CustomersAPI) UpdateCustomer(ctx context.Context, id int64, req models.SaveCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *CustomersAPI) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type EmployeesAPI struct {
	mock.Mock
}

func (m *EmployeesAPI) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *EmployeesAPI) CreateEmployee(ctx context.Context, req models.SaveEmployeeRequest) (*models.Employee, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeesAPI) UpdateEmployee(ctx context.Context, id int64, req models.SaveEmployeeRequest) (*models.Employee, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeesAPI) DeleteEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type SettingsAPI struct {
	mock.Mock
}

func (m *SettingsAPI) GetSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *SettingsAPI) UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	args := m.Called(ctx, settings)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Settings), args.Error(1)
}

type LoyaltyAPI struct {
	mock.Mock
}

func (m *LoyaltyAPI) SearchLoyalty(ctx context.Context, query string) ([]models.LoyaltySummary, error) {
	args := m.Called(ctx, query)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.LoyaltySummary), args.Error(1)
}

func (m *LoyaltyAPI) LoyaltyDetail(ctx context.Context, customerID int64) (*models.LoyaltyDetail, error) {
	args := m.Called(ctx, customerID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoyaltyDetail), args.Error(1)
}

type CartAPI struct {
	mock.Mock
}

func (m *CartAPI) CalculateCart(ctx context.Context, items []models.CartItem, customerID *int64, useCoupon bool) (*models.CartSummary, error) {
	args := m.Called(ctx, items, customerID, useCoupon)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartSummary), args.Error(1)
}

type OrdersAPI struct {
	mock.Mock
}

func (m *OrdersAPI) SalesReport(ctx context.Context, start, end string) (*models.SalesReport, error) {
	args := m.Called(ctx, start, end)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.SalesReport), args.Error(1)
}

type PaymentAPI struct {
	mock.Mock
}

func (m *PaymentAPI) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PaymentResponse), args.Error(1)
}
