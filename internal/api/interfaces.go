package api

import (
	"context"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

// One interface per server resource so panels and the checkout flow depend
// only on what they actually call.

type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Validate(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}

type ProductsAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req models.SaveProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req models.SaveProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type UploadsAPI interface {
	UploadProductImage(ctx context.Context, filename string, size int64, content []byte) (*models.UploadResult, error)
}

type CustomersAPI interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, req models.SaveCustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req models.SaveCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type EmployeesAPI interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, req models.SaveEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, req models.SaveEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type SettingsAPI interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error)
}

type LoyaltyAPI interface {
	SearchLoyalty(ctx context.Context, query string) ([]models.LoyaltySummary, error)
	LoyaltyDetail(ctx context.Context, customerID int64) (*models.LoyaltyDetail, error)
}

type CartAPI interface {
	CalculateCart(ctx context.Context, items []models.CartItem, customerID *int64, useCoupon bool) (*models.CartSummary, error)
}

type PaymentAPI interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error)
}

type OrdersAPI interface {
	SalesReport(ctx context.Context, start, end string) (*models.SalesReport, error)
}
