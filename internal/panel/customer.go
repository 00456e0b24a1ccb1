package panel

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/poscatcafe/pos-terminal/internal/api"
	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
	"github.com/poscatcafe/pos-terminal/internal/store"
)

type CustomerForm struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}

type CustomerPanel struct {
	customers api.CustomersAPI
	store     *store.CustomerStore
	validate  *validator.Validate
}

func NewCustomerPanel(customers api.CustomersAPI, s *store.CustomerStore) *CustomerPanel {
	return &CustomerPanel{
		customers: customers,
		store:     s,
		validate:  validator.New(),
	}
}

func (p *CustomerPanel) Load(ctx context.Context) error {

	customers, err := p.customers.ListCustomers(ctx)
	if err != nil {
		return err
	}

	p.store.Replace(customers)

	return nil
}

func (p *CustomerPanel) Filter(term string) []models.Customer {
	return p.store.Filter(term)
}

func (p *CustomerPanel) Save(ctx context.Context, form CustomerForm) error {

	req := models.SaveCustomerRequest{
		Name:    strings.TrimSpace(form.Name),
		Phone:   strings.TrimSpace(form.Phone),
		Email:   strings.TrimSpace(form.Email),
		Address: strings.TrimSpace(form.Address),
	}

	if err := p.validate.Struct(req); err != nil {
		return apperrors.ValidationError("Customer form is incomplete").WithError(err)
	}

	var err error

	if form.ID == 0 {
		_, err = p.customers.CreateCustomer(ctx, req)
	} else {
		_, err = p.customers.UpdateCustomer(ctx, form.ID, req)
	}

	if err != nil {
		return err
	}

	return p.Load(ctx)
}

func (p *CustomerPanel) Delete(ctx context.Context, id int64) error {

	if err := p.customers.DeleteCustomer(ctx, id); err != nil {
		return err
	}

	return p.Load(ctx)
}
