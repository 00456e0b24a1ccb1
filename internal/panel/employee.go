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

type EmployeeForm struct {
	ID       int64
	Username string
	Name     string
	Role     string
	Password string
}

// EmployeePanel drives the employee management screen. The screen itself is
// admin-gated (session.RequireAdmin) before this panel ever initializes.
type EmployeePanel struct {
	employees api.EmployeesAPI
	store     *store.EmployeeStore
	validate  *validator.Validate

	// currentUserID guards against deleting the logged-in account.
	currentUserID int64
}

func NewEmployeePanel(employees api.EmployeesAPI, s *store.EmployeeStore, currentUserID int64) *EmployeePanel {
	return &EmployeePanel{
		employees:     employees,
		store:         s,
		validate:      validator.New(),
		currentUserID: currentUserID,
	}
}

func (p *EmployeePanel) Load(ctx context.Context) error {

	employees, err := p.employees.ListEmployees(ctx)
	if err != nil {
		return err
	}

	p.store.Replace(employees)

	return nil
}

func (p *EmployeePanel) Filter(term string) []models.Employee {
	return p.store.Filter(term)
}

// Save creates or updates an employee. A new employee needs a password; on
// update a blank password keeps the current one.
func (p *EmployeePanel) Save(ctx context.Context, form EmployeeForm) error {

	password := strings.TrimSpace(form.Password)

	if form.ID == 0 && password == "" {
		return apperrors.ValidationError("A new employee needs a password")
	}

	req := models.SaveEmployeeRequest{
		Username: strings.TrimSpace(form.Username),
		Name:     strings.TrimSpace(form.Name),
		Role:     form.Role,
		Password: password,
	}

	if err := p.validate.Struct(req); err != nil {
		return apperrors.ValidationError("Employee form is incomplete").WithError(err)
	}

	var err error

	if form.ID == 0 {
		_, err = p.employees.CreateEmployee(ctx, req)
	} else {
		_, err = p.employees.UpdateEmployee(ctx, form.ID, req)
	}

	if err != nil {
		return err
	}

	return p.Load(ctx)
}

func (p *EmployeePanel) Delete(ctx context.Context, id int64) error {

	if id == p.currentUserID {
		return apperrors.ValidationError("You cannot delete your own account")
	}

	if err := p.employees.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	return p.Load(ctx)
}
