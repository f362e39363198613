package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/customer/models"
)

type fakeRepo struct {
	customers map[string]models.Customer
}

func newFakeRepo(customers ...models.Customer) *fakeRepo {
	f := &fakeRepo{customers: make(map[string]models.Customer)}
	for _, c := range customers {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, customer *models.Customer) *apierrors.AppError {
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (models.Customer, *apierrors.AppError) {
	c, ok := f.customers[id]
	if !ok {
		return models.Customer{}, apierrors.NewBusinessError(
			apierrors.ErrCodeCustomerNotFound,
			fmt.Sprintf("customer with id %s not found", id),
			nil,
		)
	}
	return c, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]models.Customer, *apierrors.AppError) {
	out := make([]models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) Save(_ context.Context, customer *models.Customer) *apierrors.AppError {
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeRepo) ExistsByID(_ context.Context, id string) (bool, *apierrors.AppError) {
	_, ok := f.customers[id]
	return ok, nil
}

func (f *fakeRepo) DeleteByID(_ context.Context, id string) *apierrors.AppError {
	delete(f.customers, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateCustomerAssignsUUID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCustomerService(repo, testLogger())

	id, appErr := svc.CreateCustomer(context.Background(), models.CustomerRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	if appErr != nil {
		t.Fatalf("CreateCustomer: %v", appErr)
	}
	if len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Errorf("id %q does not look like a uuid", id)
	}
	if repo.customers[id].Email != "ada@example.com" {
		t.Errorf("stored email = %q", repo.customers[id].Email)
	}
}

func TestUpdateCustomerMergesOnlyNonBlankFields(t *testing.T) {
	existing := models.Customer{
		ID:        "c1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Address:   models.Address{Street: "Main St", HouseNumber: "1", ZipCode: "12345"},
	}
	repo := newFakeRepo(existing)
	svc := NewCustomerService(repo, testLogger())

	appErr := svc.UpdateCustomer(context.Background(), models.CustomerRequest{
		ID:        "c1",
		FirstName: "Augusta",
		LastName:  "   ", // blank, must not overwrite
		Email:     "",
	})
	if appErr != nil {
		t.Fatalf("UpdateCustomer: %v", appErr)
	}

	got := repo.customers["c1"]
	if got.FirstName != "Augusta" {
		t.Errorf("FirstName = %q, want Augusta", got.FirstName)
	}
	if got.LastName != "Lovelace" {
		t.Errorf("LastName = %q, blank update must not overwrite", got.LastName)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email = %q, empty update must not overwrite", got.Email)
	}
	if got.Address.Street != "Main St" {
		t.Errorf("Address overwritten by nil request address: %+v", got.Address)
	}
}

func TestUpdateCustomerReplacesAddressWhenProvided(t *testing.T) {
	repo := newFakeRepo(models.Customer{ID: "c1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	svc := NewCustomerService(repo, testLogger())

	appErr := svc.UpdateCustomer(context.Background(), models.CustomerRequest{
		ID:      "c1",
		Address: &models.Address{Street: "New St", HouseNumber: "9", ZipCode: "99999"},
	})
	if appErr != nil {
		t.Fatalf("UpdateCustomer: %v", appErr)
	}
	if got := repo.customers["c1"].Address.Street; got != "New St" {
		t.Errorf("Street = %q, want New St", got)
	}
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(newFakeRepo(), testLogger())

	appErr := svc.UpdateCustomer(context.Background(), models.CustomerRequest{ID: "missing"})
	if appErr == nil || appErr.Code != apierrors.ErrCodeCustomerNotFound {
		t.Fatalf("got %v, want %s", appErr, apierrors.ErrCodeCustomerNotFound)
	}
	if !strings.Contains(appErr.Message, "cannot update customer") {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestExistsAndDelete(t *testing.T) {
	repo := newFakeRepo(models.Customer{ID: "c1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	svc := NewCustomerService(repo, testLogger())
	ctx := context.Background()

	exists, appErr := svc.ExistsByID(ctx, "c1")
	if appErr != nil || !exists {
		t.Fatalf("ExistsByID(c1) = %v, %v; want true", exists, appErr)
	}

	if appErr := svc.DeleteByID(ctx, "c1"); appErr != nil {
		t.Fatalf("DeleteByID: %v", appErr)
	}

	exists, appErr = svc.ExistsByID(ctx, "c1")
	if appErr != nil || exists {
		t.Fatalf("ExistsByID after delete = %v, %v; want false", exists, appErr)
	}
}
