package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/customer/models"
)

// CustomerRepository is the customer store.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) *apierrors.AppError
	FindByID(ctx context.Context, id string) (models.Customer, *apierrors.AppError)
	FindAll(ctx context.Context) ([]models.Customer, *apierrors.AppError)
	Save(ctx context.Context, customer *models.Customer) *apierrors.AppError
	ExistsByID(ctx context.Context, id string) (bool, *apierrors.AppError)
	DeleteByID(ctx context.Context, id string) *apierrors.AppError
}

type customerRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewCustomerRepository(db *gorm.DB, logger *slog.Logger) CustomerRepository {
	return &customerRepository{db: db, logger: logger}
}

// Migrate creates the customer table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) *apierrors.AppError {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create customer", slog.String("error", err.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to create customer", err)
	}
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (models.Customer, *apierrors.AppError) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, apierrors.NewBusinessError(
				apierrors.ErrCodeCustomerNotFound,
				fmt.Sprintf("customer with id %s not found", id),
				nil,
			).WithContext("customerId", id)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch customer", slog.String("customer_id", id), slog.String("error", err.Error()))
		return models.Customer{}, apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to fetch customer", err)
	}
	return customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, *apierrors.AppError) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list customers", slog.String("error", err.Error()))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to list customers", err)
	}
	return customers, nil
}

func (r *customerRepository) Save(ctx context.Context, customer *models.Customer) *apierrors.AppError {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to save customer", slog.String("customer_id", customer.ID), slog.String("error", err.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to save customer", err)
	}
	return nil
}

func (r *customerRepository) ExistsByID(ctx context.Context, id string) (bool, *apierrors.AppError) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence", slog.String("customer_id", id), slog.String("error", err.Error()))
		return false, apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to check customer existence", err)
	}
	return count > 0, nil
}

func (r *customerRepository) DeleteByID(ctx context.Context, id string) *apierrors.AppError {
	if err := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete customer", slog.String("customer_id", id), slog.String("error", err.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to delete customer", err)
	}
	return nil
}
