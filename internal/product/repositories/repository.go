package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/product/models"
)

// ProductRepository is the inventory store. The purchase core only needs
// FindAllByIDs, Save and Transaction; the rest serves the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) *apierrors.AppError
	FindByID(ctx context.Context, id int) (models.Product, *apierrors.AppError)
	FindAll(ctx context.Context) ([]models.Product, *apierrors.AppError)
	// FindAllByIDs resolves every stored product whose id is in ids, in one
	// query. Inside a purchase transaction the rows come back locked so two
	// overlapping batches cannot both observe pre-decrement stock.
	FindAllByIDs(ctx context.Context, ids []int) ([]models.Product, *apierrors.AppError)
	Save(ctx context.Context, product *models.Product) *apierrors.AppError
	// Transaction runs fn against a repository bound to one database
	// transaction. An error return rolls every write back.
	Transaction(ctx context.Context, fn func(ProductRepository) *apierrors.AppError) *apierrors.AppError
}

type productRepository struct {
	db     *gorm.DB
	logger *slog.Logger
	// inTx marks a repository handed to a Transaction callback; batch
	// lookups acquire row locks only then.
	inTx bool
}

// NewProductRepository builds the gorm-backed inventory store.
func NewProductRepository(db *gorm.DB, logger *slog.Logger) ProductRepository {
	return &productRepository{db: db, logger: logger}
}

// Migrate creates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{})
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) *apierrors.AppError {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create product", slog.String("error", err.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to create product", err)
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int) (models.Product, *apierrors.AppError) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, apierrors.NewBusinessError(
				apierrors.ErrCodeProductNotFound,
				fmt.Sprintf("product with id %d not found", id),
				nil,
			).WithContext("productId", id)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch product", slog.Int("product_id", id), slog.String("error", err.Error()))
		return models.Product{}, apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to fetch product", err)
	}
	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, *apierrors.AppError) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&products).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list products", slog.String("error", err.Error()))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to list products", err)
	}
	return products, nil
}

func (r *productRepository) FindAllByIDs(ctx context.Context, ids []int) ([]models.Product, *apierrors.AppError) {
	tx := r.db.WithContext(ctx)
	if r.inTx && tx.Dialector.Name() != "sqlite" {
		// SQLite has no FOR UPDATE; its single writer serializes anyway.
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var products []models.Product
	if err := tx.Where("id IN ?", ids).Order("id").Find(&products).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to fetch products by ids", slog.String("error", err.Error()))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to fetch products", err)
	}
	return products, nil
}

func (r *productRepository) Save(ctx context.Context, product *models.Product) *apierrors.AppError {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to save product", slog.Int("product_id", product.ID), slog.String("error", err.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "failed to save product", err)
	}
	return nil
}

func (r *productRepository) Transaction(ctx context.Context, fn func(ProductRepository) *apierrors.AppError) *apierrors.AppError {
	var appErr *apierrors.AppError
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &productRepository{db: tx, logger: r.logger, inTx: true}
		if appErr = fn(txRepo); appErr != nil {
			return appErr
		}
		return nil
	})
	if err != nil && appErr == nil {
		appErr = apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "transaction failed", err)
	}
	return appErr
}
