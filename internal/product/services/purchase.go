package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/telemetry"
	"github.com/AtharPnh/e-commerce-application/internal/product/models"
	"github.com/AtharPnh/e-commerce-application/internal/product/repositories"
)

// Purchase reserves stock for a whole batch atomically. Every line is
// validated against the stored products inside one transaction; only when
// all lines pass does any quantity change. Confirmations come back in
// ascending productId order, one per line.
func (s *productService) Purchase(ctx context.Context, lines []models.PurchaseLine) (confirmations []models.PurchaseConfirmation, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.Int("purchase.lines", len(lines)))
	defer func() {
		var err error
		outcome := "success"
		if appErr != nil {
			err = appErr
			outcome = appErr.Code
		}
		telemetry.CountPurchase(ctx, outcome, len(lines))
		telemetry.EndSpan(span, &err)
	}()

	s.logger.InfoContext(ctx, "Processing purchase batch", slog.Int("lines", len(lines)))

	sorted, appErr := canonicalize(lines)
	if appErr != nil {
		return nil, appErr
	}

	appErr = s.repo.Transaction(ctx, func(tx repositories.ProductRepository) *apierrors.AppError {
		paired, txErr := s.validate(ctx, tx, sorted)
		if txErr != nil {
			return txErr
		}
		confirmations, txErr = s.decrement(ctx, tx, paired)
		return txErr
	})
	if appErr != nil {
		s.logger.WarnContext(ctx, "Purchase batch rejected",
			slog.Int("lines", len(lines)),
			slog.String("error_code", appErr.Code),
		)
		return nil, appErr
	}

	s.logger.InfoContext(ctx, "Purchase batch completed", slog.Int("lines", len(confirmations)))
	return confirmations, nil
}

// purchasePair binds one stored product to the line requesting it. The
// explicit pairing keyed by productId replaces any reliance on positional
// correspondence, so a misordered fetch can never misassign quantities.
type purchasePair struct {
	product models.Product
	line    models.PurchaseLine
}

// canonicalize sorts the batch by productId ascending and rejects duplicate
// ids, whose pairing would otherwise be ambiguous.
func canonicalize(lines []models.PurchaseLine) ([]models.PurchaseLine, *apierrors.AppError) {
	seen := make(map[int]struct{}, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.ProductID]; dup {
			return nil, apierrors.NewApplicationError(
				apierrors.ErrCodeRequestValidation,
				fmt.Sprintf("duplicate product ID %d in purchase batch", line.ProductID),
				nil,
			).WithContext("productId", line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
	}

	sorted := make([]models.PurchaseLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })
	return sorted, nil
}

// validate resolves the batch in one locked fetch and checks completeness,
// then per-line sufficiency. Nothing has been mutated when it fails, so a
// rejection needs no rollback of its own.
func (s *productService) validate(ctx context.Context, tx repositories.ProductRepository, sorted []models.PurchaseLine) ([]purchasePair, *apierrors.AppError) {
	ids := make([]int, len(sorted))
	for i, line := range sorted {
		ids[i] = line.ProductID
	}

	stored, appErr := tx.FindAllByIDs(ctx, ids)
	if appErr != nil {
		return nil, appErr
	}

	if len(stored) != len(ids) {
		s.logger.WarnContext(ctx, "Purchase references unknown products",
			slog.Int("requested", len(ids)),
			slog.Int("resolved", len(stored)),
		)
		return nil, apierrors.NewBusinessError(
			apierrors.ErrCodePurchaseRejected,
			"one or more products does not exist",
			nil,
		)
	}

	byID := make(map[int]models.Product, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	pairs := make([]purchasePair, 0, len(sorted))
	for _, line := range sorted {
		product := byID[line.ProductID]
		if product.AvailableQuantity < line.Quantity {
			s.logger.WarnContext(ctx, "Purchase blocked by insufficient stock",
				slog.Int("product_id", product.ID),
				slog.Float64("available", product.AvailableQuantity),
				slog.Float64("requested", line.Quantity),
			)
			return nil, apierrors.NewBusinessError(
				apierrors.ErrCodeInsufficientStock,
				fmt.Sprintf("not enough stock for product ID %d", product.ID),
				nil,
			).WithContext("productId", product.ID)
		}
		pairs = append(pairs, purchasePair{product: product, line: line})
	}

	return pairs, nil
}

// decrement applies and persists the quantity reduction for each pair in
// ascending productId order, assembling the confirmations as it goes. A save
// failure aborts the enclosing transaction, undoing earlier decrements.
func (s *productService) decrement(ctx context.Context, tx repositories.ProductRepository, pairs []purchasePair) ([]models.PurchaseConfirmation, *apierrors.AppError) {
	confirmations := make([]models.PurchaseConfirmation, 0, len(pairs))
	for _, pair := range pairs {
		product := pair.product
		product.AvailableQuantity -= pair.line.Quantity

		if appErr := tx.Save(ctx, &product); appErr != nil {
			return nil, appErr
		}

		telemetry.RecordStockLevel(ctx, product.ID, product.AvailableQuantity)
		confirmations = append(confirmations, product.ToPurchaseConfirmation(pair.line.Quantity))
	}
	return confirmations, nil
}
