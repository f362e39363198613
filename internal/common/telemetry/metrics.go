package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/AtharPnh/e-commerce-application"

var (
	stockOnce  sync.Once
	stockGauge metric.Float64Gauge

	purchaseOnce    sync.Once
	purchaseCounter metric.Int64Counter
)

// RecordStockLevel reports the current available quantity of a product.
func RecordStockLevel(ctx context.Context, productID int, quantity float64) {
	stockOnce.Do(func() {
		stockGauge, _ = otel.Meter(meterName).Float64Gauge(
			"product.stock",
			metric.WithDescription("Current available quantity per product"),
			metric.WithUnit("{items}"),
		)
	})
	if stockGauge == nil {
		return
	}
	stockGauge.Record(ctx, quantity, metric.WithAttributes(attribute.Int("product.id", productID)))
}

// CountPurchase counts one processed purchase batch by outcome.
func CountPurchase(ctx context.Context, outcome string, lines int) {
	purchaseOnce.Do(func() {
		purchaseCounter, _ = otel.Meter(meterName).Int64Counter(
			"product.purchases",
			metric.WithDescription("Processed purchase batches by outcome"),
			metric.WithUnit("{batches}"),
		)
	})
	if purchaseCounter == nil {
		return
	}
	purchaseCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("lines", lines),
	))
}
