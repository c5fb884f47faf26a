package store

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// fieldReset labels a change made by FilterStore.Reset.
const fieldReset = "reset"

// ChangeObserver returns a listener that logs every filter change at DEBUG
// and counts it per changed field in metrics.FilterChangeTotal. A nil
// metrics only logs.
func ChangeObserver(logger *slog.Logger, metrics *telemetry.Metrics) ports.FilterListener {
	return func(ev ports.FilterEvent) {
		ctx := context.Background()
		updated := ev.Updated

		fields := filter.Changed(ev.Old, updated)
		if ev.Reset {
			fields = []string{fieldReset}
		}

		logger.DebugContext(ctx, "filters changed",
			slog.Any("fields", fields),
			slog.String("search", updated.Search),
			slog.String("category", updated.Category),
			slog.Int("page", updated.Page),
		)

		if metrics == nil {
			return
		}
		for _, f := range fields {
			metrics.FilterChangeTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrFilterField.String(f)))
		}
	}
}
