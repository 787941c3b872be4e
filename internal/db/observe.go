package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ad/go-user-model/internal/observability/metrics"
)

// handleQueryError records the operation duration, maps missing rows to
// ErrProfileNotFound and wraps everything else with the operation name.
func handleQueryError(err error, operation string, startTime time.Time) error {
	metrics.StoreOpDurationSeconds.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProfileNotFound
	}
	metrics.StoreOpErrors.WithLabelValues(operation, fmt.Sprintf("%T", err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func handleExecError(err error, operation string, startTime time.Time) error {
	metrics.StoreOpDurationSeconds.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	metrics.StoreOpErrors.WithLabelValues(operation, fmt.Sprintf("%T", err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}
