package observability

import (
	"errors"
	"strings"
	"time"

	"github.com/clockhouse/timesheet/internal/domain/entry"
)

// ObserveStore times a logical entry-store operation and classifies failures.
func (p *Prom) ObserveStore(op string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"

	if err != nil {
		status = "error"
		p.StoreErrorsTotal.WithLabelValues(op, classifyStoreErr(err)).Inc()
	}

	p.StoreOpDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())

	return err
}

func classifyStoreErr(err error) string {
	switch {
	case errors.Is(err, entry.ErrNotFound):
		return "not_found"
	case errors.Is(err, entry.ErrMissingFields), errors.Is(err, entry.ErrInvalidHours):
		return "validation"
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "connection"):
		return "connection"
	default:
		return "unknown"
	}
}
