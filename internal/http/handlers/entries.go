package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/clockhouse/timesheet/internal/config"
	"github.com/clockhouse/timesheet/internal/domain/entry"
	"github.com/clockhouse/timesheet/internal/domain/timesheet"
	"github.com/gin-gonic/gin"
)

type EntriesStore interface {
	List(ctx context.Context, filter entry.ListFilter) ([]entry.Entry, error)
	Create(ctx context.Context, req entry.CreateEntryRequest) (entry.Entry, error)
	Update(ctx context.Context, id string, req entry.UpdateEntryRequest) (entry.Entry, error)
	Delete(ctx context.Context, id string) error
}

type EntriesHandler struct {
	store EntriesStore
}

func NewEntriesHandler(store EntriesStore) *EntriesHandler {
	return &EntriesHandler{store: store}
}

// ListEntries groups the week's entries by day. Filtering only applies when
// both bounds are present.
func (h *EntriesHandler) ListEntries(ctx *gin.Context) {
	var filter entry.ListFilter

	weekStart := ctx.Query("weekStart")
	weekEnd := ctx.Query("weekEnd")

	if weekStart != "" && weekEnd != "" {
		filter = entry.ListFilter{From: weekStart, To: weekEnd}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	entries, err := h.store.List(cctx, filter)

	if err != nil {
		RespondInternal(ctx, "Failed to fetch entries")
		return
	}

	days, totalHours := timesheet.GroupByDate(entries, filter.From, filter.To)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"days":        days,
			"totalHours":  totalHours,
			"targetHours": timesheet.TargetHours,
		},
	})
}

func (h *EntriesHandler) CreateEntry(ctx *gin.Context) {
	var req entry.CreateEntryRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	e, err := h.store.Create(cctx, req)

	if err != nil {
		if isValidationErr(err) {
			RespondBadRequest(ctx, validationErrMessage(err), nil)
			return
		}

		RespondInternal(ctx, "Failed to create entry")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": e})
}

func (h *EntriesHandler) UpdateEntry(ctx *gin.Context) {
	var req entry.UpdateEntryRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	e, err := h.store.Update(cctx, req.ID, req)

	if err != nil {
		switch {
		case errors.Is(err, entry.ErrNotFound):
			RespondNotFound(ctx, "Entry not found")
		case isValidationErr(err):
			RespondBadRequest(ctx, validationErrMessage(err), nil)
		default:
			RespondInternal(ctx, "Failed to update entry")
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": e})
}

func (h *EntriesHandler) DeleteEntry(ctx *gin.Context) {
	id := ctx.Query("id")

	if id == "" {
		RespondBadRequest(ctx, "Entry ID is required", nil)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, entry.ErrNotFound) {
			RespondNotFound(ctx, "Entry not found")
			return
		}

		RespondInternal(ctx, "Failed to delete entry")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Entry deleted successfully",
	})
}

func isValidationErr(err error) bool {
	return errors.Is(err, entry.ErrMissingFields) || errors.Is(err, entry.ErrInvalidHours)
}

func validationErrMessage(err error) string {
	if errors.Is(err, entry.ErrInvalidHours) {
		return "Hours must be between 1 and 24"
	}

	return "All fields are required"
}
