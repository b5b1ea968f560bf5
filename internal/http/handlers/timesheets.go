package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/clockhouse/timesheet/internal/cache"
	"github.com/clockhouse/timesheet/internal/domain/timesheet"
	"github.com/clockhouse/timesheet/internal/observability"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage    = 1
	defaultPerPage = 5
)

type TimesheetsHandler struct {
	cache cache.Cache
	prom  *observability.Prom
}

func NewTimesheetsHandler(pageCache cache.Cache, prom *observability.Prom) *TimesheetsHandler {
	return &TimesheetsHandler{
		cache: pageCache,
		prom:  prom,
	}
}

func (h *TimesheetsHandler) ListTimesheets(ctx *gin.Context) {
	page, ok := queryInt(ctx, "page", defaultPage)
	if !ok {
		return
	}

	perPage, ok := queryInt(ctx, "perPage", defaultPerPage)
	if !ok {
		return
	}

	status := ctx.DefaultQuery("status", "all")

	rctx := ctx.Request.Context()
	key := cache.WeeksPageKey(status, page, perPage)

	if h.cache != nil {
		if b, found := h.cache.Get(rctx, key); found {
			h.observeCache(true)
			ServeJSONWithETag(ctx, http.StatusOK, b)
			return
		}

		h.observeCache(false)
	}

	p := timesheet.ListWeeks(status, page, perPage)

	body, err := json.Marshal(gin.H{
		"success": true,
		"data":    p.Items,
		"pagination": gin.H{
			"currentPage": p.CurrentPage,
			"totalPages":  p.TotalPages,
			"perPage":     p.PerPage,
			"total":       p.Total,
		},
	})

	if err != nil {
		RespondInternal(ctx, "Failed to fetch timesheets")
		return
	}

	if h.cache != nil {
		h.cache.Set(rctx, key, body)
	}

	ServeJSONWithETag(ctx, http.StatusOK, body)
}

func (h *TimesheetsHandler) observeCache(hit bool) {
	if h.prom == nil {
		return
	}

	if hit {
		h.prom.CacheHitsTotal.WithLabelValues("weeks").Inc()
		return
	}

	h.prom.CacheMissesTotal.WithLabelValues("weeks").Inc()
}

// queryInt falls back when the parameter is absent but rejects values that
// do not parse. Pages before the first are clamped by the aggregator.
func queryInt(ctx *gin.Context, name string, fallback int) (int, bool) {
	raw := ctx.Query(name)

	if raw == "" {
		return fallback, true
	}

	n, err := strconv.Atoi(raw)

	if err != nil {
		RespondBadRequest(ctx, fmt.Sprintf("Invalid %s parameter", name), nil)
		return 0, false
	}

	return n, true
}
