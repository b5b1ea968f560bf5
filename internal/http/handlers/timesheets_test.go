package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clockhouse/timesheet/internal/cache"
	"github.com/clockhouse/timesheet/internal/http/handlers"
)

func TestListTimesheetsHandler(t *testing.T) {
	tests := []struct {
		name            string
		url             string
		wantStatusCode  int
		wantItems       int
		wantCurrentPage int
		wantTotalPages  int
		wantTotal       int
	}{
		{
			name:            "defaults",
			url:             "/timesheets",
			wantStatusCode:  http.StatusOK,
			wantItems:       5,
			wantCurrentPage: 1,
			wantTotalPages:  20,
			wantTotal:       99,
		},
		{
			name:            "explicit_page",
			url:             "/timesheets?page=3&perPage=10",
			wantStatusCode:  http.StatusOK,
			wantItems:       10,
			wantCurrentPage: 3,
			wantTotalPages:  10,
			wantTotal:       99,
		},
		{
			name:            "status_filter",
			url:             "/timesheets?status=MISSING&perPage=50",
			wantStatusCode:  http.StatusOK,
			wantItems:       14,
			wantCurrentPage: 1,
			wantTotalPages:  1,
			wantTotal:       14,
		},
		{
			name:            "page_past_end",
			url:             "/timesheets?page=500",
			wantStatusCode:  http.StatusOK,
			wantItems:       0,
			wantCurrentPage: 500,
			wantTotalPages:  20,
			wantTotal:       99,
		},
		{
			name:           "non_numeric_page",
			url:            "/timesheets?page=abc",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "non_numeric_per_page",
			url:            "/timesheets?perPage=ten",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			h := handlers.NewTimesheetsHandler(cache.NewMemory(time.Minute), nil)
			r := setupRouter(http.MethodGet, "/timesheets", h.ListTimesheets)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode != http.StatusOK {
				return
			}

			var resp struct {
				Success    bool              `json:"success"`
				Data       []json.RawMessage `json:"data"`
				Pagination struct {
					CurrentPage int `json:"currentPage"`
					TotalPages  int `json:"totalPages"`
					PerPage     int `json:"perPage"`
					Total       int `json:"total"`
				} `json:"pagination"`
			}

			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}

			if !resp.Success {
				t.Fatal("expected success=true")
			}

			if len(resp.Data) != tt.wantItems {
				t.Fatalf("got %d items, want %d", len(resp.Data), tt.wantItems)
			}

			if resp.Pagination.CurrentPage != tt.wantCurrentPage {
				t.Fatalf("got currentPage %d, want %d", resp.Pagination.CurrentPage, tt.wantCurrentPage)
			}

			if resp.Pagination.TotalPages != tt.wantTotalPages {
				t.Fatalf("got totalPages %d, want %d", resp.Pagination.TotalPages, tt.wantTotalPages)
			}

			if resp.Pagination.Total != tt.wantTotal {
				t.Fatalf("got total %d, want %d", resp.Pagination.Total, tt.wantTotal)
			}
		})
	}
}

// Filtering is case-sensitive, so differently-cased status values are
// distinct pages and must not share a cache entry.
func TestListTimesheetsHandler_StatusCasingsCachedSeparately(t *testing.T) {
	h := handlers.NewTimesheetsHandler(cache.NewMemory(time.Minute), nil)
	r := setupRouter(http.MethodGet, "/timesheets", h.ListTimesheets)

	readTotal := func(url string) int {
		t.Helper()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
		}

		var resp struct {
			Pagination struct {
				Total int `json:"total"`
			} `json:"pagination"`
		}

		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		return resp.Pagination.Total
	}

	// lowercase matches no week; this page gets cached first
	if total := readTotal("/timesheets?status=completed&perPage=100"); total != 0 {
		t.Fatalf("got total %d for lowercase status, want 0", total)
	}

	// the canonical casing must not be served the empty lowercase page
	if total := readTotal("/timesheets?status=COMPLETED&perPage=100"); total != 73 {
		t.Fatalf("got total %d for COMPLETED, want 73", total)
	}

	// and the lowercase page stays what it was
	if total := readTotal("/timesheets?status=completed&perPage=100"); total != 0 {
		t.Fatalf("got total %d for lowercase status after both cached, want 0", total)
	}
}

func TestListTimesheetsHandler_CacheHit(t *testing.T) {
	pageCache := cache.NewMemory(time.Minute)

	// Pre-populate the page so the handler must serve the cached body verbatim.
	sentinel := []byte(`{"success":true,"data":[],"pagination":{"cached":true}}`)
	pageCache.Set(context.Background(), cache.WeeksPageKey("all", 1, 5), sentinel)

	h := handlers.NewTimesheetsHandler(pageCache, nil)
	r := setupRouter(http.MethodGet, "/timesheets", h.ListTimesheets)

	req := httptest.NewRequest(http.MethodGet, "/timesheets?page=1&perPage=5", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	if w.Body.String() != string(sentinel) {
		t.Fatalf("cached body not served: %s", w.Body.String())
	}

	// after invalidation the page is rendered fresh
	pageCache.Clear()

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/timesheets?page=1&perPage=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d after clear, body=%s", w.Code, w.Body.String())
	}

	if w.Body.String() == string(sentinel) {
		t.Fatal("stale body served after cache clear")
	}

	var resp struct {
		Success    bool              `json:"success"`
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if !resp.Success || len(resp.Data) != 5 || resp.Pagination.Total != 99 {
		t.Fatalf("unexpected fresh page: %s", w.Body.String())
	}
}

func TestListTimesheetsHandler_ETagNotModified(t *testing.T) {
	h := handlers.NewTimesheetsHandler(cache.NewMemory(time.Minute), nil)
	r := setupRouter(http.MethodGet, "/timesheets", h.ListTimesheets)

	w1 := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodGet, "/timesheets?page=2", nil)
	r.ServeHTTP(w1, req1)

	if w1.Code != http.StatusOK {
		t.Fatalf("first call got %d, body=%s", w1.Code, w1.Body.String())
	}

	etag := w1.Header().Get("ETag")

	if etag == "" {
		t.Fatal("expected ETag header in first response")
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/timesheets?page=2", nil)
	req2.Header.Set("If-None-Match", etag)
	r.ServeHTTP(w2, req2)

	if w2.Code != http.StatusNotModified {
		t.Fatalf("second call got %d, want %d", w2.Code, http.StatusNotModified)
	}

	if w2.Body.Len() != 0 {
		t.Fatalf("expected empty body for 304, got %q", w2.Body.String())
	}
}
