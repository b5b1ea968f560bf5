package timesheet_test

import (
	"testing"

	"github.com/clockhouse/timesheet/internal/domain/timesheet"
)

func TestGenerateWeeksSeries(t *testing.T) {
	weeks := timesheet.GenerateWeeks()

	if len(weeks) != 99 {
		t.Fatalf("got %d weeks, want 99", len(weeks))
	}

	for i, w := range weeks {
		if w.WeekNumber != i+1 {
			t.Fatalf("week %d: weekNumber %d", i, w.WeekNumber)
		}

		if w.TargetHours != timesheet.TargetHours {
			t.Fatalf("week %d: targetHours %d", i, w.TargetHours)
		}

		wantStatus := timesheet.StatusCompleted

		switch {
		case i >= 85:
			wantStatus = timesheet.StatusMissing
		case i%7 == 2:
			wantStatus = timesheet.StatusIncomplete
		}

		if w.Status != wantStatus {
			t.Fatalf("week %d: status %s, want %s", i, w.Status, wantStatus)
		}

		switch w.Status {
		case timesheet.StatusCompleted:
			if w.TotalHours != 40 {
				t.Fatalf("week %d: completed totalHours %d", i, w.TotalHours)
			}
		case timesheet.StatusIncomplete:
			if w.TotalHours < 10 || w.TotalHours > 39 {
				t.Fatalf("week %d: incomplete totalHours %d out of [10,39]", i, w.TotalHours)
			}
		case timesheet.StatusMissing:
			if w.TotalHours != 0 {
				t.Fatalf("week %d: missing totalHours %d", i, w.TotalHours)
			}
		}
	}

	first := weeks[0]

	if first.StartDate != "1 January, 2024" || first.EndDate != "7 January, 2024" {
		t.Fatalf("first week dates %q - %q", first.StartDate, first.EndDate)
	}

	second := weeks[1]

	if second.StartDate != "8 January, 2024" {
		t.Fatalf("second week start %q", second.StartDate)
	}
}

// Everything but the INCOMPLETE hours is deterministic across regenerations.
func TestGenerateWeeksDeterministic(t *testing.T) {
	a := timesheet.GenerateWeeks()
	b := timesheet.GenerateWeeks()

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}

	for i := range a {
		if a[i].ID != b[i].ID ||
			a[i].Status != b[i].Status ||
			a[i].TargetHours != b[i].TargetHours ||
			a[i].StartDate != b[i].StartDate ||
			a[i].EndDate != b[i].EndDate {
			t.Fatalf("week %d differs between generations: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestWeeksCached(t *testing.T) {
	a := timesheet.Weeks()
	b := timesheet.Weeks()

	for i := range a {
		if a[i].TotalHours != b[i].TotalHours {
			t.Fatalf("cached series changed between calls at week %d", i)
		}
	}
}

func TestListWeeksPagination(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		page           int
		perPage        int
		wantItems      int
		wantTotal      int
		wantTotalPages int
	}{
		{name: "first_page_all", status: "all", page: 1, perPage: 5, wantItems: 5, wantTotal: 99, wantTotalPages: 20},
		{name: "last_page_partial", status: "all", page: 20, perPage: 5, wantItems: 4, wantTotal: 99, wantTotalPages: 20},
		{name: "out_of_range_page", status: "all", page: 1000, perPage: 5, wantItems: 0, wantTotal: 99, wantTotalPages: 20},
		{name: "missing_only", status: "MISSING", page: 1, perPage: 50, wantItems: 14, wantTotal: 14, wantTotalPages: 1},
		{name: "incomplete_only", status: "INCOMPLETE", page: 1, perPage: 50, wantItems: 12, wantTotal: 12, wantTotalPages: 1},
		{name: "completed_count", status: "COMPLETED", page: 1, perPage: 100, wantItems: 73, wantTotal: 73, wantTotalPages: 1},
		{name: "empty_status_means_all", status: "", page: 1, perPage: 10, wantItems: 10, wantTotal: 99, wantTotalPages: 10},
		{name: "unknown_status_matches_nothing", status: "BOGUS", page: 1, perPage: 5, wantItems: 0, wantTotal: 0, wantTotalPages: 0},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			p := timesheet.ListWeeks(tt.status, tt.page, tt.perPage)

			if len(p.Items) != tt.wantItems {
				t.Fatalf("got %d items, want %d", len(p.Items), tt.wantItems)
			}

			if p.Total != tt.wantTotal {
				t.Fatalf("got total %d, want %d", p.Total, tt.wantTotal)
			}

			if p.TotalPages != tt.wantTotalPages {
				t.Fatalf("got totalPages %d, want %d", p.TotalPages, tt.wantTotalPages)
			}

			if len(p.Items) > tt.perPage {
				t.Fatalf("page overflow: %d items for perPage %d", len(p.Items), tt.perPage)
			}

			if tt.status != "all" && tt.status != "" {
				for _, w := range p.Items {
					if string(w.Status) != tt.status {
						t.Fatalf("filter leak: got status %s", w.Status)
					}
				}
			}
		})
	}
}

func TestListWeeksDefaultsOnBadInput(t *testing.T) {
	p := timesheet.ListWeeks("all", 0, 0)

	if p.CurrentPage != 1 {
		t.Fatalf("got page %d, want 1", p.CurrentPage)
	}

	if p.PerPage != 5 {
		t.Fatalf("got perPage %d, want 5", p.PerPage)
	}

	if len(p.Items) != 5 {
		t.Fatalf("got %d items, want 5", len(p.Items))
	}
}
