package timesheet

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

type Status string

const (
	StatusCompleted  Status = "COMPLETED"
	StatusIncomplete Status = "INCOMPLETE"
	StatusMissing    Status = "MISSING"
)

const (
	TargetHours = 40

	weekCount        = 99
	missingFromIndex = 85

	// "D Month, YYYY"
	weekDateLayout = "2 January, 2006"
)

// The fixed series start. Week summaries are an independent mock series and
// are not derived from stored entries.
var seriesStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type Week struct {
	ID          string `json:"id"`
	WeekNumber  int    `json:"weekNumber"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      Status `json:"status"`
	TotalHours  int    `json:"totalHours"`
	TargetHours int    `json:"targetHours"`
}

// GenerateWeeks builds the full 99-week series. For week index i, weeks
// before index 85 are INCOMPLETE when i%7 == 2 and COMPLETED otherwise;
// later weeks are MISSING. Only the INCOMPLETE total hours are randomized.
func GenerateWeeks() []Week {
	weeks := make([]Week, 0, weekCount)

	for i := 0; i < weekCount; i++ {
		start := seriesStart.AddDate(0, 0, i*7)
		end := start.AddDate(0, 0, 6)

		status := StatusCompleted

		switch {
		case i >= missingFromIndex:
			status = StatusMissing
		case i%7 == 2:
			status = StatusIncomplete
		}

		total := 0

		switch status {
		case StatusCompleted:
			total = TargetHours
		case StatusIncomplete:
			total = rand.IntN(30) + 10
		}

		weeks = append(weeks, Week{
			ID:          fmt.Sprintf("week-%d", i+1),
			WeekNumber:  i + 1,
			StartDate:   start.Format(weekDateLayout),
			EndDate:     end.Format(weekDateLayout),
			Status:      status,
			TotalHours:  total,
			TargetHours: TargetHours,
		})
	}

	return weeks
}

var (
	weeksOnce sync.Once
	weeks     []Week
)

// Weeks returns the per-process cached series.
func Weeks() []Week {
	weeksOnce.Do(func() {
		weeks = GenerateWeeks()
	})

	return weeks
}

type Page struct {
	Items       []Week
	CurrentPage int
	TotalPages  int
	PerPage     int
	Total       int
}

// ListWeeks filters by status first, then paginates the filtered set with a
// 1-based page index. Out-of-range pages yield an empty item list with
// accurate totals.
func ListWeeks(status string, page, perPage int) Page {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = 5
	}

	all := Weeks()

	filtered := all

	if status != "" && status != "all" {
		filtered = make([]Week, 0, len(all))

		for _, w := range all {
			if w.Status == Status(status) {
				filtered = append(filtered, w)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage

	if start > total {
		start = total
	}

	if end > total {
		end = total
	}

	items := make([]Week, end-start)
	copy(items, filtered[start:end])

	return Page{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		PerPage:     perPage,
		Total:       total,
	}
}
