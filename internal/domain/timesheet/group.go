package timesheet

import (
	"sort"
	"time"

	"github.com/clockhouse/timesheet/internal/domain/entry"
)

const dayLabelLayout = "Jan 2"

// Day is a derived view computed on each listing request; it is never
// persisted.
type Day struct {
	Date       string        `json:"date"`
	DayLabel   string        `json:"dayLabel"`
	Entries    []entry.Entry `json:"entries"`
	TotalHours int           `json:"totalHours"`
}

// GroupByDate buckets entries by exact date string and returns the days
// sorted ascending together with the overall total. Weekdays inside
// [start, end] with no entries are synthesized as empty days so clients get
// a full business-week view without stitching it together themselves.
func GroupByDate(entries []entry.Entry, start, end string) ([]Day, int) {
	byDate := make(map[string][]entry.Entry)

	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	addEmptyWeekdays(byDate, start, end)

	dates := make([]string, 0, len(byDate))

	for d := range byDate {
		dates = append(dates, d)
	}

	sort.Strings(dates)

	days := make([]Day, 0, len(dates))
	total := 0

	for _, date := range dates {
		bucket := byDate[date]

		if bucket == nil {
			bucket = []entry.Entry{}
		}

		hours := 0

		for _, e := range bucket {
			hours += e.Hours
		}

		days = append(days, Day{
			Date:       date,
			DayLabel:   dayLabel(date),
			Entries:    bucket,
			TotalHours: hours,
		})

		total += hours
	}

	return days, total
}

func addEmptyWeekdays(byDate map[string][]entry.Entry, start, end string) {
	if start == "" || end == "" {
		return
	}

	from, err := time.Parse(entry.DateLayout, start)
	if err != nil {
		return
	}

	to, err := time.Parse(entry.DateLayout, end)
	if err != nil {
		return
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		key := d.Format(entry.DateLayout)

		if _, ok := byDate[key]; !ok {
			byDate[key] = nil
		}
	}
}

func dayLabel(date string) string {
	t, err := time.Parse(entry.DateLayout, date)

	if err != nil {
		return date
	}

	return t.Format(dayLabelLayout)
}
