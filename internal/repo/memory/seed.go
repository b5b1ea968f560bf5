package memory

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/clockhouse/timesheet/internal/domain/entry"
	"github.com/clockhouse/timesheet/internal/domain/project"
)

var seedWorkTypes = []string{
	"Development",
	"Bug fixes",
	"Testing",
	"Documentation",
	"Meetings",
}

var seedDescriptions = []string{
	"Homepage Development",
	"API Integration",
	"Unit Testing",
	"Code Review",
	"Feature Implementation",
}

// SeedCurrentWeek fills the store with 2-3 four-hour entries per weekday of
// the current week so a fresh process has something to show.
func (r *EntriesRepo) SeedCurrentWeek() {
	projects := project.Catalog()

	today := time.Now()
	monday := today.AddDate(0, 0, 1-int(today.Weekday()))

	for day := 0; day < 5; day++ {
		date := monday.AddDate(0, 0, day).Format(entry.DateLayout)

		perDay := rand.IntN(2) + 2

		for i := 0; i < perDay; i++ {
			p := projects[rand.IntN(len(projects))]

			_, _ = r.Create(context.Background(), entry.CreateEntryRequest{
				ProjectID:   p.ID,
				WorkType:    seedWorkTypes[rand.IntN(len(seedWorkTypes))],
				Description: seedDescriptions[rand.IntN(len(seedDescriptions))],
				Hours:       4,
				Date:        date,
			})
		}
	}
}
