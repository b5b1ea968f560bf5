package entry

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used for Entry.Date and for range
// filters. Range comparisons rely on it sorting lexicographically.
const DateLayout = "2006-01-02"

var (
	ErrNotFound      = errors.New("entry not found")
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidHours  = errors.New("hours must be between 1 and 24")
)

type Entry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	ProjectID   string    `json:"projectId"`
	ProjectName string    `json:"projectName"`
	WorkType    string    `json:"workType"`
	Description string    `json:"description"`
	Hours       int       `json:"hours"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListFilter keeps both bounds as date strings; empty means unbounded.
type ListFilter struct {
	From string
	To   string
}

// Matches reports whether the entry's date falls inclusively in the range.
func (f ListFilter) Matches(e Entry) bool {
	if f.From != "" && e.Date < f.From {
		return false
	}

	if f.To != "" && e.Date > f.To {
		return false
	}

	return true
}

type CreateEntryRequest struct {
	ProjectID   string `json:"projectId" binding:"required"`
	WorkType    string `json:"workType" binding:"required"`
	Description string `json:"description" binding:"required"`
	Hours       int    `json:"hours" binding:"required,min=1,max=24"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

// Validate enforces the store-level contract so the store stays correct even
// when called outside the HTTP boundary.
func (r CreateEntryRequest) Validate() error {
	if r.ProjectID == "" || r.WorkType == "" || r.Description == "" || r.Hours == 0 || r.Date == "" {
		return ErrMissingFields
	}

	if r.Hours < 1 || r.Hours > 24 {
		return ErrInvalidHours
	}

	return nil
}

// Partial update with presence semantics: nil means "keep the stored value".
// A present-but-zero hours value is rejected by validation rather than
// silently ignored.
type UpdateEntryRequest struct {
	ID          string  `json:"id" binding:"required"`
	ProjectID   *string `json:"projectId" binding:"omitempty,min=1"`
	WorkType    *string `json:"workType" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Hours       *int    `json:"hours"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateEntryRequest) Validate() error {
	if r.Hours != nil && (*r.Hours < 1 || *r.Hours > 24) {
		return ErrInvalidHours
	}

	return nil
}
