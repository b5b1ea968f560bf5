package entry

import (
	"time"

	"github.com/clockhouse/timesheet/internal/domain/project"
	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateEntryRequest) Entry {
	now := time.Now().UTC()

	return Entry{
		ID:          uuid.NewString(),
		Date:        req.Date,
		ProjectID:   req.ProjectID,
		ProjectName: project.NameByID(req.ProjectID),
		WorkType:    req.WorkType,
		Description: req.Description,
		Hours:       req.Hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate overlays the provided fields onto a stored entry. The project
// name is re-resolved whenever the project id changes, and updatedAt is
// always refreshed.
func (e Entry) ApplyUpdate(req UpdateEntryRequest) Entry {
	if req.ProjectID != nil {
		e.ProjectID = *req.ProjectID
		e.ProjectName = project.NameByID(*req.ProjectID)
	}

	if req.WorkType != nil {
		e.WorkType = *req.WorkType
	}

	if req.Description != nil {
		e.Description = *req.Description
	}

	if req.Hours != nil {
		e.Hours = *req.Hours
	}

	if req.Date != nil {
		e.Date = *req.Date
	}

	e.UpdatedAt = time.Now().UTC()

	return e
}
