package mapping

import (
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
)

// ToDomainTimestamps builds domain Timestamps from stored row times
func ToDomainTimestamps(createdAt, updatedAt time.Time) domain.Timestamps {
	return domain.Timestamps{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
