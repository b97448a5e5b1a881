package service

import (
	"time"

	"app-submission-api/internal/response"
)

// validateScheduleRange ensures start_date <= publish_date when both are set
func validateScheduleRange(startDate, publishDate *time.Time) error {
	if startDate != nil && publishDate != nil && startDate.After(*publishDate) {
		return response.NewValidationError("start_date must be before or equal to publish_date", "")
	}
	return nil
}
