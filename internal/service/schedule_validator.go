package service

import (
	"time"

	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
)

// parseScheduleTime parses a timestamp already checked by the struct tags.
func parseScheduleTime(field, value string) (time.Time, error) {
	t, err := time.Parse(model.TimeLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be an RFC 3339 timestamp")
	}
	return t.UTC(), nil
}

// validateTravelWindow rejects arrivals before departure. Equal times are allowed.
func validateTravelWindow(departure, arrival time.Time) error {
	if arrival.Before(departure) {
		return apperrors.NewValidationError("arrivalTime", "must not be before departureTime")
	}
	return nil
}
