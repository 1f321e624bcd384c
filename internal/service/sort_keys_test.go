package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trainboard/internal/errors"
	"trainboard/internal/repository"
)

func TestParseScheduleSort(t *testing.T) {
	tests := []struct {
		raw     string
		want    repository.ScheduleSort
		wantErr bool
	}{
		{"", repository.SortNone, false},
		{"departure_time", repository.SortDepartureTime, false},
		{"departureTime", repository.SortDepartureTime, false},
		{"arrival_time", repository.SortArrivalTime, false},
		{"price", repository.SortPrice, false},
		{"delay_minutes", repository.SortDelayMinutes, false},
		{"available_seats", repository.SortAvailableSeats, false},
		{"train_number", repository.SortTrainNumber, false},
		{"created_at", repository.SortCreatedAt, false},
		{"password", repository.SortNone, true},
		{"departure_time; drop table", repository.SortNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseScheduleSort(tt.raw)
			if tt.wantErr {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, "sort")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnakeToCamel(t *testing.T) {
	assert.Equal(t, "departureTime", snakeToCamel("departure_time"))
	assert.Equal(t, "availableSeats", snakeToCamel("available__seats"))
	assert.Equal(t, "price", snakeToCamel("price"))
}
