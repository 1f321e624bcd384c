package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
)

func TestValidator_Struct(t *testing.T) {
	v := New()
	seats := 10
	price := decimal.NewFromInt(100)

	valid := model.ScheduleInput{
		TrainID:            "7f1d7d4e-2c1a-4d0a-9a57-1b2f3c4d5e6f",
		DepartureStationID: "0b8e2a3c-5d6e-4f70-8a9b-0c1d2e3f4a5b",
		ArrivalStationID:   "1c9f3b4d-6e7f-4a81-9bac-1d2e3f4a5b6c",
		DepartureTime:      "2025-01-10T08:00:00Z",
		ArrivalTime:        "2025-01-10T13:00:00+02:00",
		Price:              &price,
		AvailableSeats:     &seats,
	}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name   string
		mutate func(in *model.ScheduleInput)
		field  string
		msg    string
	}{
		{"missing train", func(in *model.ScheduleInput) { in.TrainID = "" }, "trainId", "is required"},
		{"bad uuid", func(in *model.ScheduleInput) { in.ArrivalStationID = "lviv" }, "arrivalStationId", "must be a UUID"},
		{"bad time", func(in *model.ScheduleInput) { in.DepartureTime = "10.01.2025 08:00" }, "departureTime", "must be an RFC 3339 timestamp"},
		{"bad status", func(in *model.ScheduleInput) { in.Status = "late" }, "status", "must be one of: on-time delayed cancelled"},
		{"missing price", func(in *model.ScheduleInput) { in.Price = nil }, "price", "is required"},
		{"negative seats", func(in *model.ScheduleInput) { n := -1; in.AvailableSeats = &n }, "availableSeats", "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := v.Struct(in)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.msg, verr.Fields[tt.field])
		})
	}
}

func TestValidator_StringMin(t *testing.T) {
	short := "123"
	err := New().Struct(model.ProfilePatch{Password: &short})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 6 characters", verr.Fields["password"])
}
