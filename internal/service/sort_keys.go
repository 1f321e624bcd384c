package service

import (
	"strings"

	apperrors "trainboard/internal/errors"
	"trainboard/internal/repository"
)

// parseScheduleSort accepts departure_time or departureTime style keys.
// Anything outside the known columns is rejected.
func parseScheduleSort(raw string) (repository.ScheduleSort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return repository.SortNone, nil
	}
	key := repository.ScheduleSort(snakeToCamel(raw))
	if _, ok := key.Column(); !ok {
		return repository.SortNone, apperrors.NewValidationError("sort", "unsupported sort key "+raw)
	}
	return key, nil
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
