package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"trainboard/internal/validation"
)

// entityCacheTTL bounds how long a cached station or train may be served.
const entityCacheTTL = 5 * time.Minute

var validate = validation.New()

// absent turns a missing-row lookup into a nil result.
func absent(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
