package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"trainboard/internal/config"
)

func TestRun_ReturnsStartupErrors(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), &config.Config{DBDriver: "oracle", DatabaseURL: "oracle://db"}, log)
	assert.ErrorContains(t, err, "database init")

	err = run(context.Background(), &config.Config{DBDriver: "postgres"}, log)
	assert.ErrorContains(t, err, "database URL is required")
}
