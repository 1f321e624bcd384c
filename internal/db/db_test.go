package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTimezoneUTC(t *testing.T) {
	got, err := ensureTimezoneUTC("postgres://u:p@localhost:5432/trainboard?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/trainboard?TimeZone=UTC&sslmode=disable", got)

	got, err = ensureTimezoneUTC("postgres://localhost/trainboard?TimeZone=Europe/Kyiv")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/trainboard?TimeZone=Europe/Kyiv", got)

	got, err = ensureTimezoneUTC("host=localhost dbname=trainboard")
	require.NoError(t, err)
	assert.Equal(t, "host=localhost dbname=trainboard", got)
}

func TestOpen_RejectsBadInput(t *testing.T) {
	_, err := Open(DriverPostgres, "", PoolConfig{})
	assert.Error(t, err)

	_, err = Open("oracle", "dsn", PoolConfig{})
	assert.ErrorContains(t, err, "unsupported database driver")
}
