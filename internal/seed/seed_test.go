package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainboard/internal/db/dbtest"
	"trainboard/internal/model"
	"trainboard/internal/repository"
	"trainboard/internal/service"
)

func TestReference_Idempotent(t *testing.T) {
	gormDB := dbtest.Open(t)
	ctx := context.Background()

	first, err := Reference(ctx, gormDB)
	require.NoError(t, err)
	assert.Equal(t, len(Stations)+len(Trains), first.Created)
	assert.Zero(t, first.Skipped)

	second, err := Reference(ctx, gormDB)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, len(Stations)+len(Trains), second.Skipped)

	stations, err := repository.NewStationRepository(gormDB).List(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, len(Stations))
}

func TestAdmin_CreateThenPromote(t *testing.T) {
	gormDB := dbtest.Open(t)
	ctx := context.Background()
	profiles := service.NewProfileService(repository.NewProfileRepository(gormDB))

	created, err := Admin(ctx, profiles, "root@example.com", "first-secret")
	require.NoError(t, err)
	assert.True(t, created)

	_, err = profiles.Create(ctx, model.ProfileInput{Email: "olena@example.com", Password: "secret1"})
	require.NoError(t, err)

	created, err = Admin(ctx, profiles, "olena@example.com", "second-secret")
	require.NoError(t, err)
	assert.False(t, created)

	got, err := profiles.FindByEmail(ctx, "olena@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)
}
