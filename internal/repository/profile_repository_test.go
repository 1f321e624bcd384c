package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trainboard/internal/db/dbtest"
	"trainboard/internal/model"
)

func TestProfileRepository_PasswordOnlyOnCredentialLookup(t *testing.T) {
	repo := NewProfileRepository(dbtest.Open(t))
	ctx := context.Background()

	p := &model.Profile{Email: "olena@example.com", Password: "$2a$10$hash", Role: model.RoleUser}
	require.NoError(t, repo.Create(ctx, p))
	require.NotEqual(t, uuid.Nil, p.ID)

	byID, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "olena@example.com", byID.Email)
	assert.Empty(t, byID.Password)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Password)

	byEmail, err := repo.FindByEmail(ctx, "olena@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", byEmail.Password)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileRepository_UpdateKeepsAbsentColumns(t *testing.T) {
	repo := NewProfileRepository(dbtest.Open(t))
	ctx := context.Background()

	name := "Олена"
	p := &model.Profile{Email: "olena@example.com", Password: "hash", FullName: &name, Role: model.RoleUser}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Update(ctx, p.ID, map[string]interface{}{"role": model.RoleAdmin}))

	got, err := repo.FindByEmail(ctx, "olena@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "Олена", *got.FullName)
	assert.Equal(t, "hash", got.Password)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
