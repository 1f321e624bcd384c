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

func TestStationRepository_CountSchedules(t *testing.T) {
	gormDB := dbtest.Open(t)
	f := seedSchedules(t, gormDB)
	repo := NewStationRepository(gormDB)
	ctx := context.Background()

	tests := []struct {
		name    string
		station model.Station
		want    int64
	}{
		{"departures and arrivals", f.lviv, 2},
		{"one of each", f.kyiv, 2},
		{"odesa", f.odesa, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CountSchedules(ctx, tt.station.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	unused := &model.Station{Name: "Дніпро-Головний", Code: "DNIP", City: "Дніпро", Country: "Ukraine"}
	require.NoError(t, repo.Create(ctx, unused))
	got, err := repo.CountSchedules(ctx, unused.ID)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestStationRepository_TransactionLockAndDelete(t *testing.T) {
	gormDB := dbtest.Open(t)
	repo := NewStationRepository(gormDB)
	ctx := context.Background()

	s := &model.Station{Name: "Харків-Пасажирський", Code: "KHAR", City: "Харків", Country: "Ukraine"}
	require.NoError(t, repo.Create(ctx, s))

	err := repo.WithTransaction(ctx, func(ctx context.Context, tx StationRepository) error {
		locked, err := tx.FindByIDForUpdate(ctx, s.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, "KHAR", locked.Code)
		return tx.Delete(ctx, locked.ID)
	})
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, s.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.WithTransaction(ctx, func(ctx context.Context, tx StationRepository) error {
		_, err := tx.FindByIDForUpdate(ctx, uuid.New())
		return err
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStationRepository_StorageRejectsReferencedDelete(t *testing.T) {
	gormDB := dbtest.Open(t)
	f := seedSchedules(t, gormDB)
	repo := NewStationRepository(gormDB)

	assert.Error(t, repo.Delete(context.Background(), f.kyiv.ID))
}

func TestTrainRepository_CountSchedulesAndUpdate(t *testing.T) {
	gormDB := dbtest.Open(t)
	f := seedSchedules(t, gormDB)
	repo := NewTrainRepository(gormDB)
	ctx := context.Background()

	count, err := repo.CountSchedules(ctx, f.intercity.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Update(ctx, f.express.ID, model.TrainPatch{Name: strPtr("Галичина")}.Columns()))
	got, err := repo.FindByID(ctx, f.express.ID)
	require.NoError(t, err)
	assert.Equal(t, "Галичина", got.Name)
	assert.Equal(t, "91", got.Number)

	trains, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, trains, 2)
}

func strPtr(s string) *string { return &s }
