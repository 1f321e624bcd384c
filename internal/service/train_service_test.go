package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
)

func TestTrainService_CreateDefaultsType(t *testing.T) {
	mockRepo := new(MockTrainRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Train) bool {
		return tr.Number == "743" && tr.Type == model.TrainTypeRegional
	})).Return(nil)

	got, err := NewTrainService(mockRepo, nil).Create(context.Background(), model.TrainInput{Number: "743", Name: "Інтерсіті+"})
	require.NoError(t, err)
	assert.Equal(t, model.TrainTypeRegional, got.Type)
	mockRepo.AssertExpectations(t)
}

func TestTrainService_Remove(t *testing.T) {
	id := uuid.New()

	t.Run("referenced train", func(t *testing.T) {
		mockRepo := new(MockTrainRepository)
		mockRepo.On("WithTransaction", mock.Anything).Return()
		mockRepo.On("FindByIDForUpdate", mock.Anything, id).Return(&model.Train{ID: id}, nil)
		mockRepo.On("CountSchedules", mock.Anything, id).Return(int64(1), nil)

		err := NewTrainService(mockRepo, nil).Remove(context.Background(), id)
		var guard *apperrors.ReferenceGuardError
		require.ErrorAs(t, err, &guard)
		assert.Equal(t, "cannot delete train: referenced by 1 schedule", err.Error())
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, id)
	})

	t.Run("missing train", func(t *testing.T) {
		mockRepo := new(MockTrainRepository)
		mockRepo.On("WithTransaction", mock.Anything).Return()
		mockRepo.On("FindByIDForUpdate", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, NewTrainService(mockRepo, nil).Remove(context.Background(), id))
	})

	t.Run("unreferenced train", func(t *testing.T) {
		mockRepo := new(MockTrainRepository)
		mockRepo.On("WithTransaction", mock.Anything).Return()
		mockRepo.On("FindByIDForUpdate", mock.Anything, id).Return(&model.Train{ID: id}, nil)
		mockRepo.On("CountSchedules", mock.Anything, id).Return(int64(0), nil)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		assert.NoError(t, NewTrainService(mockRepo, nil).Remove(context.Background(), id))
		mockRepo.AssertExpectations(t)
	})
}

func TestTrainService_EmptyPatchSkipsWrite(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockTrainRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(&model.Train{ID: id, Number: "91"}, nil)

	got, err := NewTrainService(mockRepo, nil).Update(context.Background(), id, model.TrainPatch{})
	require.NoError(t, err)
	assert.Equal(t, "91", got.Number)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
