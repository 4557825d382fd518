package signature

import (
	"context"
	"testing"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockImageDeleter мок для ImageDeleter
type mockImageDeleter struct {
	mock.Mock
}

func (m *mockImageDeleter) Delete(ctx context.Context, imageURL string) error {
	args := m.Called(ctx, imageURL)
	return args.Error(0)
}

// TestService_SaveSignature тестирует создание и замену подписи
func TestService_SaveSignature(t *testing.T) {
	callerID := uuid.New()

	req := &SaveSignatureRequest{
		Name:         "Ivan Petrov",
		SignatureURL: "https://img.example.com/sig-new.png",
	}

	t.Run("первое сохранение", func(t *testing.T) {
		repo := new(mocks.SignatureRepository)
		repo.On("GetByOwnerID", mock.Anything, callerID).
			Return(nil, domain.ErrSignatureNotFound)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.Signature) bool {
			return s.OwnerID == callerID && s.SignatureURL == req.SignatureURL
		})).Return(nil)

		images := new(mockImageDeleter)

		svc := NewService(repo, images, logger.NewNoop())
		sig, err := svc.SaveSignature(context.Background(), callerID, req)

		assert.NoError(t, err)
		assert.Equal(t, callerID, sig.OwnerID)
		images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("замена подписи удаляет старое изображение", func(t *testing.T) {
		repo := new(mocks.SignatureRepository)
		repo.On("GetByOwnerID", mock.Anything, callerID).
			Return(&domain.Signature{
				OwnerID:      callerID,
				Name:         "Ivan Petrov",
				SignatureURL: "https://img.example.com/sig-old.png",
			}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		images := new(mockImageDeleter)
		images.On("Delete", mock.Anything, "https://img.example.com/sig-old.png").Return(nil)

		svc := NewService(repo, images, logger.NewNoop())
		_, err := svc.SaveSignature(context.Background(), callerID, req)

		assert.NoError(t, err)
		images.AssertExpectations(t)
	})

	t.Run("то же изображение не удаляется", func(t *testing.T) {
		repo := new(mocks.SignatureRepository)
		repo.On("GetByOwnerID", mock.Anything, callerID).
			Return(&domain.Signature{
				OwnerID:      callerID,
				Name:         "Old Name",
				SignatureURL: req.SignatureURL,
			}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		images := new(mockImageDeleter)

		svc := NewService(repo, images, logger.NewNoop())
		_, err := svc.SaveSignature(context.Background(), callerID, req)

		assert.NoError(t, err)
		images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("ошибка удаления старого изображения не ломает сохранение", func(t *testing.T) {
		repo := new(mocks.SignatureRepository)
		repo.On("GetByOwnerID", mock.Anything, callerID).
			Return(&domain.Signature{
				OwnerID:      callerID,
				SignatureURL: "https://img.example.com/sig-old.png",
				Name:         "Ivan Petrov",
			}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		images := new(mockImageDeleter)
		images.On("Delete", mock.Anything, mock.Anything).
			Return(domain.ErrImageHostUnavailable)

		svc := NewService(repo, images, logger.NewNoop())
		_, err := svc.SaveSignature(context.Background(), callerID, req)

		assert.NoError(t, err)
	})
}

// TestService_DeleteSignature тестирует удаление подписи
func TestService_DeleteSignature(t *testing.T) {
	callerID := uuid.New()

	t.Run("подписи нет", func(t *testing.T) {
		repo := new(mocks.SignatureRepository)
		repo.On("GetByOwnerID", mock.Anything, callerID).
			Return(nil, domain.ErrSignatureNotFound)

		svc := NewService(repo, new(mockImageDeleter), logger.NewNoop())
		err := svc.DeleteSignature(context.Background(), callerID)

		assert.ErrorIs(t, err, domain.ErrSignatureNotFound)
		repo.AssertNotCalled(t, "DeleteByOwnerID", mock.Anything, mock.Anything)
	})

	t.Run("успешное удаление вместе с изображением", func(t *testing.T) {
		repo := new(mocks.SignatureRepository)
		repo.On("GetByOwnerID", mock.Anything, callerID).
			Return(&domain.Signature{
				OwnerID:      callerID,
				Name:         "Ivan Petrov",
				SignatureURL: "https://img.example.com/sig.png",
			}, nil)
		repo.On("DeleteByOwnerID", mock.Anything, callerID).Return(nil)

		images := new(mockImageDeleter)
		images.On("Delete", mock.Anything, "https://img.example.com/sig.png").Return(nil)

		svc := NewService(repo, images, logger.NewNoop())
		err := svc.DeleteSignature(context.Background(), callerID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		images.AssertExpectations(t)
	})
}
