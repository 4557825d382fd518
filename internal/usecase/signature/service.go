package signature

import (
	"context"
	"fmt"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/google/uuid"
)

// SaveSignatureRequest - запрос на сохранение подписи
type SaveSignatureRequest struct {
	Name         string `json:"name" validate:"required"`
	SignatureURL string `json:"signature_url" validate:"required,url"`
}

// ImageDeleter удаляет изображение на внешнем хостинге
type ImageDeleter interface {
	Delete(ctx context.Context, imageURL string) error
}

// Service содержит бизнес-логику работы с подписью владельца.
// Подпись одна на пользователя: повторное сохранение обновляет
// существующую, маршрут работает без идентификатора в пути -
// подпись определяется callerID.
type Service struct {
	signatureRepo repository.SignatureRepository
	images        ImageDeleter
	logger        logger.Logger
}

// NewService создает новый экземпляр SignatureService
func NewService(
	signatureRepo repository.SignatureRepository,
	images ImageDeleter,
	logger logger.Logger,
) *Service {
	return &Service{
		signatureRepo: signatureRepo,
		images:        images,
		logger:        logger,
	}
}

// GetSignature возвращает подпись callerID
func (s *Service) GetSignature(ctx context.Context, callerID uuid.UUID) (*domain.Signature, error) {
	return s.signatureRepo.GetByOwnerID(ctx, callerID)
}

// SaveSignature создает подпись callerID либо обновляет существующую.
// Если подпись замещает старую с другим изображением, прежнее
// изображение удаляется с хостинга best-effort.
func (s *Service) SaveSignature(ctx context.Context, callerID uuid.UUID, req *SaveSignatureRequest) (*domain.Signature, error) {
	signature := &domain.Signature{
		OwnerID:      callerID,
		Name:         req.Name,
		SignatureURL: req.SignatureURL,
	}

	if err := signature.Validate(); err != nil {
		return nil, err
	}

	var staleImageURL string
	if existing, err := s.signatureRepo.GetByOwnerID(ctx, callerID); err == nil {
		if existing.SignatureURL != req.SignatureURL {
			staleImageURL = existing.SignatureURL
		}
	}

	if err := s.signatureRepo.Upsert(ctx, signature); err != nil {
		s.logger.Error("Failed to save signature", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to save signature: %w", err)
	}

	s.cleanupImage(ctx, staleImageURL)

	s.logger.Info("Signature saved", map[string]interface{}{
		"owner_id": callerID,
	})

	return signature, nil
}

// DeleteSignature удаляет подпись callerID и её изображение (best-effort)
func (s *Service) DeleteSignature(ctx context.Context, callerID uuid.UUID) error {
	existing, err := s.signatureRepo.GetByOwnerID(ctx, callerID)
	if err != nil {
		return err
	}

	if err := s.signatureRepo.DeleteByOwnerID(ctx, callerID); err != nil {
		return err
	}

	s.cleanupImage(ctx, existing.SignatureURL)

	s.logger.Info("Signature deleted", map[string]interface{}{
		"owner_id": callerID,
	})

	return nil
}

// cleanupImage удаляет изображение с хостинга, не ломая операцию
// при неудаче
func (s *Service) cleanupImage(ctx context.Context, imageURL string) {
	if imageURL == "" || s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, imageURL); err != nil {
		s.logger.Warn("Failed to delete signature image", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
	}
}
