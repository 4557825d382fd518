package http

import (
	"context"
	"net/http"

	"github.com/fleettrack/fleettrack/internal/delivery/http/middleware"
	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/usecase/signature"
	"github.com/google/uuid"
)

// SignatureService определяет интерфейс для сервиса подписей
type SignatureService interface {
	GetSignature(ctx context.Context, callerID uuid.UUID) (*domain.Signature, error)
	SaveSignature(ctx context.Context, callerID uuid.UUID, req *signature.SaveSignatureRequest) (*domain.Signature, error)
	DeleteSignature(ctx context.Context, callerID uuid.UUID) error
}

// SignatureHandler обрабатывает запросы связанные с подписью владельца.
// Подпись адресуется неявно: маршруты работают с подписью текущего
// пользователя, идентификатора в пути нет.
type SignatureHandler struct {
	signatureService SignatureService
	logger           logger.Logger
}

// NewSignatureHandler создает новый handler
func NewSignatureHandler(signatureService SignatureService, logger logger.Logger) *SignatureHandler {
	return &SignatureHandler{
		signatureService: signatureService,
		logger:           logger,
	}
}

// GetSignature возвращает подпись текущего пользователя
// GET /api/v1/signature
func (h *SignatureHandler) GetSignature(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sig, err := h.signatureService.GetSignature(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get signature")
		return
	}

	respondData(w, http.StatusOK, sig)
}

// SaveSignature создает или обновляет подпись текущего пользователя
// PUT /api/v1/signature
func (h *SignatureHandler) SaveSignature(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req signature.SaveSignatureRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sig, err := h.signatureService.SaveSignature(r.Context(), claims.UserID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "save signature")
		return
	}

	respondData(w, http.StatusOK, sig)
}

// DeleteSignature удаляет подпись текущего пользователя
// DELETE /api/v1/signature
func (h *SignatureHandler) DeleteSignature(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.signatureService.DeleteSignature(r.Context(), claims.UserID); err != nil {
		respondServiceError(w, h.logger, err, "delete signature")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Signature deleted",
	})
}
