package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{
		"error": message,
	})
}

// respondData отправляет успешный ответ в стандартном конверте
func respondData(w http.ResponseWriter, code int, data interface{}) {
	respondJSON(w, code, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// decodeJSON разбирает тело запроса в dst и валидирует его.
// Неизвестные поля отклоняются: тихо проглоченное поле - это обычно
// опечатка клиента либо попытка протащить лишние данные.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// getPathParam извлекает параметр из пути URL
func getPathParam(r *http.Request, param string) string {
	return chi.URLParam(r, param)
}

// respondServiceError переводит доменную ошибку в HTTP ответ.
// Неизвестные ошибки логируются и отдаются как 500 без деталей.
func respondServiceError(w http.ResponseWriter, log logger.Logger, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		respondError(w, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, domain.ErrRepairNotFound):
		respondError(w, http.StatusNotFound, "Repair not found")
	case errors.Is(err, domain.ErrSignatureNotFound):
		respondError(w, http.StatusNotFound, "Signature not found")
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrDriverItemNotFound):
		respondError(w, http.StatusNotFound, "Driver item not found")
	case errors.Is(err, domain.ErrTyreNotFound):
		respondError(w, http.StatusNotFound, "Tyre not found")
	case errors.Is(err, domain.ErrNoDriverAssigned):
		respondError(w, http.StatusBadRequest, "No driver assigned to this vehicle")
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		respondError(w, http.StatusConflict, "User already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUserInactive):
		respondError(w, http.StatusForbidden, "User account is inactive")
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired):
		respondError(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, domain.ErrInvalidVehicleData),
		errors.Is(err, domain.ErrInvalidVehicleNumber),
		errors.Is(err, domain.ErrInvalidDriverData),
		errors.Is(err, domain.ErrInvalidItemData),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidTyreData),
		errors.Is(err, domain.ErrInvalidRepairData),
		errors.Is(err, domain.ErrInvalidSignatureData),
		errors.Is(err, domain.ErrInvalidUserData):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrImageHostUnavailable):
		respondError(w, http.StatusBadGateway, "Image host unavailable")
	default:
		log.Error("Request failed", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}
