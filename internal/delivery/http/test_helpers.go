package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/fleettrack/fleettrack/internal/delivery/http/middleware"
	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateTestUser создает тестового пользователя
func CreateTestUser(id uuid.UUID, email string) *domain.User {
	return &domain.User{
		ID:       id,
		Email:    email,
		FullName: "Test User",
		Phone:    "9876543210",
		IsActive: true,
	}
}

// CreateTestVehicle создает тестовую машину
func CreateTestVehicle(id, ownerID uuid.UUID, number string) *domain.Vehicle {
	return &domain.Vehicle{
		ID:            id,
		OwnerID:       ownerID,
		Name:          "Test Truck",
		OwnerName:     "Test Owner",
		VehicleNumber: number,
		Tyres:         []domain.Tyre{},
	}
}

// CreateAuthContext создает контекст с claims аутентифицированного
// пользователя, как его выставляет AuthMiddleware
func CreateAuthContext(t *testing.T, userID uuid.UUID, email string) context.Context {
	t.Helper()
	claims := &jwt.Claims{
		UserID: userID,
		Email:  email,
	}
	return context.WithValue(context.Background(), middleware.UserClaimsKey, claims)
}

// AssertSuccess проверяет успешный ответ API
func AssertSuccess(t *testing.T, response map[string]interface{}) {
	t.Helper()
	success, ok := response["success"].(bool)
	if !ok || !success {
		t.Errorf("Expected success=true, got %v", response)
	}
}

// AssertError проверяет ошибочный ответ API
func AssertError(t *testing.T, response map[string]interface{}) {
	t.Helper()
	errMsg, ok := response["error"].(string)
	if !ok || errMsg == "" {
		t.Errorf("Expected error response, got %v", response)
	}
}

// WithURLParams подкладывает chi route context с параметрами пути,
// чтобы handler можно было вызвать напрямую без роутера
func WithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
