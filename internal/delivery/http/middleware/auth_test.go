package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

// TestAuthMiddleware тестирует проверку токена и передачу claims
func TestAuthMiddleware(t *testing.T) {
	tokenService := jwt.NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour)
	user := &domain.User{ID: uuid.New(), Email: "ivan@example.com"}

	pair, err := tokenService.GenerateTokenPair(user)
	require.NoError(t, err)

	expiredService := jwt.NewTokenService(testSecret, -time.Minute, 7*24*time.Hour)
	expiredPair, err := expiredService.GenerateTokenPair(user)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "валидный токен",
			authHeader:     "Bearer " + pair.AccessToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "без заголовка",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authorization header required",
		},
		{
			name:           "кривой формат заголовка",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization header format",
		},
		{
			name:           "просроченный токен",
			authHeader:     "Bearer " + expiredPair.AccessToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token expired",
		},
		{
			name:           "мусор вместо токена",
			authHeader:     "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *jwt.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = GetUserClaims(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(tokenService)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				require.NotNil(t, gotClaims)
				assert.Equal(t, user.ID, gotClaims.UserID)
				return
			}

			// Тело ошибки всегда валидный JSON вида {"error":"..."}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body["error"])
		})
	}
}
