package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(userID uuid.UUID, role models.Role, duration time.Duration, key []byte) (string, error) {
	claims := &models.Claims{
		UserID: userID,
		Email:  "test@calzatec.mx",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func requestWithLogger() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	baseLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, baseLogger)

	return req.WithContext(ctx)
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "claims should be in context")
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, models.RoleVendedor, claims.Role)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name: "Success - Valid Token",
			authHeader: func() string {
				token, err := createTestToken(userID, models.RoleVendedor, time.Hour, testJwtKey)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - No Bearer Prefix",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Malformed Token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Fail - Wrong Signing Key",
			authHeader: func() string {
				token, err := createTestToken(userID, models.RoleVendedor, time.Hour, []byte("different-secret-key-0987654321"))
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Fail - Expired Token",
			authHeader: func() string {
				token, err := createTestToken(userID, models.RoleVendedor, -time.Hour, testJwtKey)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := requestWithLogger()
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(nextHandler).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	runWithRole := func(role models.Role, required models.Role) int {
		token, err := createTestToken(userID, role, time.Hour, testJwtKey)
		require.NoError(t, err)

		req := requestWithLogger()
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		authMiddleware.Authenticate(authMiddleware.RequireRole(required, nextHandler)).ServeHTTP(rr, req)

		return rr.Code
	}

	t.Run("Success - Matching Role", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, runWithRole(models.RoleAdmin, models.RoleAdmin))
	})

	t.Run("Fail - Insufficient Role", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, runWithRole(models.RoleCliente, models.RoleAdmin))
	})

	t.Run("Fail - No Claims In Context", func(t *testing.T) {
		req := requestWithLogger()
		rr := httptest.NewRecorder()

		// RequireRole without Authenticate in front never sees claims.
		authMiddleware.RequireRole(models.RoleAdmin, nextHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
