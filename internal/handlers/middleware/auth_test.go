package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/handlers/middleware"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
)

var testSecret = []byte("test-secret-key-for-middleware-tests")

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "7",
		"email": "staff@pharmhub.test",
		"role":  role,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := middleware.RoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, domain.RoleStaff, role)
		w.WriteHeader(http.StatusOK)
	})

	wrapped := middleware.Authenticate(testSecret, helpers.TestLogger())(handler)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "accepts_valid_token",
			authorization:  "Bearer " + signToken(t, "STAFF", time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects_missing_header",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rejects_malformed_token",
			authorization:  "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rejects_expired_token",
			authorization:  "Bearer " + signToken(t, "STAFF", -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rejects_unknown_role",
			authorization:  "Bearer " + signToken(t, "INTRUDER", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireCapability(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	authenticate := middleware.Authenticate(testSecret, helpers.TestLogger())

	tests := []struct {
		name           string
		role           string
		capability     domain.Capability
		expectedStatus int
	}{
		{
			name:           "staff_can_record_sales",
			role:           "STAFF",
			capability:     domain.CapRecordSales,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "staff_cannot_manage_stores",
			role:           "STAFF",
			capability:     domain.CapManageStores,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin_can_manage_stores",
			role:           "ADMIN",
			capability:     domain.CapManageStores,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := authenticate(middleware.RequireCapability(tt.capability)(handler))

			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tt.role, time.Hour))
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
