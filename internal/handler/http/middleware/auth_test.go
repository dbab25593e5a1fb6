package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beteamly/beteamly-backend-go/internal/domain/user"
	"github.com/beteamly/beteamly-backend-go/internal/handler/http/middleware"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(svc jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(svc.JWTAuth()))
		r.Use(middleware.AuthRequired(svc.JWTAuth()))

		r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func bearerRequest(target, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	router := protectedRouter(svc)

	employeeID := "emp-1"
	companyID := "comp-1"

	t.Run("valid access token passes", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("u1", "u1@example.com", &employeeID, &companyID, user.RoleEmployee)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bearerRequest("/me", token))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bearerRequest("/me", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewJWTService("other-secret", "1h")
		token, _, err := other.GenerateAccessToken("u1", "u1@example.com", &employeeID, &companyID, user.RoleEmployee)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bearerRequest("/me", token))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without company scope is rejected", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("u1", "u1@example.com", nil, nil, user.RoleEmployee)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bearerRequest("/me", token))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	router := protectedRouter(svc)

	employeeID := "emp-1"
	companyID := "comp-1"

	t.Run("admin role passes", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("u1", "admin@example.com", &employeeID, &companyID, user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bearerRequest("/admin", token))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("employee role is forbidden", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("u1", "u1@example.com", &employeeID, &companyID, user.RoleEmployee)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bearerRequest("/admin", token))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
