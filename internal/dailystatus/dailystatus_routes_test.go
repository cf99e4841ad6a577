package dailystatus_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-academy/internal/dailystatus"
	"go-academy/internal/middleware"
	"go-academy/internal/rbac"
	"go-academy/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const routeSecret = "route-test-secret"

func bearer(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID:   uuid.NewString(),
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := token.SignedString([]byte(routeSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func TestRegisterRoutes_Authorization(t *testing.T) {
	f := setupHandlerTest(t, uuid.New())

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	rbacService := rbac.NewService(enforcer, zap.NewNop())
	require.NoError(t, rbacService.LoadPolicy(rbac.DefaultPolicies, rbac.DefaultInheritance))

	h := dailystatus.NewHandler(f.registry, f.store, f.store,
		dailystatus.NewBoardCache(f.kv, time.Hour, zap.NewNop()), f.clock, seoul, zap.NewNop())

	r := gin.New()
	dailystatus.RegisterRoutes(r.Group("/api/v1"), h, rbacService, dailystatus.RouteConfig{
		JWTSecret:      routeSecret,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	})

	call := func(method, path, auth, body string) int {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	record := "/api/v1/attendance-board/students/" + uuid.NewString() + "/status"

	assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/api/v1/attendance-board", "", ""))
	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/api/v1/attendance-board", bearer(t, "teacher"), ""))
	assert.Equal(t, http.StatusCreated, call(http.MethodPost, record, bearer(t, "Teacher"), `{"status":"present"}`))
	assert.Equal(t, http.StatusForbidden, call(http.MethodPost, "/api/v1/attendance-board/reload", bearer(t, "teacher"), ""))
	assert.Equal(t, http.StatusOK, call(http.MethodPost, "/api/v1/attendance-board/reload", bearer(t, "admin"), ""))
	assert.Equal(t, http.StatusOK, call(http.MethodPost, "/api/v1/attendance-board/reload", bearer(t, "superadmin"), ""))
	assert.Equal(t, http.StatusForbidden, call(http.MethodGet, "/api/v1/attendance-board", bearer(t, "parent"), ""))

	kiosk := `{"student_id":"` + uuid.NewString() + `","status":"present","device_id":"kiosk-1"}`
	assert.Equal(t, http.StatusCreated, call(http.MethodPost, "/api/v1/attendance-board/kiosk/records", bearer(t, "teacher"), kiosk))
	assert.Equal(t, http.StatusForbidden, call(http.MethodPost, "/api/v1/attendance-board/kiosk/records", bearer(t, "parent"), kiosk))
}
