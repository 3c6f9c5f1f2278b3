package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrarifat21/bashabari-server-side/utils"
)

func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT(email, role)
	assert.NoError(t, err)
	return token
}

func claimsEcho(t *testing.T, captured **utils.Claims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromRequest(r)
		assert.True(t, ok)
		*captured = claims
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/wishlist", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a malformed header")
	}))

	req := httptest.NewRequest("GET", "/wishlist", nil)
	req.Header.Set("Authorization", "Token abcdef")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with an invalid token")
	}))

	req := httptest.NewRequest("GET", "/wishlist", nil)
	req.Header.Set("Authorization", "Bearer not.a.real.token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAttachesClaims(t *testing.T) {
	var captured *utils.Claims
	handler := AuthMiddleware(claimsEcho(t, &captured))

	req := httptest.NewRequest("GET", "/wishlist", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "buyer@example.com", "user"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, captured)
	assert.Equal(t, "buyer@example.com", captured.Email)
	assert.Equal(t, "user", captured.Role)
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	handler := AuthMiddleware(RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for a non-admin")
	})))

	req := httptest.NewRequest("PATCH", "/users/fraud/abc", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "agent@example.com", "agent"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	for _, role := range []string{"agent", "admin"} {
		var captured *utils.Claims
		handler := AuthMiddleware(RequireRole("agent", "admin")(claimsEcho(t, &captured)))

		req := httptest.NewRequest("POST", "/properties", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, role+"@example.com", role))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, role, captured.Role)
	}
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	handler := RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without claims in context")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
