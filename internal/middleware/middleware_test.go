package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user": id, "role": c.GetString(ContextUserRole)})
	})...)
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(AuthMiddleware(secret))

	tok, err := IssueToken(secret, 7, "owner", time.Now())
	require.NoError(t, err)

	w := get(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":7,"role":"owner"}`, w.Body.String())

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing", "", "missing_authorization_header"},
		{"scheme", "Token " + tok, "invalid_authorization_header"},
		{"garbage", "Bearer abc.def.ghi", "invalid_token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}

	t.Run("expired", func(t *testing.T) {
		old, err := IssueToken(secret, 7, "owner", time.Now().Add(-48*time.Hour))
		require.NoError(t, err)
		w := get(r, "Bearer "+old)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "token_expired", errorCode(t, w))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := IssueToken("other-secret", 7, "owner", time.Now())
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+other).Code)
	})

	t.Run("no subject", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(secret))
		require.NoError(t, err)
		w := get(r, "Bearer "+raw)
		assert.Equal(t, "invalid_token_payload", errorCode(t, w))
	})
}

func TestRequireRoles(t *testing.T) {
	r := newEngine(AuthMiddleware(secret), RequireRoles("admin", "owner"))

	owner, _ := IssueToken(secret, 1, "owner", time.Now())
	renter, _ := IssueToken(secret, 2, "renter", time.Now())

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+owner).Code)

	w := get(r, "Bearer "+renter)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errorCode(t, w))
}

func TestRateLimit(t *testing.T) {
	r := newEngine(RateLimit(2, zap.NewNop()))

	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusOK, get(r, "").Code)

	w := get(r, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limited", errorCode(t, w))
}

func TestRequestIDAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	var body struct {
		Code    string `json:"error_code"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "server_error", body.Code)
	assert.Equal(t, "req-42", body.TraceID)
}
