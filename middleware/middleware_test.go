package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
)

const cookieName = "portfolio_session"

type fakeAuthorizer struct {
	valid string
	err   error
}

func (f fakeAuthorizer) Authorize(_ context.Context, token string) (*models.AdminCapability, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != "" && token == f.valid {
		return &models.AdminCapability{UserID: 1, Username: "admin", SessionID: "s1"}, nil
	}
	return nil, pkg.Unauthorized("Authentication required")
}

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability, ok := CapabilityFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", capability.Username)
		w.WriteHeader(http.StatusNoContent)
	})
}

func request(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	return r
}

func TestRequireAPI(t *testing.T) {
	m := NewAdminAuth(fakeAuthorizer{valid: "good"}, cookieName)
	h := m.RequireAPI(okHandler(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, request("good"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, request(""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["message"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, request("forged"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAPI_StoreFailure(t *testing.T) {
	m := NewAdminAuth(fakeAuthorizer{err: errors.New("db down")}, cookieName)

	rec := httptest.NewRecorder()
	m.RequireAPI(okHandler(t)).ServeHTTP(rec, request("good"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization failed")
}

func TestRequirePage(t *testing.T) {
	m := NewAdminAuth(fakeAuthorizer{valid: "good"}, cookieName)
	h := m.RequirePage(okHandler(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, request(""))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, AdminLoginPath, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, request("good"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.True(t, m.IsAdmin(request("good")))
	assert.False(t, m.IsAdmin(request("bad")))
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRequestLogger_RecordsStatus(t *testing.T) {
	var seen *statusResponseWriter
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		seen = w.(*statusResponseWriter)
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, http.StatusTeapot, seen.status)
}

func TestStatusResponseWriter_HijackUnsupported(t *testing.T) {
	srw := wrap(httptest.NewRecorder())
	_, _, err := srw.Hijack()
	assert.Error(t, err)
	assert.NotNil(t, srw.Unwrap())
}
