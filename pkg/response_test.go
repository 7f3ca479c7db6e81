package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, Fields{"projects": []string{"a"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := decode(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"a"}, body["projects"])
}

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{BadRequest("All fields required"), http.StatusBadRequest, "All fields required"},
		{Conflict("Username already exists"), http.StatusBadRequest, "Username already exists"},
		{Unauthorized("Invalid admin credentials"), http.StatusUnauthorized, "Invalid admin credentials"},
		{NotFound("Blog post not found"), http.StatusNotFound, "Blog post not found"},
		{fmt.Errorf("wrapped: %w", Conflict("Email already exists")), http.StatusBadRequest, "Email already exists"},
		{errors.New("disk I/O error"), http.StatusInternalServerError, "Login failed"},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		Error(rr, tc.err, "Login failed")

		assert.Equal(t, tc.status, rr.Code)
		body := decode(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tc.msg, body["message"])
	}
}

func TestError_KindMatching(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.email")
	err := &AppError{Kind: ErrAlreadyExists, Message: "Email already exists", Err: cause}

	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestPublicMessage_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create user: %w", Conflict("Username already exists"))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrAlreadyExists, appErr.Kind)

	msg, ok := PublicMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Username already exists", msg)

	_, ok = PublicMessage(errors.New("disk full"))
	assert.False(t, ok)
}
