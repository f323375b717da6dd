package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext(http.MethodGet)

	err := SuccessResponse(c, http.StatusCreated, "Item added", map[string]interface{}{"id": "item-1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Item added", resp.Message)
	assert.Equal(t, map[string]interface{}{"id": "item-1"}, resp.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name           string
		call           func(c echo.Context) error
		expectedStatus int
		expectedError  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "invalid latitude") }, http.StatusBadRequest, "invalid latitude"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Not Found"},
		{"conflict", func(c echo.Context) error { return ConflictResponse(c, "mixed restaurants") }, http.StatusConflict, "mixed restaurants"},
		{"rate limited", func(c echo.Context) error { return TooManyRequestsResponse(c, "slow down") }, http.StatusTooManyRequests, "slow down"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet)

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			resp := decodeError(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}

func TestErrorResponse_CarriesRequestID(t *testing.T) {
	c, rec := newContext(http.MethodGet)
	c.Response().Header().Set(requestcontext.Header, "req-42")

	require.NoError(t, BadRequestResponse(c, "bad"))
	assert.Equal(t, "req-42", decodeError(t, rec).RequestID)
}

func TestHTTPErrorHandler(t *testing.T) {
	t.Run("echo http error keeps status and message", func(t *testing.T) {
		c, rec := newContext(http.MethodGet)

		HTTPErrorHandler(echo.NewHTTPError(http.StatusForbidden, "Cannot stream another restaurant's orders"), c)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Cannot stream another restaurant's orders", decodeError(t, rec).Error)
	})

	t.Run("plain error hides details", func(t *testing.T) {
		c, rec := newContext(http.MethodGet)

		HTTPErrorHandler(errors.New("pq: connection refused"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, rec).Error)
	})

	t.Run("route not found", func(t *testing.T) {
		c, rec := newContext(http.MethodGet)

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", decodeError(t, rec).Error)
	})

	t.Run("head request has no body", func(t *testing.T) {
		c, rec := newContext(http.MethodHead)

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("committed response is left alone", func(t *testing.T) {
		c, rec := newContext(http.MethodGet)
		require.NoError(t, c.NoContent(http.StatusNoContent))

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
