package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incomingTraceID string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	if incomingTraceID != "" {
		req.Header.Set(TraceIDHeader, incomingTraceID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestRequestID_GeneratesTraceID(t *testing.T) {
	rec, c := runRequestID(t, "")

	traceID := GetTraceID(c)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Equal(t, traceID, rec.Header().Get(TraceIDHeader))
}

func TestRequestID_HonorsIncomingTraceID(t *testing.T) {
	rec, c := runRequestID(t, "caller-supplied-id")

	assert.Equal(t, "caller-supplied-id", GetTraceID(c))
	assert.Equal(t, "caller-supplied-id", rec.Header().Get(TraceIDHeader))
}

func TestGetTraceID_MissingReturnsEmpty(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
