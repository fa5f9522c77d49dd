package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/apperrors"
	"github.com/yigit/turmas/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()
}

func serveError(err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/catalog", nil)
	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("name", "name is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"not found", apperrors.NewResourceNotFoundError("section not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"conflict", apperrors.NewConflictError("duplicate code"), http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"wrapped conflict", fmt.Errorf("create: %w", apperrors.NewConflictError("duplicate code")), http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"unclassified", errors.New("disk full"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serveError(tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorCarriesFieldAndReason(t *testing.T) {
	err := apperrors.NewConflictError("a discipline with this code already exists").WithField("code")

	_, resp := serveError(err)

	assert.Equal(t, "a discipline with this code already exists", resp.Error.Message)
	assert.Equal(t, "code", resp.Error.Field)
	assert.Equal(t, apperrors.CodeDuplicate, resp.Error.Reason)
}

func TestHandleAPIErrorHidesInternalMessage(t *testing.T) {
	_, resp := serveError(errors.New("open data/turmas.txt: permission denied"))

	assert.Equal(t, "Internal server error", resp.Error.Message)
}

type bindTarget struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	Name               string `json:"name" binding:"required"`
}

func TestHandleBindError(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "registrationNumber", resp.Error.Field)
	assert.Equal(t, "registrationNumber is required", resp.Error.Message)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeMalformedRequest, resp.Error.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
	assert.Equal(t, "abc", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(requestIDHeader), 36)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	router := gin.New()
	router.Use(Metrics(m))
	router.DELETE("/api/sections/:id", func(c *gin.Context) { c.Status(http.StatusConflict) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/sections/s1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("DELETE", "/api/sections/:id", "409")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
