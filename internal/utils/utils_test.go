package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid id", fmt.Errorf("%w: %q", models.ErrInvalidIdentifier, "xyz"), http.StatusBadRequest, "INVALID_ID"},
		{"not found", models.ErrProductNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"document not found", models.ErrDocumentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid action", fmt.Errorf("%w: %q", models.ErrInvalidAction, "approve"), http.StatusBadRequest, "INVALID_ACTION"},
		{"already voted", models.ErrAlreadyVoted, http.StatusBadRequest, "ALREADY_VOTED"},
		{"already reported", models.ErrAlreadyReported, http.StatusBadRequest, "ALREADY_REPORTED"},
		{"not modified", models.ErrNotModified, http.StatusBadRequest, "NOT_MODIFIED"},
		{"store down", fmt.Errorf("%w: find: timeout", models.ErrStoreUnavailable), http.StatusInternalServerError, "STORE_UNAVAILABLE"},
		{"validation", fmt.Errorf("validation failed: %w", ValidateStruct(struct {
			Email string `validate:"required,email"`
		}{})), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleServiceError(c, tt.err, i18n.KeyProductNotFound)

			assert.Equal(t, tt.status, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{Page: 1, Limit: 6}},
		{"page=2&limit=10&search=lamp", PaginationParams{Page: 2, Limit: 10, Search: "lamp"}},
		{"page=abc&limit=-4", PaginationParams{Page: 1, Limit: 6}},
		{"page=0&limit=0", PaginationParams{Page: 1, Limit: 6}},
		{"limit=5000", PaginationParams{Page: 1, Limit: MaxLimit}},
		{"page=9223372036854775807", PaginationParams{Page: math.MaxInt / DefaultLimit, Limit: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/products?"+tt.query, nil)
			params := GetPaginationParams(c)
			assert.Equal(t, tt.want, params)
			assert.GreaterOrEqual(t, params.Offset(), 0)
		})
	}
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]string{"a"}, 10, PaginationParams{Page: 2, Limit: 6})
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, int64(10), result.TotalCount)

	result = CreatePaginationResult([]string{}, 0, PaginationParams{Page: 1, Limit: 6})
	assert.Equal(t, 0, result.TotalPages)
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("u-1", "mod@x.io", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "mod@x.io", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	expired, err := GenerateJWT("u-1", "mod@x.io", "admin", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(expired)
	assert.Error(t, err)

	SetJWTSecret("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type upvote struct {
		UserEmail string `json:"userEmail" validate:"required,email"`
	}
	type coupon struct {
		Code string `json:"code" validate:"required,coupon_code"`
	}

	assert.NoError(t, ValidateStruct(upvote{UserEmail: "a@x.io"}))

	err := ValidateStruct(upvote{UserEmail: "not-an-email"})
	require.Error(t, err)
	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "userEmail", errs[0].Field)
	assert.Equal(t, "email", errs[0].Tag)

	assert.NoError(t, ValidateStruct(coupon{Code: "SPRING-25"}))
	assert.Error(t, ValidateStruct(coupon{Code: "x"}))
}
