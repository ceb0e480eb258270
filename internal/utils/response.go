// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/models"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// MessageResponse is a 200 carrying a translated confirmation and optional data.
func MessageResponse(c *gin.Context, key string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: i18n.T(GetLangFromContext(c), key),
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, key string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: i18n.T(GetLangFromContext(c), key),
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func NotFoundResponse(c *gin.Context, key string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(GetLangFromContext(c), key), nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyInternalError)
	}
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyValidationInvalid, "input")
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", message, errors)
}

// HandleServiceError maps a domain error onto its HTTP status and error code.
// notFoundKey selects the message used for the resource's not-found case.
func HandleServiceError(c *gin.Context, err error, notFoundKey string) {
	lang := GetLangFromContext(c)

	if validationErrors := GetValidationErrors(err); len(validationErrors) > 0 {
		ValidationErrorResponse(c, validationErrors)
		return
	}

	switch {
	case errors.Is(err, models.ErrInvalidIdentifier):
		ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", i18n.T(lang, i18n.KeyProductInvalidID), nil)
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrDocumentNotFound):
		NotFoundResponse(c, notFoundKey)
	case errors.Is(err, models.ErrInvalidAction):
		ErrorResponse(c, http.StatusBadRequest, "INVALID_ACTION", i18n.T(lang, i18n.KeyModerationInvalidAction), nil)
	case errors.Is(err, models.ErrAlreadyVoted):
		ErrorResponse(c, http.StatusBadRequest, "ALREADY_VOTED", i18n.T(lang, i18n.KeyAlreadyVoted), nil)
	case errors.Is(err, models.ErrAlreadyReported):
		ErrorResponse(c, http.StatusBadRequest, "ALREADY_REPORTED", i18n.T(lang, i18n.KeyAlreadyReported), nil)
	case errors.Is(err, models.ErrNotModified):
		ErrorResponse(c, http.StatusBadRequest, "NOT_MODIFIED", i18n.T(lang, i18n.KeyUserNotModified), nil)
	case errors.Is(err, models.ErrStoreUnavailable):
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Store operation failed")
		ErrorResponse(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", i18n.T(lang, i18n.KeyStoreDown), nil)
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Unhandled service error")
		InternalErrorResponse(c, "")
	}
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}

// GetActorFromContext returns the identity attached by OptionalAuth, if any.
func GetActorFromContext(c *gin.Context) string {
	for _, key := range []string{"user_email", "user_id"} {
		if v, exists := c.Get(key); exists {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
