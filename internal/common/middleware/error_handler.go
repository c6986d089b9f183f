package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giveaway-backend/internal/common/errors"
	"giveaway-backend/internal/common/logger"
)

// RequestID tags every request with an ID, honoring one supplied by the
// caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// ErrorHandler recovers panics and renders them as the standard error
// envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error")
		RespondError(c, appErr)
	})
}

// RespondError writes an AppError as the {success, message} envelope with
// the HTTP status matching its code.
func RespondError(c *gin.Context, appErr *errors.AppError) {
	logError(c, appErr)
	c.JSON(httpStatus(appErr), gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

// RespondWith maps any error to the envelope, wrapping unexpected ones so
// raw internal faults never reach the caller.
func RespondWith(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		RespondError(c, appErr)
		return
	}
	RespondError(c, errors.Wrap(err, errors.ErrCodeInternal, "Internal server error"))
}

func httpStatus(appErr *errors.AppError) int {
	switch appErr.Code {
	// The duplicate-channel case is reported as a bad request, not a
	// conflict, to keep the public contract stable.
	case errors.ErrCodeValidation, errors.ErrCodeChannelExists:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeChannelNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func logError(c *gin.Context, appErr *errors.AppError) {
	evt := logger.Info()
	if appErr.IsInternal() {
		evt = logger.Error()
	}
	if appErr.Cause != nil {
		evt = evt.Err(appErr.Cause)
	}
	evt.
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message).
		Msg("Request failed")
}

// GetRequestID returns the request ID set by RequestID.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}
