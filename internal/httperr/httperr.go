package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ContextTraceID = "traceID"

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
	Details string `json:"details,omitempty"`
}

// ShowDetails exposes internal error text on 500 responses. Off in production.
var ShowDetails = false

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
		TraceID: c.GetString(ContextTraceID),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Internal writes the opaque 500 payload.
func Internal(c *gin.Context, err error) {
	body := HTTPError{
		Code:    "server_error",
		Message: "An unexpected error occurred.",
		TraceID: c.GetString(ContextTraceID),
	}
	if ShowDetails && err != nil {
		body.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// Respond maps a use-case error onto the HTTP taxonomy.
func Respond(c *gin.Context, err error) {
	code, ok := BusinessCode(err)
	switch {
	case ok && IsNotFound(err):
		NotFound(c, code, Message(code))
	case ok && IsForbidden(err):
		Forbidden(c, code, Message(code))
	case ok && IsConflict(err):
		zap.L().Info("request conflict",
			zap.String("path", c.FullPath()),
			zap.String("error_code", code),
		)
		BadRequest(c, code, Message(code))
	case ok:
		BadRequest(c, code, Message(code))
	default:
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("trace_id", c.GetString(ContextTraceID)),
			zap.Error(err),
		)
		Internal(c, err)
	}
}
