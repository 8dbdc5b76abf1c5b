package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
)

// HTTPError is the transport view of a failure: status, machine code and the
// message safe to show the caller. Err keeps the cause for logs only.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// asHTTPError maps any error onto a response. Summarizer errors keep their
// code; invalid input is a client error, anything else an upstream failure.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, apperrors.Message(err), err)
	case apperrors.IsCode(err, apperrors.CodeNotFound):
		return NewHTTPError(http.StatusNotFound, apperrors.CodeNotFound, apperrors.Message(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeUpstreamFailure, "failed to generate summary", err)
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
