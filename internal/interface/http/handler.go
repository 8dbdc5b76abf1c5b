package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
)

// maxRequestBodyBytes caps a /summarize body before it is decoded.
const maxRequestBodyBytes = 8 << 20

// SummaryHandler exposes the summarizer over HTTP.
type SummaryHandler struct {
	svc          summarizer.Service
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewSummaryHandler constructs the summarize handler.
func NewSummaryHandler(svc summarizer.Service, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		svc:          svc,
		maxBodyBytes: maxRequestBodyBytes,
		logger:       logger.With("component", "http.handler"),
	}
}

// Summarize handles POST /summarize.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var req summarizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "request_too_large", "request body is too large", err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "request body must be a JSON object with a text field", err))
		return
	}

	resp, err := h.svc.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}
