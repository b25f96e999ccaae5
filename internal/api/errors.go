package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-folio/internal/logging"
)

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func mapError(err error) (int, errorResponse) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorResponse{Error: errorBody{Code: "unknown_error", Message: "unknown error"}}
	case goerrors.IsCategory(err, goerrors.CategoryNotFound):
		return http.StatusNotFound, errorResponse{Error: errorBody{Code: "not_found", Message: err.Error()}}
	case goerrors.IsCategory(err, goerrors.CategoryValidation):
		return http.StatusBadRequest, errorResponse{Error: errorBody{Code: "bad_request", Message: err.Error()}}
	default:
		return http.StatusInternalServerError, errorResponse{Error: errorBody{Code: "internal_error", Message: "internal server error"}}
	}
}

func (h *handlers) writeError(c *gin.Context, err error) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		ctx := c.Request.Context()
		payload.Error.RequestID = logging.RequestID(ctx)
		logging.WithError(h.logger, err).WithContext(ctx).Error("api.request.failed")
	}
	c.JSON(status, payload)
}

func writeBadRequest(c *gin.Context, message string) {
	writeErrorCode(c, http.StatusBadRequest, "bad_request", message)
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func parseBoolQuery(value string, defaultValue bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}
