package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"yourfuture/internal/logger"
	"yourfuture/internal/model"
	"yourfuture/internal/serrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrConflict:     http.StatusConflict,
}

// respondError writes err as {"error": message} with the status of its kind.
// Anything without a known kind is logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var sErr *serrors.Error
	if errors.As(err, &sErr) {
		if status, ok := kindStatus[sErr.Kind()]; ok {
			c.JSON(status, gin.H{"error": sErr.Message()})
			return
		}
	}

	logger.Error(c.Request.Context(), "request failed", zap.Error(err),
		zap.String("method", c.Request.Method), zap.String("route", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}

// bindModeration reads the optional body of a moderation endpoint. An empty
// body is a request without a reason; the service decides whether one is
// needed after checking the entity's status.
func bindModeration(c *gin.Context) (model.ModerationRequest, bool) {
	var req model.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return req, false
	}

	return req, true
}

// pathID parses the :id parameter, answering 400 itself when it is not a
// positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return id, true
}

// mineOnly reads the "only my entities" switch of listing endpoints.
func mineOnly(c *gin.Context) bool {
	for _, key := range []string{"filter_by_creator", "mine_only"} {
		if v, err := strconv.ParseBool(strings.TrimSpace(c.Query(key))); err == nil && v {
			return true
		}
	}
	return false
}
