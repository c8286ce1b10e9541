package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gamereviews/backend/internal/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"review 12: record not found"`
}

// respondError answers with the status that matches err. Internal errors are
// logged and replaced by a generic message.
func respondError(c *gin.Context, err error) {
	status := apperror.StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"err", err,
		)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

func parseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", idStr, apperror.ErrValidation)
	}
	return uint(id), nil
}

// includeRules turns ?include=a,b into serializer rules for the derived
// views named in allowed. Unknown names are ignored.
func includeRules(c *gin.Context, allowed ...string) []string {
	raw := c.Query("include")
	if raw == "" {
		return nil
	}

	var rules []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		for _, a := range allowed {
			if name == a {
				rules = append(rules, name)
			}
		}
	}
	return rules
}
