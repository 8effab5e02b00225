package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"community_site/internal/auth"
	"community_site/internal/models"
	"community_site/internal/repository"
)

// ListAudit pages backwards through the audit trail using an id cursor.
func ListAudit(audit *repository.AuditRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		var afterID int64
		if cursorStr := c.Query("after_id"); cursorStr != "" {
			if parsed, err := strconv.ParseInt(cursorStr, 10, 64); err == nil && parsed > 0 {
				afterID = parsed
			}
		}

		logs, next, err := audit.List(c.Request.Context(), afterID, c.Query("q"), limit)
		if err != nil {
			internalError(c, "list audit", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"logs":        logs,
			"next_cursor": next,
		})
	}
}

// recordAudit stores an audit entry. Failures are logged and never fail the
// request that triggered them.
func recordAudit(c *gin.Context, audit *repository.AuditRepository, adminID int64, initiator, action, resourceType string, resourceID int64, meta map[string]any) {
	entry := models.AuditLog{
		AdminID:       adminID,
		Action:        action,
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		IP:            c.ClientIP(),
		UserAgent:     c.GetHeader("User-Agent"),
		InitiatorName: initiator,
	}
	if meta != nil {
		if raw, err := json.Marshal(meta); err == nil {
			entry.Metadata = datatypes.JSON(raw)
		}
	}
	if err := audit.Record(c.Request.Context(), &entry); err != nil {
		slog.WarnContext(c.Request.Context(), "audit record failed",
			slog.String("action", action),
			slog.String("error", err.Error()),
			slog.String("request_id", c.GetString(RequestIDKey)),
		)
	}
}

func initiator(c *gin.Context) (int64, string) {
	if cl := auth.ClaimsFrom(c); cl != nil {
		return cl.AdminID, cl.Email
	}
	return 0, ""
}
