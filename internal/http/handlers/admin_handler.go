package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"community_site/internal/models"
	"community_site/internal/registration"
	"community_site/internal/repository"
)

// ListMemberships pages through applications, newest first, optionally
// filtered by ?status=.
func ListMemberships(repo *repository.MembershipRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParam(c)
		res, err := repo.List(c.Request.Context(), strings.TrimSpace(c.Query("status")), p)
		if err != nil {
			internalError(c, "list memberships", err)
			return
		}
		listing(c, "memberships", p, res)
	}
}

// UpdateMembershipStatus approves or declines an application and records the
// change in the audit trail.
func UpdateMembershipStatus(repo *repository.MembershipRepository, audit *repository.AuditRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			notFound(c, "membership")
			return
		}

		var in struct {
			Status models.MembershipStatus `json:"status" binding:"required,oneof=pending approved declined"`
		}
		if !bindJSON(c, &in) {
			return
		}

		ctx := c.Request.Context()
		before, err := repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				notFound(c, "membership")
				return
			}
			internalError(c, "get membership", err)
			return
		}

		updated, err := repo.SetStatus(ctx, id, in.Status, time.Now())
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				notFound(c, "membership")
				return
			}
			internalError(c, "update membership status", err)
			return
		}

		adminID, name := initiator(c)
		recordAudit(c, audit, adminID, name, "membership.status", "membership", id, map[string]any{
			"from":  before.Status,
			"to":    updated.Status,
			"email": updated.Email,
		})

		c.JSON(http.StatusOK, gin.H{"membership": updated})
	}
}

// ListParticipations returns every registration for an event with totals.
func ListParticipations(repo *repository.ParticipationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			notFound(c, "event")
			return
		}

		ctx := c.Request.Context()
		ev, err := repo.FindEvent(ctx, id)
		if err != nil {
			if errors.Is(err, registration.ErrEventNotFound) {
				notFound(c, "event")
				return
			}
			internalError(c, "find event", err)
			return
		}

		rows, err := repo.ForEvent(ctx, id)
		if err != nil {
			internalError(c, "list participations", err)
			return
		}
		totals, err := repo.Totals(ctx, id)
		if err != nil {
			internalError(c, "participation totals", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"event":          ev,
			"totals":         totals,
			"participations": rows,
		})
	}
}
