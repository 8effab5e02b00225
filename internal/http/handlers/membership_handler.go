package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"community_site/internal/auth"
	"community_site/internal/forms"
	"community_site/internal/membership"
	"community_site/internal/repository"
)

// FeedCookie describes the member feed access cookie.
type FeedCookie struct {
	Name   string
	TTL    time.Duration
	Secret string
	Secure bool
}

type verifyRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email,max=255"`
}

// VerifyMembership checks a name/email pair against stored applications and
// sets the feed cookie when access is granted.
func VerifyMembership(v *membership.Verifier, cookie FeedCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in verifyRequest
		if !bindJSON(c, &in) {
			return
		}

		d, err := v.Verify(c.Request.Context(), in.Name, in.Email)
		if err != nil {
			if errors.Is(err, membership.ErrEmptyEmail) {
				validationError(c, forms.FieldErrors{"email": "is required"})
				return
			}
			internalError(c, "verify membership", err)
			return
		}

		if !d.Granted() {
			c.JSON(http.StatusForbidden, gin.H{"error": d.Message, "reason": d.Outcome})
			return
		}

		token, err := auth.IssueFeedToken(cookie.Secret, d.Record.ID, time.Now(), cookie.TTL)
		if err != nil {
			internalError(c, "issue feed token", err)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie.Name, token, int(cookie.TTL.Seconds()), "/", "", cookie.Secure, true)

		c.JSON(http.StatusOK, gin.H{"message": d.Message, "reason": d.Outcome})
	}
}

// FeedAccess reports whether the request carries a valid feed cookie.
func FeedAccess(cookie FeedCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookie.Name)
		if err != nil || raw == "" {
			c.JSON(http.StatusOK, gin.H{"access": false})
			return
		}
		if _, err := auth.ParseFeedToken(cookie.Secret, raw); err != nil {
			c.JSON(http.StatusOK, gin.H{"access": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"access": true})
	}
}

// ApplyMembership stores a new pending application.
func ApplyMembership(repo *repository.MembershipRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in forms.MembershipApplication
		if !bindJSON(c, &in) {
			return
		}

		m := in.Model()
		if err := repo.Create(c.Request.Context(), m); err != nil {
			internalError(c, "create membership", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": m.ID, "status": m.Status})
	}
}
