package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"community_site/internal/auth"
	"community_site/internal/models"
	"community_site/internal/repository"
)

// AdminLogin authenticates an administrator and returns a session JWT, both
// as a cookie and in the body.
func AdminLogin(admins *repository.AdminRepository, audit *repository.AuditRepository, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		admin, err := admins.ByEmail(c.Request.Context(), input.Email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			internalError(c, "admin lookup", err)
			return
		}
		if admin == nil || !auth.CheckPassword(admin.PasswordHash, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if admin.Status != models.AdminActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account suspended"})
			return
		}

		now := time.Now()
		token, err := auth.IssueAdminToken(secret, admin, now)
		if err != nil {
			internalError(c, "issue admin token", err)
			return
		}
		_ = admins.TouchLogin(c.Request.Context(), admin.ID, now)
		recordAudit(c, audit, admin.ID, admin.Email, "admin.login", "admin", admin.ID, nil)

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(auth.AdminCookie, token, int(auth.AdminTokenTTL.Seconds()), "/", "", secure, true)

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"admin": gin.H{
				"id":    admin.ID,
				"email": admin.Email,
				"name":  admin.Name,
			},
		})
	}
}

// AdminLogout clears the session cookie.
func AdminLogout(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(auth.AdminCookie, "", -1, "/", "", secure, true)
		c.Status(http.StatusNoContent)
	}
}
