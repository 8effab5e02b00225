package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community_site/internal/auth"
	"community_site/internal/repository"
)

// AdminMe returns the authenticated administrator.
func AdminMe(admins *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl := auth.ClaimsFrom(c)
		if cl == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		admin, err := admins.Get(c.Request.Context(), cl.AdminID)
		if err != nil {
			notFound(c, "admin")
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": admin})
	}
}
