package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUsers handles GET /api/users
// Returns the resource directory. Users are maintained by external
// tooling; the scheduler only reads them.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.svc.Users()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetSites handles GET /api/sites
func (h *Handler) GetSites(c *gin.Context) {
	sites, err := h.svc.Sites()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sites": sites,
		"count": len(sites),
	})
}
