package utils

import (
	"github.com/gin-gonic/gin"

	"siloops/internal/shared/constants"
)

// GetUserID extracts the authenticated user SID from the gin context.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// GetCompanyID extracts the caller's company ID from the gin context.
func GetCompanyID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyCompanyID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return false
	}
	role, ok := value.(string)
	return ok && role == constants.RoleAdmin
}
