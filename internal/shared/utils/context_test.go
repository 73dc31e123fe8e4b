package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"siloops/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestGetUserID(t *testing.T) {
	c := newContext()

	_, ok := GetUserID(c)
	assert.False(t, ok)

	// the auth middleware stores the string SID from the token claims
	c.Set(constants.ContextKeyUserID, "usr_abc123")
	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "usr_abc123", id)
}

func TestGetCompanyID(t *testing.T) {
	c := newContext()

	_, ok := GetCompanyID(c)
	assert.False(t, ok)

	// admin tokens carry an empty company binding
	c.Set(constants.ContextKeyCompanyID, "")
	_, ok = GetCompanyID(c)
	assert.False(t, ok)

	c.Set(constants.ContextKeyCompanyID, "cmp_abc123")
	id, ok := GetCompanyID(c)
	assert.True(t, ok)
	assert.Equal(t, "cmp_abc123", id)
}

func TestIsAdmin(t *testing.T) {
	c := newContext()
	assert.False(t, IsAdmin(c))

	c.Set(constants.ContextKeyUserRole, constants.RoleMember)
	assert.False(t, IsAdmin(c))

	c.Set(constants.ContextKeyUserRole, constants.RoleAdmin)
	assert.True(t, IsAdmin(c))
}
