package common

import (
	"net/http/httptest"
	"testing"

	"axiapac.com/lms/security"
	"axiapac.com/lms/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := Session(c)
	assert.False(t, ok)

	c.Set(middlewares.IdentityKey, &security.IdentityClaims{
		Identity: security.Identity{
			UserID: 7, UniqueName: "sam", Role: "student", CourseID: 2, AccountID: 3,
		},
		RegisteredClaims: jwt.RegisteredClaims{ID: "token-1"},
	})

	session, ok := Session(c)
	assert.True(t, ok)
	assert.Equal(t, int32(7), session.UserID)
	assert.Equal(t, int32(2), session.CourseID)
	assert.Equal(t, int32(3), session.AccountID)
	assert.Equal(t, "student", session.Role)
	assert.Equal(t, "sam", session.UserName)
}
