package studentattendance

import (
	"net/http"
	"strconv"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	"axiapac.com/lms/attendance/store"
	common "axiapac.com/lms/attendance/web/common"
	web "axiapac.com/lms/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Endpoint struct {
	base *common.Handler
}

func Register(r *gin.RouterGroup, base *common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/attendance", endpoint.List)
	r.GET("/attendance/form", endpoint.Form)
	r.GET("/attendance/unfilled", endpoint.Unfilled)
	r.POST("/attendance/punch-in", endpoint.PunchIn)
	r.POST("/attendance/punch-out", endpoint.PunchOut)
	r.PUT("/attendance", endpoint.Update)
}

// target resolves whose attendance a request is about. Students always get themselves;
// staff may name another user with ?userId=.
func (ep *Endpoint) target(c *gin.Context, db *gorm.DB, session attendance.Session) (*model.LmsUser, bool) {
	userID := session.UserID
	if !session.IsStudent() {
		if q := c.Query("userId"); q != "" {
			id, err := strconv.ParseInt(q, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid userId"))
				return nil, false
			}
			userID = int32(id)
		}
	}
	return ep.findUser(c, db, userID)
}

// findUser loads userID, answering 404 when there is no such user.
func (ep *Endpoint) findUser(c *gin.Context, db *gorm.DB, userID int32) (*model.LmsUser, bool) {
	user, err := store.NewUsers(db).FindUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("User not found"))
		return nil, false
	}
	return user, true
}

func (ep *Endpoint) session(c *gin.Context) (attendance.Session, bool) {
	session, ok := common.Session(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, web.NewErrorResponse("missing identity"))
	}
	return session, ok
}
