package studentattendance

import (
	"net/http"

	attendance "axiapac.com/lms/attendance/core"
	web "axiapac.com/lms/web/common"
	"github.com/gin-gonic/gin"
)

func (ep *Endpoint) PunchIn(c *gin.Context) {
	ep.punch(c, attendance.PunchIn)
}

func (ep *Endpoint) PunchOut(c *gin.Context) {
	ep.punch(c, attendance.PunchOut)
}

func (ep *Endpoint) punch(c *gin.Context, kind attendance.PunchKind) {
	session, ok := ep.session(c)
	if !ok {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	svc := ep.base.Service(db)
	var message string
	if kind == attendance.PunchIn {
		message, err = svc.PunchIn(c.Request.Context(), session)
	} else {
		message, err = svc.PunchOut(c.Request.Context(), session)
	}
	if err != nil {
		ep.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(MessageDTO{Message: message}))
}
