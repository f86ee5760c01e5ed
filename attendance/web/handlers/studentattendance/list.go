package studentattendance

import (
	"net/http"

	attendance "axiapac.com/lms/attendance/core"
	web "axiapac.com/lms/web/common"
	"github.com/gin-gonic/gin"
)

func (ep *Endpoint) List(c *gin.Context) {
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

	user, ok := ep.target(c, db, session)
	if !ok {
		return
	}

	list, err := ep.base.Service(db).AttendanceList(c.Request.Context(), user.CourseID, user.LmsUserID)
	if err != nil {
		ep.writeError(c, err)
		return
	}

	items := make([]DailyAttendanceDTO, 0, len(list))
	for _, d := range list {
		items = append(items, toDailyAttendanceDTO(d))
	}
	c.JSON(http.StatusOK, web.NewSearchResponse(items, int64(len(items))))
}

func (ep *Endpoint) Form(c *gin.Context) {
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

	user, ok := ep.target(c, db, session)
	if !ok {
		return
	}

	list, err := ep.base.Service(db).AttendanceList(c.Request.Context(), user.CourseID, user.LmsUserID)
	if err != nil {
		ep.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(attendance.BuildAttendanceForm(*user, list)))
}

func (ep *Endpoint) Unfilled(c *gin.Context) {
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

	user, ok := ep.target(c, db, session)
	if !ok {
		return
	}

	unfilled, err := ep.base.Service(db).HasUnfilled(c.Request.Context(), user.CourseID, user.LmsUserID)
	if err != nil {
		ep.writeError(c, err)
		return
	}

	res := UnfilledDTO{Unfilled: unfilled}
	if unfilled {
		res.Message = ep.base.Messages.Message(attendance.MsgUnfilled)
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(res))
}
