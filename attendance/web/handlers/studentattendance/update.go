package studentattendance

import (
	"net/http"

	attendance "axiapac.com/lms/attendance/core"
	web "axiapac.com/lms/web/common"
	"github.com/gin-gonic/gin"
)

func (ep *Endpoint) Update(c *gin.Context) {
	session, ok := ep.session(c)
	if !ok {
		return
	}

	var dto AttendanceUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	edits := make([]attendance.DailyAttendanceEdit, 0, len(dto.AttendanceList))
	for _, d := range dto.AttendanceList {
		if d.TrainingDate.IsZero() {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Field 'trainingDate' is required"))
			return
		}
		edits = append(edits, d.toEdit())
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	userID := session.UserID
	if !session.IsStudent() && dto.LmsUserID != 0 {
		userID = dto.LmsUserID
	}
	user, ok := ep.findUser(c, db, userID)
	if !ok {
		return
	}

	message, err := ep.base.Service(db).Update(c.Request.Context(), session, attendance.UpdateRequest{
		UserID:   user.LmsUserID,
		CourseID: user.CourseID,
		Edits:    edits,
	})
	if err != nil {
		ep.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(MessageDTO{Message: message}))
}
