package studentattendance

import (
	"errors"
	"log"
	"net/http"

	attendance "axiapac.com/lms/attendance/core"
	web "axiapac.com/lms/web/common"
	"github.com/gin-gonic/gin"
)

const msgValidationFailed = "valid.failed"

// writeError maps service errors to responses: validation and parse errors 400,
// authorization 403, state conflicts 409, anything else 500.
func (ep *Endpoint) writeError(c *gin.Context, err error) {
	messages := ep.base.Messages

	var verr *attendance.ValidationErrors
	if errors.As(err, &verr) {
		details := make([]web.ErrorDetail, 0, verr.Len())
		for _, f := range verr.Fields {
			details = append(details, web.ErrorDetail{
				Field:   f.Field,
				Message: messages.Message(f.Code, f.Args...),
			})
		}
		for _, f := range verr.Forms {
			index := f.Index
			details = append(details, web.ErrorDetail{
				Index:   &index,
				Message: messages.Message(f.Code, f.Args...),
			})
		}
		c.JSON(http.StatusBadRequest, web.NewValidationErrorResponse(messages.Message(msgValidationFailed), details))
		return
	}

	var authErr *attendance.AuthorizationError
	var conflict *attendance.StateConflictError
	var parseErr *attendance.ParseError
	switch {
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, web.NewErrorResponse(messages.Message(authErr.MessageCode())))
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, web.NewErrorResponse(messages.Message(conflict.MessageCode())))
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(messages.Message(parseErr.MessageCode(), parseErr.MessageArgs()...)))
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
