package common

import (
	"context"
	"database/sql"
	"net"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/store"
	"axiapac.com/lms/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Databases hands out a connection bound to a tenant schema. *core.DatabaseManager
// implements it.
type Databases interface {
	GetDB(ctx context.Context, schema string) (*gorm.DB, *sql.Conn, error)
	SchemaForHost(host string) string
}

type Handler struct {
	Dm       Databases
	Messages attendance.MessageResolver
	Clock    attendance.Clock
	// Hours applies to courses without their own work hours.
	Hours attendance.WorkHours
}

func GetHostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func (h *Handler) GetDB(r *gin.Context) (*gorm.DB, *sql.Conn, error) {
	hostname := GetHostname(r.Request.Host)
	return h.Dm.GetDB(r.Request.Context(), h.Dm.SchemaForHost(hostname))
}

// Service wires the attendance service to db.
func (h *Handler) Service(db *gorm.DB) *attendance.Service {
	return &attendance.Service{
		Clock:    h.Clock,
		Calendar: store.NewCalendar(db, h.Hours),
		Repo:     store.NewRepository(db),
		Messages: h.Messages,
	}
}

// Session returns the acting user from the verified token.
func Session(c *gin.Context) (attendance.Session, bool) {
	claims, ok := middlewares.GetIdentity(c)
	if !ok {
		return attendance.Session{}, false
	}
	return attendance.Session{
		UserID:    claims.UserID,
		AccountID: claims.AccountID,
		CourseID:  claims.CourseID,
		Role:      claims.Role,
		UserName:  claims.UniqueName,
	}, true
}
