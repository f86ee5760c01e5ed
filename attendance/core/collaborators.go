package core

import (
	"context"
	"time"

	"axiapac.com/lms/attendance/model"
)

type Clock interface {
	Now() time.Time
	// TrainingDate is the course's current training day, truncated to a date.
	TrainingDate(courseID int32) time.Time
}

type CourseCalendar interface {
	IsWorkDay(ctx context.Context, courseID int32, date time.Time) (bool, error)
	WorkHours(ctx context.Context, courseID int32) (WorkHours, error)
}

type Repository interface {
	FindByUserAndDate(ctx context.Context, userID int32, date time.Time) (*model.StudentAttendance, error)
	FindAllByUser(ctx context.Context, userID int32) ([]model.StudentAttendance, error)
	Insert(ctx context.Context, rec *model.StudentAttendance) error
	Update(ctx context.Context, rec *model.StudentAttendance) error
	CountUnfilled(ctx context.Context, userID int32, before time.Time) (int64, error)
	ListManagement(ctx context.Context, courseID, userID int32) ([]model.AttendanceManagement, error)
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}

type MessageResolver interface {
	Message(code string, args ...string) string
}

// Session is the acting user of a request.
type Session struct {
	UserID    int32
	AccountID int32
	CourseID  int32
	Role      string
	UserName  string
}

func (s Session) IsStudent() bool {
	return s.Role == model.RoleStudent
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

func (c SystemClock) TrainingDate(courseID int32) time.Time {
	return time.Time(model.ToDate(c.Now()))
}
