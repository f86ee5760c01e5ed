package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	"gorm.io/gorm"
)

// Calendar answers schedule questions from m_section and m_course. Courses without their
// own work hours use Defaults.
type Calendar struct {
	db       *gorm.DB
	Defaults core.WorkHours
}

func NewCalendar(db *gorm.DB, defaults core.WorkHours) *Calendar {
	return &Calendar{db: db, Defaults: defaults}
}

func (c *Calendar) IsWorkDay(ctx context.Context, courseID int32, date time.Time) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&model.Section{}).
		Where("course_id = ? AND training_date = ? AND delete_flg = ?", courseID, model.ToDate(date), false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *Calendar) WorkHours(ctx context.Context, courseID int32) (core.WorkHours, error) {
	var course model.Course
	err := c.db.WithContext(ctx).
		Where("course_id = ? AND delete_flg = ?", courseID, false).
		Take(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Defaults, nil
	}
	if err != nil {
		return core.WorkHours{}, err
	}

	hours := c.Defaults
	if course.WorkStartTime != "" {
		start, err := core.ParseTrainingTime(course.WorkStartTime)
		if err != nil {
			return core.WorkHours{}, fmt.Errorf("course %d work start: %w", courseID, err)
		}
		hours.Start = start
	}
	if course.WorkEndTime != "" {
		end, err := core.ParseTrainingTime(course.WorkEndTime)
		if err != nil {
			return core.WorkHours{}, fmt.Errorf("course %d work end: %w", courseID, err)
		}
		hours.End = end
	}
	return hours, nil
}
