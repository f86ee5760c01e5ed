package model

import (
	"time"

	"gorm.io/datatypes"
)

type StudentAttendance struct {
	ID                int32          `gorm:"primaryKey;autoIncrement;column:student_attendance_id" json:"id"`
	LmsUserID         int32          `gorm:"column:lms_user_id;not null;index:idx_user_date" json:"lmsUserId"`
	TrainingDate      datatypes.Date `gorm:"column:training_date;not null;index:idx_user_date" json:"trainingDate"`
	TrainingStartTime string         `gorm:"column:training_start_time;type:varchar(5);not null;default:''" json:"trainingStartTime"`
	TrainingEndTime   string         `gorm:"column:training_end_time;type:varchar(5);not null;default:''" json:"trainingEndTime"`
	BlankTime         *int32         `gorm:"column:blank_time" json:"blankTime"`
	Status            int16          `gorm:"column:status;not null;default:0" json:"status"`
	Note              string         `gorm:"column:note;type:varchar(100);not null;default:''" json:"note"`
	AccountID         int32          `gorm:"column:account_id" json:"accountId"`
	DeleteFlg         bool           `gorm:"column:delete_flg;not null;default:false" json:"-"`

	FirstCreateUser  int32     `gorm:"column:first_create_user" json:"-"`
	FirstCreateDate  time.Time `gorm:"column:first_create_date" json:"-"`
	LastModifiedUser int32     `gorm:"column:last_modified_user" json:"-"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date" json:"-"`
}

func (StudentAttendance) TableName() string {
	return "t_student_attendance"
}

// DateKey is the merge key used when reconciling submitted days with stored rows.
func (a *StudentAttendance) DateKey() string {
	return DateKey(time.Time(a.TrainingDate))
}

func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ToDate truncates t to a calendar date in UTC, the form training dates are stored in.
func ToDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
