package model

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	CourseID      int32  `gorm:"primaryKey;column:course_id" json:"id"`
	CourseName    string `gorm:"column:course_name" json:"name"`
	WorkStartTime string `gorm:"column:work_start_time;type:varchar(5)" json:"workStartTime"`
	WorkEndTime   string `gorm:"column:work_end_time;type:varchar(5)" json:"workEndTime"`
	DeleteFlg     bool   `gorm:"column:delete_flg;not null;default:false" json:"-"`
}

func (Course) TableName() string {
	return "m_course"
}

// Section is one scheduled training day of a course.
type Section struct {
	SectionID    int32          `gorm:"primaryKey;autoIncrement;column:section_id" json:"id"`
	CourseID     int32          `gorm:"column:course_id;not null;index" json:"courseId"`
	SectionName  string         `gorm:"column:section_name" json:"sectionName"`
	TrainingDate datatypes.Date `gorm:"column:training_date;not null" json:"trainingDate"`
	DeleteFlg    bool           `gorm:"column:delete_flg;not null;default:false" json:"-"`
}

func (Section) TableName() string {
	return "m_section"
}

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

type LmsUser struct {
	LmsUserID int32      `gorm:"primaryKey;column:lms_user_id" json:"id"`
	UserName  string     `gorm:"column:user_name" json:"userName"`
	Email     string     `gorm:"column:email" json:"email"`
	Role      string     `gorm:"column:role;type:varchar(20)" json:"role"`
	CourseID  int32      `gorm:"column:course_id" json:"courseId"`
	AccountID int32      `gorm:"column:account_id" json:"accountId"`
	LeaveDate *time.Time `gorm:"column:leave_date" json:"leaveDate"`
	DeleteFlg bool       `gorm:"column:delete_flg;not null;default:false" json:"-"`
}

func (LmsUser) TableName() string {
	return "m_lms_user"
}

// AttendanceManagement is one scheduled day of a course joined with the user's attendance
// for that day. StudentAttendanceID is nil when nothing has been recorded yet.
type AttendanceManagement struct {
	StudentAttendanceID *int32    `gorm:"column:student_attendance_id"`
	TrainingDate        time.Time `gorm:"column:training_date"`
	SectionName         string    `gorm:"column:section_name"`
	TrainingStartTime   string    `gorm:"column:training_start_time"`
	TrainingEndTime     string    `gorm:"column:training_end_time"`
	BlankTime           *int32    `gorm:"column:blank_time"`
	Status              *int16    `gorm:"column:status"`
	Note                string    `gorm:"column:note"`
}
