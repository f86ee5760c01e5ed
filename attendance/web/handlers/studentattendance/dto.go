package studentattendance

import (
	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	web "axiapac.com/lms/web/common"
)

type DailyAttendanceDTO struct {
	StudentAttendanceID *int32 `json:"studentAttendanceId"`
	TrainingDate        string `json:"trainingDate"`
	SectionName         string `json:"sectionName"`
	TrainingStartTime   string `json:"trainingStartTime"`
	TrainingEndTime     string `json:"trainingEndTime"`
	BlankTime           *int32 `json:"blankTime"`
	BlankTimeValue      string `json:"blankTimeValue"`
	Status              int16  `json:"status"`
	StatusDispName      string `json:"statusDispName"`
	Note                string `json:"note"`
	IsToday             bool   `json:"isToday"`
}

func toDailyAttendanceDTO(d attendance.DailyAttendance) DailyAttendanceDTO {
	return DailyAttendanceDTO{
		StudentAttendanceID: d.StudentAttendanceID,
		TrainingDate:        model.DateKey(d.TrainingDate),
		SectionName:         d.SectionName,
		TrainingStartTime:   d.TrainingStartTime,
		TrainingEndTime:     d.TrainingEndTime,
		BlankTime:           d.BlankTime,
		BlankTimeValue:      d.BlankTimeValue,
		Status:              d.Status.Code(),
		StatusDispName:      d.StatusDispName,
		Note:                d.Note,
		IsToday:             d.IsToday,
	}
}

type DailyAttendanceEditDTO struct {
	TrainingDate            web.DateOnly `json:"trainingDate"`
	TrainingStartTimeHour   *int         `json:"trainingStartTimeHour" binding:"omitempty,min=0,max=23"`
	TrainingStartTimeMinute *int         `json:"trainingStartTimeMinute" binding:"omitempty,min=0,max=59"`
	TrainingEndTimeHour     *int         `json:"trainingEndTimeHour" binding:"omitempty,min=0,max=23"`
	TrainingEndTimeMinute   *int         `json:"trainingEndTimeMinute" binding:"omitempty,min=0,max=59"`
	BlankTime               *int32       `json:"blankTime" binding:"omitempty,min=0"`
	Note                    string       `json:"note"`
	StatusDispName          string       `json:"statusDispName"`
}

func (d DailyAttendanceEditDTO) toEdit() attendance.DailyAttendanceEdit {
	return attendance.NewDailyAttendanceEdit(attendance.EditInput{
		Date:        d.TrainingDate.Time,
		StartHour:   d.TrainingStartTimeHour,
		StartMinute: d.TrainingStartTimeMinute,
		EndHour:     d.TrainingEndTimeHour,
		EndMinute:   d.TrainingEndTimeMinute,
		BlankTime:   d.BlankTime,
		Note:        d.Note,
		StatusLabel: d.StatusDispName,
	})
}

type AttendanceUpdateDTO struct {
	LmsUserID      int32                    `json:"lmsUserId"`
	AttendanceList []DailyAttendanceEditDTO `json:"attendanceList" binding:"required,dive"`
}

type MessageDTO struct {
	Message string `json:"message"`
}

type UnfilledDTO struct {
	Unfilled bool   `json:"unfilled"`
	Message  string `json:"message,omitempty"`
}
