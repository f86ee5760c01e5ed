package core

import "axiapac.com/lms/attendance/model"

// DailyAttendanceView is one editable day of the attendance form.
type DailyAttendanceView struct {
	StudentAttendanceID *int32 `json:"studentAttendanceId"`
	TrainingDate        string `json:"trainingDate"`
	DispTrainingDate    string `json:"dispTrainingDate"`
	SectionName         string `json:"sectionName"`
	TrainingStartTime   string `json:"trainingStartTime"`
	StartHour           *int   `json:"trainingStartTimeHour"`
	StartMinute         *int   `json:"trainingStartTimeMinute"`
	TrainingEndTime     string `json:"trainingEndTime"`
	EndHour             *int   `json:"trainingEndTimeHour"`
	EndMinute           *int   `json:"trainingEndTimeMinute"`
	BlankTime           *int32 `json:"blankTime"`
	BlankTimeValue      string `json:"blankTimeValue"`
	Status              int16  `json:"status"`
	StatusDispName      string `json:"statusDispName"`
	Note                string `json:"note"`
	IsToday             bool   `json:"isToday"`
}

type AttendanceForm struct {
	LmsUserID       int32                 `json:"lmsUserId"`
	UserName        string                `json:"userName"`
	LeaveFlg        bool                  `json:"leaveFlg"`
	LeaveDate       string                `json:"leaveDate,omitempty"`
	DispLeaveDate   string                `json:"dispLeaveDate,omitempty"`
	BlankTimes      []Choice              `json:"blankTimes"`
	TrainingHours   []Choice              `json:"trainingHours"`
	TrainingMinutes []Choice              `json:"trainingMinutes"`
	AttendanceList  []DailyAttendanceView `json:"attendanceList"`
}

// BuildAttendanceForm prepares the edit form for user from the attendance list.
func BuildAttendanceForm(user model.LmsUser, list []DailyAttendance) AttendanceForm {
	form := AttendanceForm{
		LmsUserID:       user.LmsUserID,
		UserName:        user.UserName,
		LeaveFlg:        user.LeaveDate != nil,
		BlankTimes:      BlankTimeChoices(),
		TrainingHours:   HourChoices(),
		TrainingMinutes: MinuteChoices(),
		AttendanceList:  make([]DailyAttendanceView, 0, len(list)),
	}
	if user.LeaveDate != nil {
		form.LeaveDate = user.LeaveDate.Format("2006-01-02")
		form.DispLeaveDate = user.LeaveDate.Format("January 2, 2006")
	}

	for _, d := range list {
		view := DailyAttendanceView{
			StudentAttendanceID: d.StudentAttendanceID,
			TrainingDate:        model.DateKey(d.TrainingDate),
			DispTrainingDate:    d.TrainingDate.Format("Jan 2, 2006 (Mon)"),
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
		view.StartHour, view.StartMinute = splitTime(d.TrainingStartTime)
		view.EndHour, view.EndMinute = splitTime(d.TrainingEndTime)
		form.AttendanceList = append(form.AttendanceList, view)
	}
	return form
}

// splitTime returns nil parts for an empty or unreadable stored time.
func splitTime(s string) (*int, *int) {
	t, err := ParseOptionalTime(s)
	if err != nil || t == nil {
		return nil, nil
	}
	h, m := t.Hour(), t.Minute()
	return &h, &m
}
