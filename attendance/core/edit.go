package core

import (
	"fmt"
	"time"

	"axiapac.com/lms/attendance/model"
)

// DailyAttendanceEdit is the submitted change for one calendar day. It is built once per
// request and never modified.
type DailyAttendanceEdit struct {
	date        time.Time
	startHour   *int
	startMinute *int
	endHour     *int
	endMinute   *int
	blankTime   *int32
	note        string
	statusLabel string
}

type EditInput struct {
	Date        time.Time
	StartHour   *int
	StartMinute *int
	EndHour     *int
	EndMinute   *int
	BlankTime   *int32
	Note        string
	StatusLabel string
}

func NewDailyAttendanceEdit(in EditInput) DailyAttendanceEdit {
	return DailyAttendanceEdit{
		date:        time.Time(model.ToDate(in.Date)),
		startHour:   copyInt(in.StartHour),
		startMinute: copyInt(in.StartMinute),
		endHour:     copyInt(in.EndHour),
		endMinute:   copyInt(in.EndMinute),
		blankTime:   copyInt32(in.BlankTime),
		note:        in.Note,
		statusLabel: in.StatusLabel,
	}
}

func (e DailyAttendanceEdit) Date() time.Time     { return e.date }
func (e DailyAttendanceEdit) DateKey() string     { return model.DateKey(e.date) }
func (e DailyAttendanceEdit) Note() string        { return e.note }
func (e DailyAttendanceEdit) StatusLabel() string { return e.statusLabel }
func (e DailyAttendanceEdit) BlankTime() *int32   { return copyInt32(e.blankTime) }

// StartIncomplete reports that exactly one of start hour and start minute was entered.
func (e DailyAttendanceEdit) StartIncomplete() bool {
	return (e.startHour == nil) != (e.startMinute == nil)
}

func (e DailyAttendanceEdit) EndIncomplete() bool {
	return (e.endHour == nil) != (e.endMinute == nil)
}

// StartText composes the start pair as "H:M", or "" unless both parts are present.
func (e DailyAttendanceEdit) StartText() string {
	return composeTime(e.startHour, e.startMinute)
}

func (e DailyAttendanceEdit) EndText() string {
	return composeTime(e.endHour, e.endMinute)
}

// StartTime returns nil when the pair is not fully entered.
func (e DailyAttendanceEdit) StartTime() (*TrainingTime, error) {
	return ParseOptionalTime(e.StartText())
}

func (e DailyAttendanceEdit) EndTime() (*TrainingTime, error) {
	return ParseOptionalTime(e.EndText())
}

func composeTime(hour, minute *int) string {
	if hour == nil || minute == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d", *hour, *minute)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
