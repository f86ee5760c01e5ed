package export

import (
	"fmt"
	"io"
	"time"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Attendance"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{"Date", "Section", "Start", "End", "Break", "Status", "Note"}

// WriteAttendanceSheet writes one user's attendance list as an xlsx workbook.
func WriteAttendanceSheet(w io.Writer, user model.LmsUser, list []attendance.DailyAttendance) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	if err := f.SetCellValue(SheetName, "A1", fmt.Sprintf("%s (%d)", user.UserName, user.LmsUserID)); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, "A3", "G3", bold); err != nil {
		return err
	}

	for r, d := range list {
		row := []interface{}{
			model.DateKey(d.TrainingDate),
			d.SectionName,
			d.TrainingStartTime,
			d.TrainingEndTime,
			d.BlankTimeValue,
			d.StatusDispName,
			d.Note,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+4)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "G", "G", 40); err != nil {
		return err
	}

	return f.Write(w)
}

// ObjectKey names an exported sheet in the export bucket.
func ObjectKey(user model.LmsUser, now time.Time) string {
	return fmt.Sprintf("attendance/%d/%s-%s.xlsx", user.LmsUserID, now.Format("20060102"), uuid.NewString())
}
