package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"axiapac.com/lms/attendance/model"
	"axiapac.com/lms/utils"
	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{"2006-01-02", "2006/01/02", "02/01/2006", "2/1/2006", "02-Jan-2006", "01-02-06"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown date format: %s", s)
}

func readCSV(r io.Reader) ([][]string, error) {
	return utils.ParseCSV(r)
}

// readXLSX returns the rows of the first sheet.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// toSections converts "date,section[,id]" rows into sections of courseID. A header row
// and blank rows are skipped.
func toSections(rows [][]string, courseID int32) ([]model.Section, error) {
	var sections []model.Section
	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date") {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected date and section", i+1)
		}

		date, err := parseDate(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		section := model.Section{
			CourseID:     courseID,
			SectionName:  strings.TrimSpace(row[1]),
			TrainingDate: model.ToDate(date),
		}
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			id, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid id: %w", i+1, err)
			}
			section.SectionID = int32(id)
		}
		sections = append(sections, section)
	}
	return sections, nil
}
