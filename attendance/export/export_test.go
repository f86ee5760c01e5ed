package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteAttendanceSheet(t *testing.T) {
	list := []attendance.DailyAttendance{
		{
			TrainingDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), SectionName: "Java basics",
			TrainingStartTime: "09:05", TrainingEndTime: "18:00", BlankTimeValue: "1h 0m",
			Status: attendance.StatusTardy, StatusDispName: "Late", Note: "bus",
		},
		{TrainingDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), SectionName: "SQL"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendanceSheet(&buf, model.LmsUser{LmsUserID: 7, UserName: "Sam"}, list))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Sam (7)", rows[0][0])
	assert.Equal(t, headers, rows[2])
	assert.Equal(t, []string{"2024-04-01", "Java basics", "09:05", "18:00", "1h 0m", "Late", "bus"}, rows[3])
	assert.Equal(t, []string{"2024-04-02", "SQL"}, rows[4])
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey(model.LmsUser{LmsUserID: 7}, time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(key, "attendance/7/20240430-"))
	assert.True(t, strings.HasSuffix(key, ".xlsx"))
}
