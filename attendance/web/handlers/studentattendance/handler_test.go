package studentattendance

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/messages"
	"axiapac.com/lms/attendance/model"
	"axiapac.com/lms/attendance/store"
	common "axiapac.com/lms/attendance/web/common"
	"axiapac.com/lms/security"
	"axiapac.com/lms/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

type sqliteDatabases struct {
	db *gorm.DB
}

func (s sqliteDatabases) SchemaForHost(string) string { return "main" }

func (s sqliteDatabases) GetDB(ctx context.Context, _ string) (*gorm.DB, *sql.Conn, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, nil, err
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s.db.WithContext(ctx), conn, nil
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func (c fixedClock) TrainingDate(int32) time.Time { return time.Time(model.ToDate(time.Time(c))) }

func date(d int) time.Time {
	return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC)
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	require.NoError(t, db.Create(&model.Course{CourseID: 2, CourseName: "Java", WorkStartTime: "09:00", WorkEndTime: "18:00"}).Error)
	require.NoError(t, db.Create([]model.Section{
		{CourseID: 2, SectionName: "Java basics", TrainingDate: model.ToDate(date(1))},
		{CourseID: 2, SectionName: "SQL", TrainingDate: model.ToDate(date(2))},
	}).Error)
	require.NoError(t, db.Create([]model.LmsUser{
		{LmsUserID: 7, UserName: "Sam", Role: model.RoleStudent, CourseID: 2, AccountID: 3},
		{LmsUserID: 1, UserName: "Jo", Role: model.RoleStaff, CourseID: 2, AccountID: 3},
	}).Error)

	resolver, err := messages.New()
	require.NoError(t, err)
	secret, err := security.DecodeSecret(testSecret)
	require.NoError(t, err)

	r := gin.New()
	group := r.Group("/api/lms/v1.0")
	group.Use(middlewares.Authentication(secret))
	Register(group, &common.Handler{
		Dm:       sqliteDatabases{db: db},
		Messages: resolver,
		Clock:    fixedClock(time.Date(2024, 4, 2, 9, 20, 0, 0, time.UTC)),
	})
	return &testServer{router: r, db: db}
}

func (s *testServer) do(t *testing.T, role string, userID int32, method, path string, body any) (int, map[string]any) {
	t.Helper()
	token, err := security.CreateIdentityToken(&security.LmsIdentity{
		ID: userID, Role: role, CourseID: 2, AccountID: 3,
	}, testSecret, 60)
	require.NoError(t, err)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/lms/v1.0"+path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestPunchInTwice(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, model.RoleStudent, 7, http.MethodPost, "/attendance/punch-in", nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Attendance has been updated.", body["data"].(map[string]any)["message"])

	var rec model.StudentAttendance
	require.NoError(t, s.db.Where("lms_user_id = ?", 7).Take(&rec).Error)
	assert.Equal(t, "09:20", rec.TrainingStartTime)
	assert.Equal(t, attendance.StatusTardy.Code(), rec.Status)

	code, body = s.do(t, model.RoleStudent, 7, http.MethodPost, "/attendance/punch-in", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Attendance has already been recorded.", body["message"])
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, model.RoleStudent, 7, http.MethodPost, "/attendance/punch-out", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "The start time has not been entered.", body["message"])
}

func TestPunchByStaffIsForbidden(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(t, model.RoleStaff, 1, http.MethodPost, "/attendance/punch-in", nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUpdateThenList(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, model.RoleStudent, 7, http.MethodPut, "/attendance", map[string]any{
		"attendanceList": []map[string]any{
			{
				"trainingDate":            "2024-04-01",
				"trainingStartTimeHour":   9,
				"trainingStartTimeMinute": 0,
				"trainingEndTimeHour":     17,
				"trainingEndTimeMinute":   30,
				"blankTime":               45,
				"note":                    "dentist",
			},
		},
	})
	require.Equal(t, http.StatusOK, code, body)

	code, body = s.do(t, model.RoleStudent, 7, http.MethodGet, "/attendance", nil)
	require.Equal(t, http.StatusOK, code, body)
	items := body["data"].([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "2024-04-01", first["trainingDate"])
	assert.Equal(t, "17:30", first["trainingEndTime"])
	assert.Equal(t, "0h 45m", first["blankTimeValue"])
	assert.Equal(t, "Early leave", first["statusDispName"])
	assert.Equal(t, "dentist", first["note"])

	second := items[1].(map[string]any)
	assert.Nil(t, second["studentAttendanceId"])
	assert.Equal(t, true, second["isToday"])
	assert.Equal(t, float64(2), body["pagination"].(map[string]any)["total"])
}

func TestUpdateValidationErrors(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, model.RoleStudent, 7, http.MethodPut, "/attendance", map[string]any{
		"attendanceList": []map[string]any{
			{"trainingDate": "2024-04-01", "trainingEndTimeHour": 18, "trainingEndTimeMinute": 0},
			{"trainingDate": "2024-04-02", "trainingStartTimeHour": 9},
		},
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please correct the highlighted entries.", body["message"])

	errs := body["errors"].([]any)
	require.Len(t, errs, 2)
	assert.Equal(t, "The start time has not been entered.", errs[0].(map[string]any)["message"])
	assert.Equal(t, float64(0), errs[0].(map[string]any)["index"])
	assert.Equal(t, "Start time is invalid.", errs[1].(map[string]any)["message"])

	var count int64
	require.NoError(t, s.db.Model(&model.StudentAttendance{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateBindingError(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, model.RoleStudent, 7, http.MethodPut, "/attendance", map[string]any{
		"attendanceList": []map[string]any{
			{"trainingDate": "2024-04-01", "trainingStartTimeHour": 25, "trainingStartTimeMinute": 0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "trainingStartTimeHour")
}

func TestUpdateByStaff(t *testing.T) {
	s := newTestServer(t)
	day := map[string]any{
		"trainingDate":            "2024-04-01",
		"trainingStartTimeHour":   9,
		"trainingStartTimeMinute": 30,
		"trainingEndTimeHour":     18,
		"trainingEndTimeMinute":   0,
	}

	code, body := s.do(t, model.RoleStaff, 1, http.MethodPut, "/attendance", map[string]any{
		"lmsUserId":      7,
		"attendanceList": []map[string]any{day},
	})
	require.Equal(t, http.StatusOK, code, body)

	var rec model.StudentAttendance
	require.NoError(t, s.db.Where("lms_user_id = ?", 7).Take(&rec).Error)
	assert.Equal(t, attendance.StatusTardy.Code(), rec.Status)
	assert.Equal(t, int32(1), rec.LastModifiedUser)

	code, _ = s.do(t, model.RoleStaff, 1, http.MethodPut, "/attendance", map[string]any{
		"lmsUserId":      99,
		"attendanceList": []map[string]any{day},
	})
	assert.Equal(t, http.StatusNotFound, code)

	var count int64
	require.NoError(t, s.db.Model(&model.StudentAttendance{}).Where("lms_user_id = ?", 99).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFormForStaff(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, model.RoleStaff, 1, http.MethodGet, "/attendance/form?userId=7", nil)
	require.Equal(t, http.StatusOK, code, body)

	form := body["data"].(map[string]any)
	assert.Equal(t, float64(7), form["lmsUserId"])
	assert.Equal(t, "Sam", form["userName"])
	assert.Len(t, form["trainingHours"], 24)
	assert.Len(t, form["attendanceList"], 2)

	code, _ = s.do(t, model.RoleStaff, 1, http.MethodGet, "/attendance/form?userId=99", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUnfilled(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.db.Create(&model.StudentAttendance{
		LmsUserID: 7, TrainingDate: model.ToDate(date(1)), TrainingStartTime: "09:00", AccountID: 3,
	}).Error)

	code, body := s.do(t, model.RoleStudent, 7, http.MethodGet, "/attendance/unfilled", nil)
	require.Equal(t, http.StatusOK, code, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["unfilled"])
	assert.NotEmpty(t, data["message"])
}
