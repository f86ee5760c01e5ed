package store

import (
	"context"
	"errors"
	"time"

	"axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	"gorm.io/gorm"
)

// Repository reads and writes t_student_attendance. Logically deleted rows are never
// returned.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("delete_flg = ?", false)
}

func (r *Repository) FindByUserAndDate(ctx context.Context, userID int32, date time.Time) (*model.StudentAttendance, error) {
	var rec model.StudentAttendance
	err := r.live(ctx).
		Where("lms_user_id = ? AND training_date = ?", userID, model.ToDate(date)).
		Order("student_attendance_id").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) FindAllByUser(ctx context.Context, userID int32) ([]model.StudentAttendance, error) {
	var rows []model.StudentAttendance
	if err := r.live(ctx).
		Where("lms_user_id = ?", userID).
		Order("training_date").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Insert(ctx context.Context, rec *model.StudentAttendance) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *Repository) Update(ctx context.Context, rec *model.StudentAttendance) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// CountUnfilled counts the user's days before the given date that are missing a start or
// end time.
func (r *Repository) CountUnfilled(ctx context.Context, userID int32, before time.Time) (int64, error) {
	var count int64
	err := r.live(ctx).
		Model(&model.StudentAttendance{}).
		Where("lms_user_id = ? AND training_date < ?", userID, model.ToDate(before)).
		Where("(training_start_time = '' OR training_end_time = '')").
		Count(&count).Error
	return count, err
}

// ListManagement returns every scheduled day of the course, left joined with the user's
// attendance for that day.
func (r *Repository) ListManagement(ctx context.Context, courseID, userID int32) ([]model.AttendanceManagement, error) {
	var rows []model.AttendanceManagement
	err := r.db.WithContext(ctx).
		Table("m_section AS s").
		Select(`
		a.student_attendance_id AS student_attendance_id,
		s.training_date AS training_date,
		s.section_name AS section_name,
		COALESCE(a.training_start_time, '') AS training_start_time,
		COALESCE(a.training_end_time, '') AS training_end_time,
		a.blank_time AS blank_time,
		a.status AS status,
		COALESCE(a.note, '') AS note
	`).
		Joins(`LEFT JOIN t_student_attendance AS a
		ON a.training_date = s.training_date
		AND a.lms_user_id = ?
		AND a.delete_flg = ?`, userID, false).
		Where("s.course_id = ? AND s.delete_flg = ?", courseID, false).
		Order("s.training_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Transaction(ctx context.Context, fn func(repo core.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}
