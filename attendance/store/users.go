package store

import (
	"context"
	"errors"

	"axiapac.com/lms/attendance/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// FindUser returns nil when the user does not exist or is deleted.
func (u *Users) FindUser(ctx context.Context, userID int32) (*model.LmsUser, error) {
	var user model.LmsUser
	err := u.db.WithContext(ctx).
		Where("lms_user_id = ? AND delete_flg = ?", userID, false).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListStudents returns the course's students that have not left, ordered by id.
// A zero courseID lists students of every course.
func (u *Users) ListStudents(ctx context.Context, courseID int32) ([]model.LmsUser, error) {
	q := u.db.WithContext(ctx).
		Where("role = ? AND delete_flg = ? AND leave_date IS NULL", model.RoleStudent, false)
	if courseID != 0 {
		q = q.Where("course_id = ?", courseID)
	}

	var users []model.LmsUser
	if err := q.Order("lms_user_id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SaveSections inserts sections, updating name and deletion flag of a section that
// already exists with the same id.
func SaveSections(ctx context.Context, db *gorm.DB, sections []model.Section) error {
	if len(sections) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"section_name", "training_date", "delete_flg"}),
		}).
		CreateInBatches(sections, 100).Error
}

// Migrate creates or updates the attendance tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Course{}, &model.Section{}, &model.LmsUser{}, &model.StudentAttendance{})
}
