package core

import (
	"context"
	"fmt"
	"time"

	"axiapac.com/lms/attendance/model"
)

type PunchKind int

const (
	PunchIn PunchKind = iota + 1
	PunchOut
)

func (k PunchKind) String() string {
	switch k {
	case PunchIn:
		return "punch-in"
	case PunchOut:
		return "punch-out"
	}
	return "unknown"
}

// Service handles one attendance request end to end. It holds no state of its own.
type Service struct {
	Clock    Clock
	Calendar CourseCalendar
	Repo     Repository
	Messages MessageResolver
}

// PunchCheck verifies that the session user may punch now. Nothing is written.
func (s *Service) PunchCheck(ctx context.Context, session Session, kind PunchKind) error {
	_, err := s.punchCheck(ctx, session, kind, s.Clock.Now())
	return err
}

func (s *Service) punchCheck(ctx context.Context, session Session, kind PunchKind, now time.Time) (*model.StudentAttendance, error) {
	if !session.IsStudent() {
		return nil, &AuthorizationError{Code: MsgAuthorization}
	}

	trainingDate := s.Clock.TrainingDate(session.CourseID)
	workDay, err := s.Calendar.IsWorkDay(ctx, session.CourseID, trainingDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read course calendar: %w", err)
	}
	if !workDay {
		return nil, &StateConflictError{Code: MsgNotWorkDay}
	}

	rec, err := s.Repo.FindByUserAndDate(ctx, session.UserID, trainingDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}

	switch kind {
	case PunchIn:
		if rec != nil && rec.TrainingStartTime != "" {
			return nil, &StateConflictError{Code: MsgPunchAlreadyExists}
		}
	case PunchOut:
		if rec == nil || rec.TrainingStartTime == "" {
			return nil, &StateConflictError{Code: MsgPunchInEmpty}
		}
		if rec.TrainingEndTime != "" {
			return nil, &StateConflictError{Code: MsgPunchAlreadyExists}
		}
		start, err := ParseTrainingTime(rec.TrainingStartTime)
		if err != nil {
			return nil, err
		}
		if start.After(NewTrainingTime(now)) {
			return nil, &StateConflictError{Code: MsgTrainingTimeRange}
		}
	default:
		return nil, fmt.Errorf("unknown punch kind %d", kind)
	}
	return rec, nil
}

// PunchIn records the current time as the start of today's training.
func (s *Service) PunchIn(ctx context.Context, session Session) (string, error) {
	now := s.Clock.Now()
	rec, err := s.punchCheck(ctx, session, PunchIn, now)
	if err != nil {
		return "", err
	}

	hours, err := s.Calendar.WorkHours(ctx, session.CourseID)
	if err != nil {
		return "", fmt.Errorf("failed to read work hours: %w", err)
	}

	start := NewTrainingTime(now)
	status, err := Classify(&start, nil, hours)
	if err != nil {
		return "", err
	}

	if rec == nil {
		rec = &model.StudentAttendance{
			LmsUserID:         session.UserID,
			TrainingDate:      model.ToDate(s.Clock.TrainingDate(session.CourseID)),
			TrainingStartTime: start.Format(),
			TrainingEndTime:   "",
			Status:            status.Code(),
			Note:              "",
			AccountID:         session.AccountID,
			FirstCreateUser:   session.UserID,
			FirstCreateDate:   now,
			LastModifiedUser:  session.UserID,
			LastModifiedDate:  now,
		}
		if err := s.Repo.Insert(ctx, rec); err != nil {
			return "", fmt.Errorf("failed to insert attendance: %w", err)
		}
	} else {
		rec.TrainingStartTime = start.Format()
		rec.Status = status.Code()
		rec.DeleteFlg = false
		rec.LastModifiedUser = session.UserID
		rec.LastModifiedDate = now
		if err := s.Repo.Update(ctx, rec); err != nil {
			return "", fmt.Errorf("failed to update attendance: %w", err)
		}
	}

	return s.Messages.Message(MsgUpdateNotice), nil
}

// PunchOut records the current time as the end of today's training.
func (s *Service) PunchOut(ctx context.Context, session Session) (string, error) {
	now := s.Clock.Now()
	rec, err := s.punchCheck(ctx, session, PunchOut, now)
	if err != nil {
		return "", err
	}

	hours, err := s.Calendar.WorkHours(ctx, session.CourseID)
	if err != nil {
		return "", fmt.Errorf("failed to read work hours: %w", err)
	}

	start, err := ParseTrainingTime(rec.TrainingStartTime)
	if err != nil {
		return "", err
	}
	end := NewTrainingTime(now)
	status, err := Classify(&start, &end, hours)
	if err != nil {
		return "", err
	}

	rec.TrainingEndTime = end.Format()
	rec.Status = status.Code()
	rec.DeleteFlg = false
	rec.LastModifiedUser = session.UserID
	rec.LastModifiedDate = now
	if err := s.Repo.Update(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to update attendance: %w", err)
	}

	return s.Messages.Message(MsgUpdateNotice), nil
}

// DailyAttendance is one row of the attendance list.
type DailyAttendance struct {
	StudentAttendanceID *int32
	TrainingDate        time.Time
	SectionName         string
	TrainingStartTime   string
	TrainingEndTime     string
	BlankTime           *int32
	BlankTimeValue      string
	Status              Status
	StatusDispName      string
	Note                string
	IsToday             bool
}

// AttendanceList returns every scheduled day of the course with the user's attendance.
func (s *Service) AttendanceList(ctx context.Context, courseID, userID int32) ([]DailyAttendance, error) {
	rows, err := s.Repo.ListManagement(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	today := model.DateKey(s.Clock.TrainingDate(courseID))
	list := make([]DailyAttendance, 0, len(rows))
	for _, r := range rows {
		d := DailyAttendance{
			StudentAttendanceID: r.StudentAttendanceID,
			TrainingDate:        r.TrainingDate,
			SectionName:         r.SectionName,
			TrainingStartTime:   r.TrainingStartTime,
			TrainingEndTime:     r.TrainingEndTime,
			BlankTime:           r.BlankTime,
			Note:                r.Note,
			IsToday:             model.DateKey(r.TrainingDate) == today,
		}
		if v, ok := FormatBlankTime(r.BlankTime); ok {
			d.BlankTimeValue = v
		}
		if r.Status != nil {
			if status, ok := StatusOf(*r.Status); ok {
				d.Status = status
				d.StatusDispName = status.Label()
			}
		}
		list = append(list, d)
	}
	return list, nil
}

// UpdateRequest is a bulk edit of a range of days. UserID and CourseID name the edited
// user and their course, and are only honoured for staff.
type UpdateRequest struct {
	UserID   int32
	CourseID int32
	Edits    []DailyAttendanceEdit
}

// Update validates the edits, merges them into the stored rows and persists the result in
// one transaction. Validation failures are returned as *ValidationErrors and nothing is
// written.
func (s *Service) Update(ctx context.Context, session Session, req UpdateRequest) (string, error) {
	userID, courseID := req.UserID, req.CourseID
	if session.IsStudent() || userID == 0 {
		userID, courseID = session.UserID, session.CourseID
	}
	if courseID == 0 {
		courseID = session.CourseID
	}

	if err := Validate(req.Edits, ValidateOptions{TrainingDate: s.Clock.TrainingDate(courseID)}); err != nil {
		return "", err
	}

	hours, err := s.Calendar.WorkHours(ctx, courseID)
	if err != nil {
		return "", fmt.Errorf("failed to read work hours: %w", err)
	}

	existing, err := s.Repo.FindAllByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to read attendance: %w", err)
	}

	changes, err := Reconcile(ReconcileInput{
		UserID:    userID,
		AccountID: session.AccountID,
		ActorID:   session.UserID,
		Now:       s.Clock.Now(),
		Edits:     req.Edits,
		Existing:  existing,
		Hours:     hours,
	})
	if err != nil {
		return "", err
	}

	if err := s.Repo.Transaction(ctx, func(repo Repository) error {
		return Persist(ctx, repo, changes)
	}); err != nil {
		return "", err
	}

	return s.Messages.Message(MsgUpdateNotice), nil
}

// Persist inserts new rows and updates changed stored rows.
func Persist(ctx context.Context, repo Repository, changes []RecordChange) error {
	for _, change := range changes {
		switch c := change.(type) {
		case NewRecord:
			if err := repo.Insert(ctx, c.Record); err != nil {
				return fmt.Errorf("failed to insert attendance %s: %w", c.Record.DateKey(), err)
			}
		case ExistingRecord:
			if !c.Changed {
				continue
			}
			c.Record.ID = c.ID
			if err := repo.Update(ctx, c.Record); err != nil {
				return fmt.Errorf("failed to update attendance %d: %w", c.ID, err)
			}
		}
	}
	return nil
}

// HasUnfilled reports whether the user left any day before their course's training date
// without a start or end time.
func (s *Service) HasUnfilled(ctx context.Context, courseID, userID int32) (bool, error) {
	count, err := s.Repo.CountUnfilled(ctx, userID, s.Clock.TrainingDate(courseID))
	if err != nil {
		return false, fmt.Errorf("failed to count unfilled attendance: %w", err)
	}
	return count > 0, nil
}
