package core

import (
	"fmt"
	"sort"
	"time"

	"axiapac.com/lms/attendance/model"
)

// RecordChange is either a NewRecord to insert or an ExistingRecord to update.
type RecordChange interface {
	Attendance() *model.StudentAttendance
	isRecordChange()
}

type NewRecord struct {
	Record *model.StudentAttendance
}

// ExistingRecord keeps the stored id. Changed is false for stored rows no edit touched.
type ExistingRecord struct {
	ID      int32
	Record  *model.StudentAttendance
	Changed bool
}

func (r NewRecord) Attendance() *model.StudentAttendance      { return r.Record }
func (r ExistingRecord) Attendance() *model.StudentAttendance { return r.Record }
func (NewRecord) isRecordChange()                             {}
func (ExistingRecord) isRecordChange()                        {}

type ReconcileInput struct {
	UserID    int32
	AccountID int32
	ActorID   int32
	Now       time.Time
	Edits     []DailyAttendanceEdit
	Existing  []model.StudentAttendance
	Hours     WorkHours
}

// Reconcile merges validated edits into the user's stored rows. Rows are matched by training
// date, not id. Stored rows are returned in date order followed by new rows in submission
// order; every date appears once.
func Reconcile(in ReconcileInput) ([]RecordChange, error) {
	existing := make(map[string]*ExistingRecord, len(in.Existing))
	var stored []*ExistingRecord
	for i := range in.Existing {
		rec := in.Existing[i]
		er := &ExistingRecord{ID: rec.ID, Record: &rec}
		existing[rec.DateKey()] = er
		stored = append(stored, er)
	}
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].Record.DateKey() < stored[j].Record.DateKey()
	})

	created := make(map[string]*model.StudentAttendance)
	var createdOrder []*model.StudentAttendance

	for _, edit := range in.Edits {
		key := edit.DateKey()

		var rec *model.StudentAttendance
		if er, ok := existing[key]; ok {
			er.Changed = true
			rec = er.Record
		} else if c, ok := created[key]; ok {
			rec = c
		} else {
			rec = &model.StudentAttendance{
				TrainingDate:    model.ToDate(edit.Date()),
				FirstCreateUser: in.ActorID,
				FirstCreateDate: in.Now,
			}
			created[key] = rec
			createdOrder = append(createdOrder, rec)
		}

		if err := applyEdit(rec, edit, in); err != nil {
			return nil, fmt.Errorf("attendance %s: %w", key, err)
		}
	}

	changes := make([]RecordChange, 0, len(stored)+len(createdOrder))
	for _, er := range stored {
		changes = append(changes, *er)
	}
	for _, rec := range createdOrder {
		changes = append(changes, NewRecord{Record: rec})
	}
	return changes, nil
}

func applyEdit(rec *model.StudentAttendance, edit DailyAttendanceEdit, in ReconcileInput) error {
	rec.LmsUserID = in.UserID
	rec.AccountID = in.AccountID

	// half-entered pairs count as empty; validation rejects them before this point
	start, err := edit.StartTime()
	if err != nil {
		return err
	}
	end, err := edit.EndTime()
	if err != nil {
		return err
	}
	rec.TrainingStartTime = FormatOptional(start)
	rec.TrainingEndTime = FormatOptional(end)
	rec.BlankTime = edit.BlankTime()

	if start == nil && end == nil && edit.StatusLabel() == StatusAbsent.Label() {
		rec.Status = StatusAbsent.Code()
	} else {
		status, err := Classify(start, end, in.Hours)
		if err != nil {
			return err
		}
		rec.Status = status.Code()
	}

	rec.Note = edit.Note()
	rec.LastModifiedUser = in.ActorID
	rec.LastModifiedDate = in.Now
	rec.DeleteFlg = false
	return nil
}
