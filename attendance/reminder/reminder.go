package reminder

import (
	"context"
	"fmt"
	"strings"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/model"
	"axiapac.com/lms/utils"
)

type Students interface {
	ListStudents(ctx context.Context, courseID int32) ([]model.LmsUser, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Notifier receives the run summary. *communication.Slack implements it.
type Notifier interface {
	Info(message string) error
	Error(message string) error
}

const Subject = "Attendance reminder"

// Reminder e-mails every active student who left a past training day without a start or
// end time.
type Reminder struct {
	Service  *attendance.Service
	Students Students
	Mailer   Mailer
	Notifier Notifier
	// Schema labels the summary when several tenants are processed.
	Schema string
	DryRun bool
}

type Result struct {
	Checked  int     `json:"checked"`
	Reminded []int32 `json:"reminded"`
	Failed   []int32 `json:"failed"`
}

// Run checks the students of courseID, or of every course when courseID is zero. A failed
// e-mail is recorded and does not stop the run.
func (r *Reminder) Run(ctx context.Context, courseID int32) (Result, error) {
	var res Result

	students, err := r.Students.ListStudents(ctx, courseID)
	if err != nil {
		return res, fmt.Errorf("failed to list students: %w", err)
	}

	body := r.Service.Messages.Message(attendance.MsgUnfilled)
	for _, s := range students {
		res.Checked++
		unfilled, err := r.Service.HasUnfilled(ctx, s.CourseID, s.LmsUserID)
		if err != nil {
			return res, err
		}
		if !unfilled || s.Email == "" {
			continue
		}

		if r.DryRun {
			fmt.Printf("[INFO] dry run: would remind user %d <%s>\n", s.LmsUserID, s.Email)
			res.Reminded = append(res.Reminded, s.LmsUserID)
			continue
		}
		if err := r.Mailer.Send(ctx, s.Email, Subject, fmt.Sprintf("%s\n\n%s", s.UserName, body)); err != nil {
			fmt.Printf("[ERROR] reminder for user %d: %v\n", s.LmsUserID, err)
			res.Failed = append(res.Failed, s.LmsUserID)
			continue
		}
		res.Reminded = append(res.Reminded, s.LmsUserID)
	}

	r.notify(res)
	return res, nil
}

func (r *Reminder) notify(res Result) {
	if r.Notifier == nil {
		return
	}
	prefix := ""
	if r.Schema != "" {
		prefix = "[" + r.Schema + "] "
	}

	if err := r.Notifier.Info(fmt.Sprintf("%sattendance reminders: %d of %d students reminded", prefix, len(res.Reminded), res.Checked)); err != nil {
		fmt.Printf("[WARN] %v\n", err)
	}
	if len(res.Failed) > 0 {
		ids := utils.Map(res.Failed, func(id int32) string { return fmt.Sprint(id) })
		if err := r.Notifier.Error(fmt.Sprintf("%sattendance reminders failed for users %s", prefix, strings.Join(ids, ", "))); err != nil {
			fmt.Printf("[WARN] %v\n", err)
		}
	}
}
