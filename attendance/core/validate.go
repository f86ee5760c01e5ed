package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const NoteMaxLength = 100

var validate = validator.New()

type ValidateOptions struct {
	// TrainingDate is the current training day. Days before it must not be left with a start
	// time and no end time. A zero value disables that rule.
	TrainingDate time.Time
}

// Validate checks every submitted day and returns all problems at once as *ValidationErrors,
// or nil when the edits may be reconciled.
func Validate(edits []DailyAttendanceEdit, opts ValidateOptions) error {
	errs := &ValidationErrors{}
	for i, e := range edits {
		validateEdit(i, e, opts, errs)
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

func validateEdit(i int, e DailyAttendanceEdit, opts ValidateOptions, errs *ValidationErrors) {
	if err := validate.Var(e.Note(), "max="+strconv.Itoa(NoteMaxLength)); err != nil {
		errs.Fields = append(errs.Fields, FieldError{
			Index: i,
			Field: fmt.Sprintf("attendanceList[%d].note", i),
			Code:  MsgMaxLength,
			Args:  []string{LabelNote, strconv.Itoa(NoteMaxLength)},
		})
	}

	startIncomplete := e.StartIncomplete()
	endIncomplete := e.EndIncomplete()
	if startIncomplete {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgInputInvalid, Args: []string{LabelStartTime}})
	}
	if endIncomplete {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgInputInvalid, Args: []string{LabelEndTime}})
	}

	startText, endText := e.StartText(), e.EndText()
	if startText == "" && endText != "" {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgPunchInEmpty})
	}
	if startText != "" && endText == "" && !endIncomplete &&
		!opts.TrainingDate.IsZero() && e.Date().Before(opts.TrainingDate) {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgPunchOutEmpty})
	}
	start, startErr := ParseOptionalTime(startText)
	if startErr != nil {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgInputInvalid, Args: []string{LabelStartTime}})
	}
	end, endErr := ParseOptionalTime(endText)
	if endErr != nil {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgInputInvalid, Args: []string{LabelEndTime}})
	}
	if start != nil && end != nil && start.After(*end) {
		errs.Forms = append(errs.Forms, FormError{Index: i, Code: MsgTrainingTimeRange})
	}
}
