package core

import (
	"errors"
	"fmt"
	"strings"
)

// Message codes resolved by a MessageResolver.
const (
	MsgAuthorization      = "valid.authorization"
	MsgNotWorkDay         = "valid.attendance.notworkday"
	MsgPunchAlreadyExists = "valid.attendance.punchalreadyexists"
	MsgPunchInEmpty       = "valid.attendance.punchinempty"
	MsgPunchOutEmpty      = "valid.attendance.punchoutempty"
	MsgTrainingTimeRange  = "valid.attendance.trainingtimerange"
	MsgMaxLength          = "valid.maxlength"
	MsgInputInvalid       = "input.invalid"
	MsgUpdateNotice       = "attendance.update.notice"
	MsgUnfilled           = "attendance.unfilled"

	LabelNote      = "label.note"
	LabelStartTime = "label.starttime"
	LabelEndTime   = "label.endtime"
)

var (
	errNotHourMinute = errors.New("expected hour and minute separated by ':'")
	errOutOfRange    = errors.New("hour or minute out of range")
)

// CodedError is implemented by every error whose text comes from the message catalogue.
type CodedError interface {
	error
	MessageCode() string
	MessageArgs() []string
}

type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid training time %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) MessageCode() string   { return MsgInputInvalid }
func (e *ParseError) MessageArgs() []string { return []string{e.Value} }

// AuthorizationError means the acting user may not perform the operation.
type AuthorizationError struct {
	Code string
}

func (e *AuthorizationError) Error() string         { return "not authorized: " + e.Code }
func (e *AuthorizationError) MessageCode() string   { return e.Code }
func (e *AuthorizationError) MessageArgs() []string { return nil }

// StateConflictError means the stored attendance does not allow the requested punch.
// It is always returned before anything is written.
type StateConflictError struct {
	Code string
}

func (e *StateConflictError) Error() string         { return "attendance state conflict: " + e.Code }
func (e *StateConflictError) MessageCode() string   { return e.Code }
func (e *StateConflictError) MessageArgs() []string { return nil }

// FieldError is tied to one input of one day, e.g. "attendanceList[3].note".
type FieldError struct {
	Index int
	Field string
	Code  string
	Args  []string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Code }

func (e FieldError) MessageCode() string   { return e.Code }
func (e FieldError) MessageArgs() []string { return e.Args }

// FormError is tied to a day but not to a single input.
type FormError struct {
	Index int
	Code  string
	Args  []string
}

func (e FormError) Error() string { return fmt.Sprintf("attendanceList[%d]: %s", e.Index, e.Code) }

func (e FormError) MessageCode() string   { return e.Code }
func (e FormError) MessageArgs() []string { return e.Args }

// ValidationErrors is the accumulated result of one validation pass.
type ValidationErrors struct {
	Fields []FieldError
	Forms  []FormError
}

func (v *ValidationErrors) Empty() bool {
	return len(v.Fields) == 0 && len(v.Forms) == 0
}

func (v *ValidationErrors) Len() int {
	return len(v.Fields) + len(v.Forms)
}

func (v *ValidationErrors) Error() string {
	var out []string
	for _, f := range v.Fields {
		out = append(out, f.Error())
	}
	for _, f := range v.Forms {
		out = append(out, f.Error())
	}
	return "validation failed: " + strings.Join(out, ", ")
}
