package core

// Status is the attendance status stored with each record. It is derived from the start and
// end times and must be recomputed whenever either changes.
type Status int16

const (
	StatusNone                 Status = 0
	StatusTardy                Status = 1
	StatusLeavingEarly         Status = 2
	StatusTardyAndLeavingEarly Status = 3
	StatusAbsent               Status = 4
)

var statusLabels = map[Status]string{
	StatusNone:                 "",
	StatusTardy:                "Late",
	StatusLeavingEarly:         "Early leave",
	StatusTardyAndLeavingEarly: "Late/Early leave",
	StatusAbsent:               "Absent",
}

func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) Code() int16 {
	return int16(s)
}

// StatusOf returns false for codes outside the enumeration.
func StatusOf(code int16) (Status, bool) {
	s := Status(code)
	_, ok := statusLabels[s]
	return s, ok
}

// WorkHours are the scheduled start and end of a course's training day.
type WorkHours struct {
	Start TrainingTime
	End   TrainingTime
}

// ParseWorkHours reads configured "HH:MM" boundaries.
func ParseWorkHours(start, end string) (WorkHours, error) {
	s, err := ParseTrainingTime(start)
	if err != nil {
		return WorkHours{}, err
	}
	e, err := ParseTrainingTime(end)
	if err != nil {
		return WorkHours{}, err
	}
	return WorkHours{Start: s, End: e}, nil
}

// Classify derives the status for a day. A missing end time is treated as "not yet left",
// so only the start is compared.
func Classify(start, end *TrainingTime, hours WorkHours) (Status, error) {
	if start == nil && end == nil {
		return StatusAbsent, nil
	}
	if start == nil {
		return StatusNone, &StateConflictError{Code: MsgPunchInEmpty}
	}

	tardy := start.After(hours.Start)
	leavingEarly := end != nil && end.Before(hours.End)

	switch {
	case tardy && leavingEarly:
		return StatusTardyAndLeavingEarly, nil
	case tardy:
		return StatusTardy, nil
	case leavingEarly:
		return StatusLeavingEarly, nil
	}
	return StatusNone, nil
}
