package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TrainingTime is a wall-clock hour and minute within a training day.
type TrainingTime struct {
	hour   int
	minute int
}

// NewTrainingTime captures the hour and minute of t.
func NewTrainingTime(t time.Time) TrainingTime {
	return TrainingTime{hour: t.Hour(), minute: t.Minute()}
}

func TrainingTimeOf(hour, minute int) (TrainingTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TrainingTime{}, &ParseError{Value: fmt.Sprintf("%d:%d", hour, minute), Err: errOutOfRange}
	}
	return TrainingTime{hour: hour, minute: minute}, nil
}

// ParseTrainingTime accepts both "H:M" and "HH:mm".
func ParseTrainingTime(s string) (TrainingTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TrainingTime{}, &ParseError{Value: s, Err: errNotHourMinute}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TrainingTime{}, &ParseError{Value: s, Err: err}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TrainingTime{}, &ParseError{Value: s, Err: err}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TrainingTime{}, &ParseError{Value: s, Err: errOutOfRange}
	}
	return TrainingTime{hour: hour, minute: minute}, nil
}

// ParseOptionalTime returns nil for the empty string, which stands for "no time entered".
func ParseOptionalTime(s string) (*TrainingTime, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseTrainingTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (t TrainingTime) Hour() int    { return t.hour }
func (t TrainingTime) Minute() int  { return t.minute }
func (t TrainingTime) Minutes() int { return t.hour*60 + t.minute }

func (t TrainingTime) Compare(other TrainingTime) int {
	return t.Minutes() - other.Minutes()
}

func (t TrainingTime) After(other TrainingTime) bool  { return t.Compare(other) > 0 }
func (t TrainingTime) Before(other TrainingTime) bool { return t.Compare(other) < 0 }

// Format is the storage form, "HH:mm".
func (t TrainingTime) Format() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Compact is the unpadded "H:M" form.
func (t TrainingTime) Compact() string {
	return fmt.Sprintf("%d:%d", t.hour, t.minute)
}

func (t TrainingTime) String() string {
	return t.Format()
}

// FormatOptional returns "" for nil.
func FormatOptional(t *TrainingTime) string {
	if t == nil {
		return ""
	}
	return t.Format()
}
