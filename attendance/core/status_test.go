package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) *TrainingTime {
	t.Helper()
	tt, err := ParseTrainingTime(s)
	require.NoError(t, err)
	return &tt
}

func standardHours(t *testing.T) WorkHours {
	return WorkHours{Start: *mustTime(t, "09:00"), End: *mustTime(t, "18:00")}
}

func TestClassify(t *testing.T) {
	hours := standardHours(t)

	tests := []struct {
		name     string
		start    string
		end      string
		expected Status
	}{
		{name: "Absent", expected: StatusAbsent},
		{name: "On time", start: "09:00", end: "18:00", expected: StatusNone},
		{name: "Early arrival, late finish", start: "08:30", end: "19:10", expected: StatusNone},
		{name: "Late", start: "09:30", end: "18:00", expected: StatusTardy},
		{name: "Late one minute", start: "09:01", end: "18:30", expected: StatusTardy},
		{name: "Early leave", start: "09:00", end: "17:59", expected: StatusLeavingEarly},
		{name: "Late and early leave", start: "10:00", end: "16:00", expected: StatusTardyAndLeavingEarly},
		{name: "Punched in on time", start: "08:55", expected: StatusNone},
		{name: "Punched in late", start: "09:15", expected: StatusTardy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var start, end *TrainingTime
			if tt.start != "" {
				start = mustTime(t, tt.start)
			}
			if tt.end != "" {
				end = mustTime(t, tt.end)
			}
			res, err := Classify(start, end, hours)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestClassifyEndWithoutStart(t *testing.T) {
	_, err := Classify(nil, mustTime(t, "18:00"), standardHours(t))

	var conflict *StateConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, MsgPunchInEmpty, conflict.Code)
}

func TestClassifyLateNeverBoth(t *testing.T) {
	hours := standardHours(t)
	for start := hours.Start.Minutes() + 1; start < 24*60; start += 13 {
		for end := hours.End.Minutes(); end < 24*60; end += 17 {
			s, _ := TrainingTimeOf(start/60, start%60)
			e, _ := TrainingTimeOf(end/60, end%60)
			res, err := Classify(&s, &e, hours)
			require.NoError(t, err)
			assert.Equal(t, StatusTardy, res, "%s-%s", s, e)
		}
	}
}

func TestClassifyEarlyLeaveOnly(t *testing.T) {
	hours := standardHours(t)
	for start := 0; start <= hours.Start.Minutes(); start += 11 {
		for end := start; end < hours.End.Minutes(); end += 19 {
			s, _ := TrainingTimeOf(start/60, start%60)
			e, _ := TrainingTimeOf(end/60, end%60)
			res, err := Classify(&s, &e, hours)
			require.NoError(t, err)
			assert.Equal(t, StatusLeavingEarly, res, "%s-%s", s, e)
		}
	}
}

func TestStatusOf(t *testing.T) {
	s, ok := StatusOf(4)
	assert.True(t, ok)
	assert.Equal(t, StatusAbsent, s)
	assert.Equal(t, "Absent", s.Label())

	_, ok = StatusOf(9)
	assert.False(t, ok)
}

func TestParseWorkHours(t *testing.T) {
	hours, err := ParseWorkHours("09:00", "18:00")
	require.NoError(t, err)
	assert.Equal(t, standardHours(t), hours)

	_, err = ParseWorkHours("9", "18:00")
	assert.Error(t, err)
	_, err = ParseWorkHours("09:00", "24:00")
	assert.Error(t, err)
}
