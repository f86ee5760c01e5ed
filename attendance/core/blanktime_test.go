package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBlankTime(t *testing.T) {
	tests := []struct {
		name     string
		minutes  *int32
		expected string
		ok       bool
	}{
		{name: "Nil", minutes: nil, expected: "", ok: false},
		{name: "Zero", minutes: ptr32(0), expected: "0h 0m", ok: true},
		{name: "Minutes only", minutes: ptr32(45), expected: "0h 45m", ok: true},
		{name: "One hour", minutes: ptr32(60), expected: "1h 0m", ok: true},
		{name: "Hours and minutes", minutes: ptr32(135), expected: "2h 15m", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := FormatBlankTime(tt.minutes)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestBlankTimeChoices(t *testing.T) {
	choices := BlankTimeChoices()

	assert.Len(t, choices, 31)
	assert.Equal(t, Choice{Value: 15, Label: "0h 15m"}, choices[0])
	assert.Equal(t, Choice{Value: 465, Label: "7h 45m"}, choices[len(choices)-1])
}

func TestHourAndMinuteChoices(t *testing.T) {
	hours := HourChoices()
	minutes := MinuteChoices()

	assert.Len(t, hours, 24)
	assert.Len(t, minutes, 60)
	assert.Equal(t, Choice{Value: 9, Label: "09"}, hours[9])
	assert.Equal(t, Choice{Value: 59, Label: "59"}, minutes[59])
}

func ptr32(v int32) *int32 { return &v }

func ptr(v int) *int { return &v }
