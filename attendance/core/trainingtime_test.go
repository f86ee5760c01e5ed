package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrainingTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "Padded", input: "09:05", hour: 9, minute: 5},
		{name: "Unpadded", input: "9:5", hour: 9, minute: 5},
		{name: "Midnight", input: "0:0", hour: 0, minute: 0},
		{name: "Last minute", input: "23:59", hour: 23, minute: 59},
		{name: "Surrounding spaces", input: " 18:00 ", hour: 18, minute: 0},
		{name: "Empty", input: "", wantErr: true},
		{name: "No separator", input: "0900", wantErr: true},
		{name: "Too many parts", input: "09:00:00", wantErr: true},
		{name: "Not a number", input: "nine:00", wantErr: true},
		{name: "Hour out of range", input: "24:00", wantErr: true},
		{name: "Minute out of range", input: "10:60", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseTrainingTime(tt.input)
			if tt.wantErr {
				var perr *ParseError
				assert.True(t, errors.As(err, &perr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, res.Hour())
			assert.Equal(t, tt.minute, res.Minute())
		})
	}
}

func TestTrainingTimeRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			orig, err := TrainingTimeOf(h, m)
			require.NoError(t, err)

			fromPadded, err := ParseTrainingTime(orig.Format())
			require.NoError(t, err)
			fromCompact, err := ParseTrainingTime(orig.Compact())
			require.NoError(t, err)

			assert.Equal(t, orig, fromPadded)
			assert.Equal(t, orig, fromCompact)
			assert.Equal(t, orig.Format(), fromCompact.Format())
		}
	}
}

func TestTrainingTimeFormat(t *testing.T) {
	tt, err := TrainingTimeOf(9, 5)
	require.NoError(t, err)

	assert.Equal(t, "09:05", tt.Format())
	assert.Equal(t, "9:5", tt.Compact())
	assert.Equal(t, "09:05", tt.String())
	assert.Equal(t, "", FormatOptional(nil))
	assert.Equal(t, "09:05", FormatOptional(&tt))
}

func TestTrainingTimeCompare(t *testing.T) {
	nine, _ := TrainingTimeOf(9, 0)
	nineThirty, _ := TrainingTimeOf(9, 30)

	assert.Equal(t, -30, nine.Compare(nineThirty))
	assert.Equal(t, 30, nineThirty.Compare(nine))
	assert.Equal(t, 0, nine.Compare(nine))
	assert.True(t, nineThirty.After(nine))
	assert.True(t, nine.Before(nineThirty))
}

func TestNewTrainingTime(t *testing.T) {
	now := time.Date(2024, 4, 1, 8, 47, 31, 0, time.UTC)
	tt := NewTrainingTime(now)

	assert.Equal(t, 8, tt.Hour())
	assert.Equal(t, 47, tt.Minute())
	assert.Equal(t, 8*60+47, tt.Minutes())
}

func TestTrainingTimeOfOutOfRange(t *testing.T) {
	_, err := TrainingTimeOf(-1, 0)
	assert.Error(t, err)
	_, err = TrainingTimeOf(12, 60)
	assert.Error(t, err)
}

func TestParseOptionalTime(t *testing.T) {
	res, err := ParseOptionalTime("")
	assert.NoError(t, err)
	assert.Nil(t, res)

	res, err = ParseOptionalTime("18:00")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "18:00", res.Format())

	_, err = ParseOptionalTime("18")
	assert.Error(t, err)
}
