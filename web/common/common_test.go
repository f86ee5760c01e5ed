package common

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	var v struct {
		Date DateOnly `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-04-01"}`), &v))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), v.Date.Time)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-04-01"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &v))
	assert.True(t, v.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"01/04/2024"}`), &v))
}

type row struct {
	Hour *int `json:"hour" binding:"omitempty,min=0,max=23"`
}

type body struct {
	Rows []row `json:"rows" binding:"required,dive"`
}

func TestFormatBindingError(t *testing.T) {
	hour := 24
	err := binding.Validator.ValidateStruct(&body{Rows: []row{{Hour: &hour}}})
	require.Error(t, err)
	assert.Equal(t, "Field 'rows[0].hour' must be at most 23", FormatBindingError(err))

	err = binding.Validator.ValidateStruct(&body{})
	assert.Equal(t, "Field 'rows' is required", FormatBindingError(err))

	assert.Equal(t, "Request body is empty", FormatBindingError(io.EOF))
	assert.Equal(t, "", FormatBindingError(nil))

	var target struct{ A int }
	err = json.Unmarshal([]byte(`{"A":`), &target)
	assert.Contains(t, FormatBindingError(err), "Invalid JSON")
}
