package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", d.String())

	for _, s := range []string{"", "01-01-1990", "1990-1-1", "2024-13-40"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("1990-01-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-01-01"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`1990`), &back))
}
