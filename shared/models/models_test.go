package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)
	assert.Equal(t, int64(42), id.Int64())
	assert.False(t, id.IsZero())

	for _, invalid := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(invalid)
		assert.Error(t, err, "id %q", invalid)
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.September, 10)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-10"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, d.Equal(parsed.Time))

	assert.Error(t, json.Unmarshal([]byte(`"10/09/2026"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`"2026-9-1"`), &parsed))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09-10", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-05")))
	assert.Equal(t, "2026-01-05", d.String())

	assert.Error(t, d.Scan(12345))
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  Date
		checkOut Date
		expected int
	}{
		{"three nights", NewDate(2026, time.September, 10), NewDate(2026, time.September, 13), 3},
		{"one night", NewDate(2026, time.September, 10), NewDate(2026, time.September, 11), 1},
		{"same-day stay still bills one night", NewDate(2026, time.September, 10), NewDate(2026, time.September, 10), 1},
		{"across month boundary", NewDate(2026, time.September, 29), NewDate(2026, time.October, 2), 3},
		{"two nights", NewDate(2026, time.March, 28), NewDate(2026, time.March, 30), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTimestamps_Update(t *testing.T) {
	ts := NewTimestamps()
	time.Sleep(time.Millisecond)
	updated := ts.Update()

	assert.Equal(t, ts.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(ts.UpdatedAt))
}
