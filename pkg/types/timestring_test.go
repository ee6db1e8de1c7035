package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "08:30", "12:05", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err, "%q must parse", s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "12-30", "12:300", "ab:cd"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "%q must be rejected", s)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 10, 9, 5, 42, 0, time.UTC)
	assert.Equal(t, "09:05", NewTimeString(moment).String())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", NewTimeStringFromMinutes(0).String())
	assert.Equal(t, "08:30", NewTimeStringFromMinutes(510).String())
	assert.Equal(t, "23:59", NewTimeStringFromMinutes(1439).String())

	// за полночь: форматирование арифметическое, без переноса на сутки
	assert.Equal(t, "25:05", NewTimeStringFromMinutes(1505).String())
}

func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m += 17 {
		ts := NewTimeStringFromMinutes(m)
		assert.Equal(t, m, ts.Minutes())
	}
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(65)
	require.NoError(t, err)
	assert.Equal(t, "10:05", shifted.String())

	shifted, err = ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, "08:30", shifted.String())

	_, err = ts.AddMinutes(-600)
	assert.ErrorIs(t, err, ErrNegativeTime)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("08:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:30"))
	assert.Equal(t, "09:30", ts.String())

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("14:45:00"))
	assert.Equal(t, "14:45", ts.String())

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, "08:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 10, 11, 15, 0, 0, time.UTC)))
	assert.Equal(t, "11:15", ts.String())

	assert.ErrorIs(t, ts.Scan("garbage"), ErrInvalidTimeFormat)
	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeFormat)
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)
}
