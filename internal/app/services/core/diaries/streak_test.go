package diaries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{"no entries", nil, 0},
		{"only today", []time.Time{day(2026, 3, 10)}, 1},
		{"yesterday keeps the streak alive", []time.Time{day(2026, 3, 9), day(2026, 3, 8)}, 2},
		{"gap of two days breaks it", []time.Time{day(2026, 3, 8), day(2026, 3, 7)}, 0},
		{"consecutive run ending today", []time.Time{day(2026, 3, 10), day(2026, 3, 9), day(2026, 3, 8), day(2026, 3, 6)}, 3},
		{"unsorted with duplicates", []time.Time{day(2026, 3, 9), day(2026, 3, 10), day(2026, 3, 9), day(2026, 3, 8)}, 3},
		{"future days ignored", []time.Time{day(2026, 3, 12), day(2026, 3, 11)}, 0},
		{"stale run", []time.Time{day(2026, 3, 2), day(2026, 3, 1), day(2026, 2, 28)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.days, now))
		})
	}
}

func TestComputeStreak_MonthAndYearBoundaries(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	days := []time.Time{day(2026, 1, 1), day(2025, 12, 31), day(2025, 12, 30)}
	assert.Equal(t, 3, ComputeStreak(days, now))

	leap := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, ComputeStreak([]time.Time{day(2024, 3, 1), day(2024, 2, 29)}, leap))
}

func TestComputeStreak_UsesLocationOfNow(t *testing.T) {
	location := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on the 11th is still the evening of the 10th in UTC-5.
	now := time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC).In(location)
	days := []time.Time{
		time.Date(2026, 3, 10, 0, 0, 0, 0, location),
		time.Date(2026, 3, 9, 0, 0, 0, 0, location),
	}
	assert.Equal(t, 2, ComputeStreak(days, now))
}

func TestComputeStreak_AcrossDaylightSaving(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, location)
	days := []time.Time{
		time.Date(2026, 3, 9, 0, 0, 0, 0, location),
		time.Date(2026, 3, 8, 0, 0, 0, 0, location),
		time.Date(2026, 3, 7, 0, 0, 0, 0, location),
	}
	assert.Equal(t, 3, ComputeStreak(days, now))
}
