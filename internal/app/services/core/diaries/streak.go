package diaries

import "time"

// ComputeStreak counts consecutive calendar days with at least one entry,
// ending today or yesterday in now's location. Days may be in any order and
// may repeat; days after today are ignored.
func ComputeStreak(days []time.Time, now time.Time) int {
	seen := make(map[civilDate]bool, len(days))
	for _, day := range days {
		seen[dateOf(day.In(now.Location()))] = true
	}

	today := dateOf(now)
	cursor := today
	if !seen[cursor] {
		cursor = today.addDays(-1)
		if !seen[cursor] {
			return 0
		}
	}

	streak := 0
	for seen[cursor] {
		streak++
		cursor = cursor.addDays(-1)
	}
	return streak
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	year, month, day := t.Date()
	return civilDate{year: year, month: month, day: day}
}

// addDays steps through the calendar at noon UTC so DST changes never skip or
// repeat a date.
func (d civilDate) addDays(n int) civilDate {
	return dateOf(time.Date(d.year, d.month, d.day+n, 12, 0, 0, 0, time.UTC))
}
