package engine

import "time"

// DayKeyLayout is the calendar-day key used for every "is it a new day"
// comparison. Anchored to UTC so travelling users get one consistent
// boundary instead of a locale wall clock.
const DayKeyLayout = "2006-01-02"

// DayKey returns the UTC calendar-day key for a point in time.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// Reconcile applies the daily boundary crossing to the aggregate. When the
// last visit was already today it returns the input unchanged. Otherwise it
// zeroes every habit's daily progress and keeps a streak only when the
// target was met on the stale progress and the completion was dated exactly
// the prior visit day. Any gap of one or more missed days zeroes the streak.
//
// Calling it twice with the same today is safe: the second call sees
// lastVisitDate == today and no-ops.
func Reconcile(data UserData, today string) UserData {
	if data.LastVisitDate == today {
		return data
	}

	out := data.Clone()
	for i := range out.Habits {
		h := &out.Habits[i]
		targetMet := h.Progress >= h.Target
		if !targetMet || h.LastCompletedDate != data.LastVisitDate {
			h.StreakCount = 0
		}
		h.Progress = 0
		h.CompletedToday = false
	}
	out.LastVisitDate = today
	return out
}
