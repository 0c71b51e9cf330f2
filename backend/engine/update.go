package engine

import "math"

// UpdateResult carries the post-update aggregate and the badges that
// unlocked as a consequence of the update.
type UpdateResult struct {
	Data          UserData
	NewlyUnlocked []Badge
}

// UpdateProgress records a new absolute progress value for one habit and
// recomputes every derived field: completion flag, streak, XP, totals,
// level and badge unlocks. The input aggregate is never mutated.
//
// The streak increments only on the false-to-true transition of target-met;
// raising progress further on the same day never increments it again, and
// lowering progress back down never decrements it (streak loss is solely
// the next day's Reconcile decision). An unknown habit id is a no-op.
func UpdateProgress(data UserData, habitID string, progress float64, today string) (UpdateResult, error) {
	if !isValidValue(progress) {
		return UpdateResult{}, ErrInvalidInput
	}

	out := data.Clone()
	touched := false
	for i := range out.Habits {
		h := &out.Habits[i]
		if h.ID != habitID {
			continue
		}
		wasTargetMet := h.Progress >= h.Target
		targetMet := progress >= h.Target

		h.Progress = progress
		h.CompletedToday = targetMet
		if targetMet && !wasTargetMet {
			h.StreakCount++
		}
		if targetMet {
			h.LastCompletedDate = today
		}
		h.XPEarned = XPForHabit(*h)
		touched = true
		break
	}
	if !touched {
		return UpdateResult{Data: out}, nil
	}

	recomputeTotals(&out)
	newly := evaluateBadges(&out, today)
	return UpdateResult{Data: out, NewlyUnlocked: newly}, nil
}

// UpdateTarget changes one habit's target and recomputes its XP against the
// existing progress. Streaks are untouched and badges are not re-evaluated:
// a target change must not retroactively grant or revoke streak badges.
func UpdateTarget(data UserData, habitID string, target float64) (UpdateResult, error) {
	if !isValidValue(target) || target < MinTarget {
		return UpdateResult{}, ErrInvalidInput
	}

	out := data.Clone()
	touched := false
	for i := range out.Habits {
		h := &out.Habits[i]
		if h.ID != habitID {
			continue
		}
		h.Target = target
		h.CompletedToday = h.Progress >= h.Target
		h.XPEarned = XPForHabit(*h)
		touched = true
		break
	}
	if touched {
		recomputeTotals(&out)
	}
	return UpdateResult{Data: out}, nil
}

func recomputeTotals(d *UserData) {
	total := 0
	for _, h := range d.Habits {
		total += h.XPEarned
	}
	d.TotalXP = total
	d.Level = LevelForXP(total)
}

func isValidValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
