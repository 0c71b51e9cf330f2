package engine

import "math"

// presetBaseXP maps each habit type's preset target values to their base XP.
// Presets mirror the target picker options; a custom target derives its base
// XP from the nearest preset, scaled by the ratio of the values.
var presetBaseXP = map[HabitType][]presetXP{
	HabitWater:      {{2, 10}, {3, 15}, {4, 20}, {6, 25}},
	HabitExercise:   {{30, 10}, {60, 20}, {90, 25}, {120, 30}},
	HabitMeditation: {{15, 10}, {30, 15}, {45, 20}, {60, 25}},
	HabitReading:    {{30, 10}, {60, 20}, {90, 25}, {120, 30}},
}

type presetXP struct {
	Target float64
	BaseXP int
}

// BaseXPForTarget returns the base XP for a habit type and target value.
// Preset targets use their table entry; custom targets scale the nearest
// preset's base XP by target/preset, rounded.
func BaseXPForTarget(t HabitType, target float64) int {
	presets, ok := presetBaseXP[t]
	if !ok || len(presets) == 0 {
		return 0
	}
	if target < MinTarget {
		target = MinTarget
	}

	nearest := presets[0]
	best := math.Abs(target - nearest.Target)
	for _, p := range presets[1:] {
		if d := math.Abs(target - p.Target); d < best {
			best = d
			nearest = p
		}
	}
	if target == nearest.Target {
		return nearest.BaseXP
	}
	return int(math.Round(float64(nearest.BaseXP) * target / nearest.Target))
}

// XPForHabit computes the XP award for a habit's current progress against
// its target. Tiered multipliers reward overshooting; partial progress below
// a quarter of the target earns a proportional sliver. Monotonically
// non-decreasing in progress for a fixed target.
func XPForHabit(h Habit) int {
	target := h.Target
	if target < MinTarget {
		// Zero targets would divide by zero; construction clamps but stored
		// documents from older revisions may still carry one.
		target = MinTarget
	}
	base := float64(BaseXPForTarget(h.Type, target))
	if base <= 0 {
		return 0
	}

	ratio := h.Progress / target
	switch {
	case ratio >= 2:
		return int(math.Round(base * 1.5))
	case ratio >= 1.5:
		return int(math.Round(base * 1.25))
	case ratio >= 1:
		return int(base)
	case ratio >= 0.75:
		return int(math.Round(base * 0.75))
	case ratio >= 0.5:
		return int(math.Round(base * 0.5))
	case ratio >= 0.25:
		return int(math.Round(base * 0.25))
	default:
		if ratio <= 0 {
			return 0
		}
		return int(math.Floor(ratio * base))
	}
}

// MinTarget is the smallest accepted habit target. Guards the
// progress/target ratio against division by zero.
const MinTarget = 1
