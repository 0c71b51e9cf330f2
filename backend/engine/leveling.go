package engine

// XPPerLevelStep is the triangular schedule coefficient: advancing from
// level L to L+1 costs L * XPPerLevelStep experience points.
const XPPerLevelStep = 100

// LevelForXP returns the level reached with the given cumulative XP.
// Levels start at 1; thresholds are cumulative 100, 300, 600, ...
// Deterministic, total and monotonically non-decreasing in xp.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := 1
	for xp >= level*XPPerLevelStep {
		xp -= level * XPPerLevelStep
		level++
	}
	return level
}

// XPForNextLevel returns the cost of advancing from the given level to the
// next one on the same schedule LevelForXP uses.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevelStep
}

// XPWithinLevel returns how much of the current level-up cost has been
// accumulated: xp minus the sum of all thresholds below level. The result
// is in [0, XPForNextLevel(level)) whenever level == LevelForXP(xp).
func XPWithinLevel(xp, level int) int {
	if xp < 0 {
		xp = 0
	}
	if level < 1 {
		level = 1
	}
	// Sum_{i=1}^{level-1} i*100 == 50*level*(level-1)
	spent := XPPerLevelStep * level * (level - 1) / 2
	rem := xp - spent
	if rem < 0 {
		rem = 0
	}
	return rem
}
