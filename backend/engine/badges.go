package engine

// BadgePredicate reports whether a badge's unlock condition holds for the
// full habit collection. Predicates are capabilities, not data: they are
// never serialized and must be looked up from the registry by badge id on
// every load.
type BadgePredicate func(d UserData) bool

type badgeSpec struct {
	ID        string
	Name      string
	Icon      string
	Predicate BadgePredicate
}

const (
	perTypeStreakDays   = 7
	championStreakDays  = 30
	consistencyMinTotal = 20
)

// badgeRegistry is the static ordered table of all known badges. Evaluation
// order and the default badge order both follow insertion order here.
var badgeRegistry = []badgeSpec{
	{"hydration-hero", "Hydration Hero", "💧", typeStreakPredicate(HabitWater, perTypeStreakDays)},
	{"fitness-warrior", "Fitness Warrior", "🏃‍♂️", typeStreakPredicate(HabitExercise, perTypeStreakDays)},
	{"mindful-master", "Mindful Master", "🧘‍♀️", typeStreakPredicate(HabitMeditation, perTypeStreakDays)},
	{"knowledge-seeker", "Knowledge Seeker", "📚", typeStreakPredicate(HabitReading, perTypeStreakDays)},
	{"wellness-champion", "Wellness Champion", "🏆", allStreaksPredicate(championStreakDays)},
	{"consistency-master", "Consistency Master", "👑", totalStreakPredicate(consistencyMinTotal)},
}

func typeStreakPredicate(t HabitType, days int) BadgePredicate {
	return func(d UserData) bool {
		h := d.habitByType(t)
		return h != nil && h.StreakCount >= days
	}
}

func allStreaksPredicate(days int) BadgePredicate {
	return func(d UserData) bool {
		if len(d.Habits) == 0 {
			return false
		}
		for _, h := range d.Habits {
			if h.StreakCount < days {
				return false
			}
		}
		return true
	}
}

func totalStreakPredicate(minTotal int) BadgePredicate {
	return func(d UserData) bool {
		return d.TotalStreak() >= minTotal
	}
}

// PredicateForBadge returns the registry predicate for a badge id, or nil
// when the id is unknown (an unknown persisted badge simply never unlocks).
func PredicateForBadge(id string) BadgePredicate {
	for _, spec := range badgeRegistry {
		if spec.ID == id {
			return spec.Predicate
		}
	}
	return nil
}

// Evaluate runs every still-locked badge's predicate against the habit
// collection and unlocks the ones that now hold, dating them today.
// Unlocks are monotonic: an unlocked badge is never re-locked, even if its
// predicate would no longer hold. Returns the updated badge list and the
// newly unlocked badges in registry order.
func Evaluate(data UserData, today string) ([]Badge, []Badge) {
	out := make([]Badge, len(data.Badges))
	copy(out, data.Badges)

	var newly []Badge
	for i := range out {
		if out[i].Unlocked {
			continue
		}
		pred := PredicateForBadge(out[i].ID)
		if pred == nil || !pred(data) {
			continue
		}
		out[i].Unlocked = true
		out[i].UnlockedDate = today
		newly = append(newly, out[i])
	}
	return out, newly
}

func evaluateBadges(d *UserData, today string) []Badge {
	badges, newly := Evaluate(*d, today)
	d.Badges = badges
	return newly
}
