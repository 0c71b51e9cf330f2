package engine

// HabitType is the closed set of trackable habit kinds.
type HabitType string

const (
	HabitWater      HabitType = "water"
	HabitExercise   HabitType = "exercise"
	HabitMeditation HabitType = "meditation"
	HabitReading    HabitType = "reading"
)

func (h HabitType) IsValid() bool {
	switch h {
	case HabitWater, HabitExercise, HabitMeditation, HabitReading:
		return true
	default:
		return false
	}
}

// Habit is one trackable daily activity. CompletedToday and XPEarned are
// derived caches recomputed from Progress/Target on every mutation.
type Habit struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Type              HabitType `json:"type"`
	Target            float64   `json:"target"`
	TargetUnit        string    `json:"targetUnit"`
	Progress          float64   `json:"progress"`
	ProgressUnit      string    `json:"progressUnit"`
	StreakCount       int       `json:"streakCount"`
	CompletedToday    bool      `json:"completedToday"`
	XPEarned          int       `json:"xpEarned"`
	Icon              string    `json:"icon"`
	LastCompletedDate string    `json:"lastCompletedDate,omitempty"`
}

// Badge is a one-way achievement unlock. The predicate gating it is process
// local (see badges.go) and never serialized; only the unlock state persists.
type Badge struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Unlocked     bool   `json:"unlocked"`
	UnlockedDate string `json:"unlockedDate,omitempty"`
}

// UserData is the aggregate root persisted per user. TotalXP and Level are
// derived from the habits and must never be mutated independently.
type UserData struct {
	OwnerID       string  `json:"ownerID,omitempty"`
	Habits        []Habit `json:"habits"`
	TotalXP       int     `json:"totalXP"`
	Level         int     `json:"level"`
	Badges        []Badge `json:"badges"`
	LastVisitDate string  `json:"lastVisitDate"`
	SavedAt       int64   `json:"savedAt,omitempty"` // unix millis of last save
}

// Clone returns a deep copy so reducers can follow immutable-update
// discipline without aliasing the caller's slices.
func (d UserData) Clone() UserData {
	out := d
	out.Habits = make([]Habit, len(d.Habits))
	copy(out.Habits, d.Habits)
	out.Badges = make([]Badge, len(d.Badges))
	copy(out.Badges, d.Badges)
	return out
}

// TotalStreak sums streaks across all habits.
func (d UserData) TotalStreak() int {
	total := 0
	for _, h := range d.Habits {
		total += h.StreakCount
	}
	return total
}

func (d UserData) habitByType(t HabitType) *Habit {
	for i := range d.Habits {
		if d.Habits[i].Type == t {
			return &d.Habits[i]
		}
	}
	return nil
}
