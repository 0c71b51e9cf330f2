package engine

// DefaultHabits returns the four starter habits every new user begins with.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "1", Name: "Drink Water", Type: HabitWater, Target: 3, TargetUnit: "L", ProgressUnit: "L", Icon: "💧"},
		{ID: "2", Name: "Exercise", Type: HabitExercise, Target: 60, TargetUnit: "min", ProgressUnit: "min", Icon: "🏃‍♂️"},
		{ID: "3", Name: "Meditate", Type: HabitMeditation, Target: 30, TargetUnit: "min", ProgressUnit: "min", Icon: "🧘‍♀️"},
		{ID: "4", Name: "Read", Type: HabitReading, Target: 60, TargetUnit: "min", ProgressUnit: "min", Icon: "📚"},
	}
}

// DefaultBadges returns all badges locked, in registry order.
func DefaultBadges() []Badge {
	badges := make([]Badge, 0, len(badgeRegistry))
	for _, spec := range badgeRegistry {
		badges = append(badges, Badge{ID: spec.ID, Name: spec.Name, Icon: spec.Icon})
	}
	return badges
}

// NewUserData builds a fresh aggregate for a first authenticated session:
// default habits, all badges locked, zero XP, level 1.
func NewUserData(ownerID, today string) UserData {
	return UserData{
		OwnerID:       ownerID,
		Habits:        DefaultHabits(),
		TotalXP:       0,
		Level:         1,
		Badges:        DefaultBadges(),
		LastVisitDate: today,
	}
}
