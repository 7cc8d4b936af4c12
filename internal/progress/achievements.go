package progress

// Achievement IDs. The set is fixed; badges are never removed.
const (
	AchFirstSteps     = "first-steps"
	AchQuizMaster     = "quiz-master"
	AchStreakWarrior  = "streak-warrior"
	AchSharpshooter   = "sharpshooter"
	AchProblemCrusher = "problem-crusher"
	AchMarathon       = "marathon"
)

// achievementRule decides whether a badge's condition currently holds.
// Earned flags only ever go false to true, so a condition that stops
// holding later does not revoke the badge.
type achievementRule struct {
	id   string
	name string
	met  func(r *Record) bool
}

var achievementRules = []achievementRule{
	{AchFirstSteps, "First Steps", func(r *Record) bool {
		return r.QuickStats.TestsCompleted >= 1
	}},
	{AchQuizMaster, "Quiz Master", func(r *Record) bool {
		return r.QuickStats.TestsCompleted >= 10
	}},
	{AchStreakWarrior, "Streak Warrior", func(r *Record) bool {
		return r.StreakData.Current >= 7
	}},
	{AchSharpshooter, "Sharpshooter", func(r *Record) bool {
		return r.QuickStats.AvgAccuracy >= 90 && r.QuickStats.TestsCompleted >= 5
	}},
	{AchProblemCrusher, "Problem Crusher", func(r *Record) bool {
		return r.QuickStats.ProblemsSolved >= 25
	}},
	{AchMarathon, "Marathon", func(r *Record) bool {
		return r.QuickStats.StudyMinutes >= 600
	}},
}

// defaultAchievements returns the badge list for the demo record, with
// earned flags consistent with the demo stats.
func defaultAchievements() []Achievement {
	demo := &Record{
		QuickStats: QuickStats{
			TestsCompleted: 24,
			AvgAccuracy:    78.5,
			StudyMinutes:   1240,
			ProblemsSolved: 42,
		},
		StreakData: StreakData{Current: 5},
	}
	out := make([]Achievement, len(achievementRules))
	for i, rule := range achievementRules {
		out[i] = Achievement{ID: rule.id, Name: rule.name, Earned: rule.met(demo)}
	}
	return out
}

// updateAchievements applies the write-once transition for every badge
// whose condition now holds. Missing badges (older documents) are added.
func updateAchievements(r *Record) {
	byID := make(map[string]int, len(r.Achievements))
	for i, a := range r.Achievements {
		byID[a.ID] = i
	}

	for _, rule := range achievementRules {
		i, ok := byID[rule.id]
		if !ok {
			r.Achievements = append(r.Achievements, Achievement{ID: rule.id, Name: rule.name})
			i = len(r.Achievements) - 1
		}
		if !r.Achievements[i].Earned && rule.met(r) {
			r.Achievements[i].Earned = true
		}
	}
}
