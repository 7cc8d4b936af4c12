package progress

// Category names are fixed; every record carries all five.
const (
	CategoryAlgorithms     = "Algorithms"
	CategoryDataStructures = "Data Structures"
	CategoryFundamentals   = "Programming Fundamentals"
	CategoryMathematics    = "Mathematics"
	CategorySystemDesign   = "System Design"
)

// DefaultRecord returns the seeded demo record shown to first-time users.
func DefaultRecord() Record {
	return Record{
		Profile: Profile{
			Name:       "Alex Carter",
			Initials:   "AC",
			Rank:       "Silver III",
			Percentile: 68,
			Score:      2450,
			Level:      "Intermediate",
		},
		QuickStats: QuickStats{
			Streak:         5,
			TestsCompleted: 24,
			AvgAccuracy:    78.5,
			StudyMinutes:   1240,
			ProblemsSolved: 42,
			TopicsMastered: 6,
		},
		CategoryPerformance: []CategoryScore{
			{Name: CategoryAlgorithms, Score: 72, Trend: TrendUp, Color: "#8B5CF6"},
			{Name: CategoryDataStructures, Score: 65, Trend: TrendStable, Color: "#14B8A6"},
			{Name: CategoryFundamentals, Score: 88, Trend: TrendUp, Color: "#22C55E"},
			{Name: CategoryMathematics, Score: 54, Trend: TrendDown, Color: "#F97316"},
			{Name: CategorySystemDesign, Score: 40, Trend: TrendStable, Color: "#F43F5E"},
		},
		StreakData: StreakData{
			Current:         5,
			Longest:         12,
			WeeklyGoal:      5,
			MonthlyGoal:     20,
			PracticeMinutes: 145,
			Target:          30,
		},
		RecentTests: []TestEntry{
			{Name: "Algorithms Quiz", Score: 85, Date: "2026-08-28", Category: CategoryAlgorithms, Difficulty: "medium"},
			{Name: "Binary Search", Score: 100, Date: "2026-08-27", Category: CategoryAlgorithms, Difficulty: "medium"},
			{Name: "Mathematics Quiz", Score: 60, Date: "2026-08-25", Category: CategoryMathematics, Difficulty: "mixed"},
		},
		Achievements: defaultAchievements(),
	}
}

// DefaultDocument returns the seeded demo document with zeroed counters.
func DefaultDocument() Document {
	return Document{Record: DefaultRecord()}
}
