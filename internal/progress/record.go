package progress

import "github.com/adityak/codedrill/internal/adaptive"

// SchemaVersion is the current persisted document version.
// v1: record only. v2: adds the adaptive counters so the difficulty
// recommendation survives restarts.
const SchemaVersion = 2

// MaxRecentTests bounds the recent-tests list. Oldest entries are evicted.
const MaxRecentTests = 10

// Trend describes the direction of a category score change.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Profile holds display-oriented identity fields.
type Profile struct {
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Rank       string `json:"rank"`
	Percentile int    `json:"percentile"`
	Score      int    `json:"score"`
	Level      string `json:"level"`
}

// QuickStats are the headline numbers on the dashboard.
type QuickStats struct {
	Streak         int     `json:"streak"`
	TestsCompleted int     `json:"tests_completed"`
	AvgAccuracy    float64 `json:"avg_accuracy"`
	StudyMinutes   int     `json:"study_minutes"`
	ProblemsSolved int     `json:"problems_solved"`
	TopicsMastered int     `json:"topics_mastered"`
}

// CategoryScore is one subject category's rolling score.
type CategoryScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"` // 0-100
	Trend Trend  `json:"trend"`
	Color string `json:"color"`
}

// StreakData tracks daily practice continuity.
type StreakData struct {
	Current          int    `json:"current"`
	Longest          int    `json:"longest"`
	WeeklyGoal       int    `json:"weekly_goal"`
	MonthlyGoal      int    `json:"monthly_goal"`
	PracticeMinutes  int    `json:"practice_minutes"`
	Target           int    `json:"target"`
	LastActivityDate string `json:"last_activity_date"` // "2006-01-02", empty if never
}

// TestEntry is one row in the recent-tests list.
type TestEntry struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Date       string `json:"date"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// Achievement is a named badge. Earned transitions false to true exactly
// once and never reverts.
type Achievement struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Earned bool   `json:"earned"`
}

// Record is the full per-user stats document.
type Record struct {
	Profile             Profile         `json:"profile"`
	QuickStats          QuickStats      `json:"quick_stats"`
	CategoryPerformance []CategoryScore `json:"category_performance"`
	StreakData          StreakData      `json:"streak_data"`
	RecentTests         []TestEntry     `json:"recent_tests"`
	Achievements        []Achievement   `json:"achievements"`
}

// Document is what actually gets persisted: the record plus the adaptive
// counters (since schema v2).
type Document struct {
	Record   Record            `json:"record"`
	Counters adaptive.Counters `json:"counters"`
}

// Category returns a pointer to the named category score, or nil.
func (r *Record) Category(name string) *CategoryScore {
	for i := range r.CategoryPerformance {
		if r.CategoryPerformance[i].Name == name {
			return &r.CategoryPerformance[i]
		}
	}
	return nil
}

// prependTest adds an entry at the front of RecentTests, evicting the
// oldest entry when the list exceeds MaxRecentTests.
func (r *Record) prependTest(e TestEntry) {
	r.RecentTests = append([]TestEntry{e}, r.RecentTests...)
	if len(r.RecentTests) > MaxRecentTests {
		r.RecentTests = r.RecentTests[:MaxRecentTests]
	}
}
