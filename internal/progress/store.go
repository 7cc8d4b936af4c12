package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/store"
)

// QuizResult is the outcome of one completed quiz.
type QuizResult struct {
	Category   string
	Correct    int
	Total      int
	TimeSpent  time.Duration
	Difficulty string // label for the recent-tests row; "mixed" when empty
}

// CodingResult is the outcome of one coding-problem submission.
type CodingResult struct {
	Title      string
	Difficulty problems.Difficulty
	Solved     bool
	Attempts   int
	TimeSpent  time.Duration
}

// Store reads and writes the progress document. Storage failures degrade
// rather than propagate: loads fall back to the seeded default, writes are
// dropped with a warning. The worst case is stale progress, never a crash.
type Store struct {
	repo store.RecordRepo
	now  func() time.Time
}

// NewStore creates a Store over the given repository.
func NewStore(repo store.RecordRepo) *Store {
	return &Store{repo: repo, now: time.Now}
}

// Load returns the stored document, or the seeded default when nothing is
// stored or the stored value cannot be parsed.
func (s *Store) Load(ctx context.Context) Document {
	raw, version, ok, err := s.repo.Load(ctx)
	if err != nil {
		warnf("load progress: %v", err)
		return DefaultDocument()
	}
	if !ok {
		return DefaultDocument()
	}

	doc, err := decodeDocument(raw, version)
	if err != nil {
		// Malformed stored state is treated as absent, not fatal.
		warnf("parse progress document: %v", err)
		return DefaultDocument()
	}
	return doc
}

// Initialize returns the stored document, seeding and persisting the
// default first when none exists. Use at application start so first-time
// users see demo data rather than an empty shell.
func (s *Store) Initialize(ctx context.Context) Document {
	_, _, ok, err := s.repo.Load(ctx)
	if err == nil && ok {
		return s.Load(ctx)
	}
	if err != nil {
		warnf("load progress: %v", err)
	}

	doc := DefaultDocument()
	s.Save(ctx, doc)
	return doc
}

// Save serializes and overwrites the entire stored document. Failures are
// logged and dropped; the operation is not retried.
func (s *Store) Save(ctx context.Context, doc Document) {
	raw, err := json.Marshal(doc)
	if err != nil {
		warnf("encode progress document: %v", err)
		return
	}
	if err := s.repo.Save(ctx, raw, SchemaVersion); err != nil {
		warnf("save progress document: %v", err)
	}
}

// Reset deletes the stored document. The next Load or Initialize falls
// back to the seeded default.
func (s *Store) Reset(ctx context.Context) error {
	return s.repo.Delete(ctx)
}

// RecordQuizResult applies a quiz outcome to the stored document and
// persists it.
func (s *Store) RecordQuizResult(ctx context.Context, qr QuizResult) Document {
	doc := s.Load(ctx)
	s.applyQuiz(&doc, qr)
	s.Save(ctx, doc)
	return doc
}

// RecordCodingResult applies a coding submission outcome to the stored
// document and persists it.
func (s *Store) RecordCodingResult(ctx context.Context, cr CodingResult) Document {
	doc := s.Load(ctx)
	s.applyCoding(&doc, cr)
	s.Save(ctx, doc)
	return doc
}

func (s *Store) applyQuiz(doc *Document, qr QuizResult) {
	if qr.Total <= 0 {
		return
	}
	now := s.now()
	r := &doc.Record
	accuracy := float64(qr.Correct) / float64(qr.Total) * 100

	// Two-point moving average with the previous category score.
	if cat := r.Category(qr.Category); cat != nil {
		old := cat.Score
		cat.Score = int(math.Round((float64(old) + accuracy) / 2))
		switch {
		case cat.Score > old:
			cat.Trend = TrendUp
		case cat.Score < old:
			cat.Trend = TrendDown
		default:
			cat.Trend = TrendStable
		}
	}

	r.QuickStats.TestsCompleted++
	n := float64(r.QuickStats.TestsCompleted)
	r.QuickStats.AvgAccuracy = (r.QuickStats.AvgAccuracy*(n-1) + accuracy) / n

	s.addStudyTime(r, qr.TimeSpent)

	difficulty := qr.Difficulty
	if difficulty == "" {
		difficulty = "mixed"
	}
	r.prependTest(TestEntry{
		Name:       qr.Category + " Quiz",
		Score:      int(math.Round(accuracy)),
		Date:       now.Format(dateLayout),
		Category:   qr.Category,
		Difficulty: difficulty,
	})

	updateStreak(&r.StreakData, now)
	r.QuickStats.Streak = r.StreakData.Current
	updateAchievements(r)
}

func (s *Store) applyCoding(doc *Document, cr CodingResult) {
	now := s.now()
	r := &doc.Record

	if cr.Solved {
		r.QuickStats.ProblemsSolved++
		// Solving anything nudges the Algorithms score, capped at 100.
		if cat := r.Category(CategoryAlgorithms); cat != nil {
			old := cat.Score
			cat.Score = min(cat.Score+2, 100)
			if cat.Score > old {
				cat.Trend = TrendUp
			}
		}
	}

	doc.Counters.Record(cr.Difficulty, cr.Solved)

	s.addStudyTime(r, cr.TimeSpent)

	score := 0
	if cr.Solved {
		score = 100
	}
	r.prependTest(TestEntry{
		Name:       cr.Title,
		Score:      score,
		Date:       now.Format(dateLayout),
		Category:   "Coding",
		Difficulty: string(cr.Difficulty),
	})

	updateStreak(&r.StreakData, now)
	r.QuickStats.Streak = r.StreakData.Current
	updateAchievements(r)
}

func (s *Store) addStudyTime(r *Record, d time.Duration) {
	minutes := int(math.Round(d.Seconds() / 60))
	if minutes <= 0 {
		return
	}
	r.QuickStats.StudyMinutes += minutes
	r.StreakData.PracticeMinutes += minutes
}

// decodeDocument parses a stored document, migrating older schema versions
// forward. v1 stored the bare record with no counters.
func decodeDocument(raw []byte, version int) (Document, error) {
	switch version {
	case 1:
		var r Record
		if err := json.Unmarshal(raw, &r); err != nil {
			return Document{}, fmt.Errorf("schema v1: %w", err)
		}
		return Document{Record: r}, nil
	case SchemaVersion:
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return Document{}, fmt.Errorf("schema v%d: %w", version, err)
		}
		return doc, nil
	default:
		return Document{}, fmt.Errorf("unknown schema version %d", version)
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
