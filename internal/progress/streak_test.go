package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.Add(13 * time.Hour) // mid-day, any time of day behaves the same
}

func TestUpdateStreak(t *testing.T) {
	tests := []struct {
		name        string
		sd          StreakData
		now         time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "first activity starts at 1",
			sd:          StreakData{},
			now:         day("2026-03-10"),
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "consecutive day extends",
			sd:          StreakData{Current: 4, Longest: 6, LastActivityDate: "2026-03-09"},
			now:         day("2026-03-10"),
			wantCurrent: 5,
			wantLongest: 6,
		},
		{
			name:        "same day is a no-op on current",
			sd:          StreakData{Current: 4, Longest: 6, LastActivityDate: "2026-03-10"},
			now:         day("2026-03-10"),
			wantCurrent: 4,
			wantLongest: 6,
		},
		{
			name:        "two day gap resets",
			sd:          StreakData{Current: 9, Longest: 9, LastActivityDate: "2026-03-07"},
			now:         day("2026-03-10"),
			wantCurrent: 1,
			wantLongest: 9,
		},
		{
			name:        "extension updates longest",
			sd:          StreakData{Current: 6, Longest: 6, LastActivityDate: "2026-03-09"},
			now:         day("2026-03-10"),
			wantCurrent: 7,
			wantLongest: 7,
		},
		{
			name:        "garbage date resets",
			sd:          StreakData{Current: 3, Longest: 5, LastActivityDate: "not-a-date"},
			now:         day("2026-03-10"),
			wantCurrent: 1,
			wantLongest: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updateStreak(&tt.sd, tt.now)
			assert.Equal(t, tt.wantCurrent, tt.sd.Current)
			assert.Equal(t, tt.wantLongest, tt.sd.Longest)
			assert.Equal(t, tt.now.Format("2006-01-02"), tt.sd.LastActivityDate)
		})
	}
}
