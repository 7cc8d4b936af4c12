package progress

import "time"

const dateLayout = "2006-01-02"

// updateStreak applies the calendar-day streak rules for activity at now:
// a gap of exactly one day extends the streak, repeated same-day activity
// leaves it unchanged, and any longer gap (or no history) resets it to 1.
func updateStreak(sd *StreakData, now time.Time) {
	today := now.Format(dateLayout)

	switch daysSince(sd.LastActivityDate, now) {
	case 0:
		// Already counted today.
	case 1:
		sd.Current++
	default:
		sd.Current = 1
	}

	if sd.Current > sd.Longest {
		sd.Longest = sd.Current
	}
	sd.LastActivityDate = today
}

// daysSince returns the whole calendar days between the stored activity
// date and now. Unparseable or empty dates report as a large gap so the
// streak resets.
func daysSince(last string, now time.Time) int {
	if last == "" {
		return -1
	}
	t, err := time.ParseInLocation(dateLayout, last, now.Location())
	if err != nil {
		return -1
	}
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(nowDay.Sub(t).Hours() / 24)
}
