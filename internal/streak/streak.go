// Package streak derives consecutive-day study streaks from session logs.
package streak

import (
	"sort"
	"time"

	"github.com/example/studycoach/internal/models"
)

const day = 24 * time.Hour

// Recompute derives the current and longest consecutive-day streaks from a
// session history. Multiple sessions on one date count once. A run extends
// only across exactly-one-day gaps. The current streak is the length of the
// run ending at the most recent date, and survives only if that date is
// asOf or the day before; anything staler resets it to zero. The yesterday
// grace window is fixed product policy.
func Recompute(sessions []models.Session, asOf time.Time) (current, longest int) {
	days := uniqueDays(sessions)
	if len(days) == 0 {
		return 0, 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	today := truncateToDay(asOf)
	if last.Equal(today) || last.AddDate(0, 0, 1).Equal(today) {
		current = run
	}
	return current, longest
}

// uniqueDays collects the distinct calendar days in the history, skipping
// dates that do not parse (possible only in a hand-edited data file).
func uniqueDays(sessions []models.Session) []time.Time {
	seen := make(map[string]struct{}, len(sessions))
	days := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		d, ok := s.Day()
		if !ok {
			continue
		}
		key := d.Format(models.DateLayout)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, d)
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
