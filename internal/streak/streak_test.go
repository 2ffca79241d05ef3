package streak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/streak"
	"github.com/example/studycoach/internal/testutil"
)

func sessionsOn(dates ...string) []models.Session {
	sessions := make([]models.Session, 0, len(dates))
	for _, d := range dates {
		sessions = append(sessions, models.Session{Date: d, DurationHours: 1})
	}
	return sessions
}

func TestRecompute_ThreeConsecutiveDays(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "2024-01-02", "2024-01-03")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-03"))

	assert.Equal(t, 3, current, "run ending today should count in full")
	assert.Equal(t, 3, longest)
}

func TestRecompute_StaleHistoryResetsCurrent(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "2024-01-02", "2024-01-03")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-05"))

	assert.Equal(t, 0, current, "two missed days should reset the current streak")
	assert.Equal(t, 3, longest, "the longest streak is history and never resets")
}

func TestRecompute_YesterdayGrace(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "2024-01-02", "2024-01-03")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-04"))

	assert.Equal(t, 3, current, "a session yesterday keeps the streak alive")
	assert.Equal(t, 3, longest)
}

func TestRecompute_GapClosesRun(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "2024-01-02", "2024-01-05")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-05"))

	assert.Equal(t, 1, current, "the run across the gap must not carry over")
	assert.Equal(t, 2, longest)
}

func TestRecompute_GapHistoryGoneStale(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "2024-01-02", "2024-01-05")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-08"))

	assert.Equal(t, 0, current)
	assert.Equal(t, 2, longest)
}

func TestRecompute_EmptyHistory(t *testing.T) {
	current, longest := streak.Recompute(nil, testutil.Day(t, "2024-01-01"))

	assert.Equal(t, 0, current)
	assert.Equal(t, 0, longest)
}

func TestRecompute_SingleRecentSession(t *testing.T) {
	sessions := sessionsOn("2024-01-03")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-03"))

	assert.Equal(t, 1, current)
	assert.Equal(t, 1, longest)
}

func TestRecompute_SingleStaleSession(t *testing.T) {
	sessions := sessionsOn("2024-01-03")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-10"))

	assert.Equal(t, 0, current)
	assert.Equal(t, 1, longest)
}

func TestRecompute_DuplicateDatesCountOnce(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "2024-01-01", "2024-01-02", "2024-01-02")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-02"))

	assert.Equal(t, 2, current, "two sessions on the same day are one streak day")
	assert.Equal(t, 2, longest)
}

func TestRecompute_OrderIndependent(t *testing.T) {
	sessions := sessionsOn("2024-01-03", "2024-01-01", "2024-01-02")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-03"))

	assert.Equal(t, 3, current, "history order in the file must not matter")
	assert.Equal(t, 3, longest)
}

func TestRecompute_SkipsUnparseableDates(t *testing.T) {
	sessions := sessionsOn("2024-01-01", "not-a-date", "2024-01-02")

	current, longest := streak.Recompute(sessions, testutil.Day(t, "2024-01-02"))

	assert.Equal(t, 2, current)
	assert.Equal(t, 2, longest)
}

func TestRecompute_LongestNeverBelowCurrent(t *testing.T) {
	histories := [][]models.Session{
		nil,
		sessionsOn("2024-01-01"),
		sessionsOn("2024-01-01", "2024-01-02", "2024-01-03"),
		sessionsOn("2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06", "2024-01-07"),
		sessionsOn("2024-01-01", "2024-01-04", "2024-01-09"),
	}
	asOfs := []string{"2024-01-01", "2024-01-03", "2024-01-07", "2024-01-08", "2024-01-20"}

	for _, sessions := range histories {
		for _, asOf := range asOfs {
			current, longest := streak.Recompute(sessions, testutil.Day(t, asOf))
			assert.GreaterOrEqual(t, longest, current, "longest must bound current for asOf=%s", asOf)
		}
	}
}
