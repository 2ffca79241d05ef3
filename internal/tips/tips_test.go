package tips_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/tips"
)

func TestForWeek_OneTipPerCategory(t *testing.T) {
	g := tips.New(tips.DefaultBank())
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	got := g.ForWeek(3, now)

	require.Len(t, got, 4, "one tip per category")
	assert.Equal(t, models.TipLearningStrategy, got[0].Category)
	assert.Equal(t, models.TipTimeManagement, got[1].Category)
	assert.Equal(t, models.TipPortfolio, got[2].Category)
	assert.Equal(t, models.TipNetworking, got[3].Category)
	for _, tip := range got {
		assert.Equal(t, 3, tip.Week)
		assert.Equal(t, models.TipSourceTemplate, tip.Source)
		assert.NotEmpty(t, tip.ID)
		assert.NotEmpty(t, tip.Content)
		assert.Equal(t, now, tip.CreatedAt)
	}
}

func TestForWeek_RotatesByWeek(t *testing.T) {
	bank := tips.Bank{
		models.TipLearningStrategy: {"tip a", "tip b", "tip c"},
	}
	g := tips.New(bank)
	now := time.Now().UTC()

	first := g.ForWeek(0, now)
	second := g.ForWeek(1, now)
	wrapped := g.ForWeek(3, now)

	require.Len(t, first, 1)
	assert.Equal(t, "tip a", first[0].Content)
	assert.Equal(t, "tip b", second[0].Content)
	assert.Equal(t, "tip a", wrapped[0].Content, "selection wraps around the bank")
}

func TestForWeek_SameWeekIsDeterministic(t *testing.T) {
	g := tips.New(tips.DefaultBank())
	now := time.Now().UTC()

	first := g.ForWeek(7, now)
	second := g.ForWeek(7, now)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Content, second[i].Content, "same week picks the same texts")
	}
}

func TestForWeek_SkipsEmptyCategories(t *testing.T) {
	g := tips.New(tips.Bank{models.TipPortfolio: {"ship it"}})

	got := g.ForWeek(1, time.Now().UTC())

	require.Len(t, got, 1)
	assert.Equal(t, models.TipPortfolio, got[0].Category)
}

func TestWeekNumber_StaysInRange(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), // ISO week 1 of 2025
		time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC), // ISO week 53
	}
	for _, d := range dates {
		week := tips.WeekNumber(d)
		assert.GreaterOrEqual(t, week, 1, "week for %s", d)
		assert.LessOrEqual(t, week, 52, "week for %s", d)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Learning Strategy Tip", tips.Title(models.TipLearningStrategy))
	assert.Equal(t, "Portfolio Tip", tips.Title(models.TipPortfolio))
}
