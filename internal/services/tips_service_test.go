package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/testutil"
	"github.com/example/studycoach/internal/testutil/mocks"
	"github.com/example/studycoach/internal/tips"
)

func TestGenerateWeek_TemplateFallback(t *testing.T) {
	store := testutil.TempStore(t)
	svc := services.NewTipsService(store, tips.New(tips.DefaultBank()), advisor.NewCoach(advisor.Disabled{}))

	generated, err := svc.GenerateWeek(context.Background(), time.Now().UTC())

	require.NoError(t, err)
	require.Len(t, generated, 4, "one tip per category")
	for _, tip := range generated {
		assert.Equal(t, models.TipSourceTemplate, tip.Source, "disabled advisor falls back to templates")
		assert.NotEmpty(t, tip.Content)
	}

	state := store.Load()
	assert.Len(t, state.Tips, 4, "tips are persisted")
}

func TestGenerateWeek_UsesAdvisorWhenAvailable(t *testing.T) {
	store := testutil.TempStore(t)
	mockAdvisor := new(mocks.MockAdvisor)
	mockAdvisor.On("Generate", mock.Anything, mock.Anything).Return("Personalized advice.", nil)
	svc := services.NewTipsService(store, tips.New(tips.DefaultBank()), advisor.NewCoach(mockAdvisor))

	generated, err := svc.GenerateWeek(context.Background(), time.Now().UTC())

	require.NoError(t, err)
	require.Len(t, generated, 4)
	for _, tip := range generated {
		assert.Equal(t, models.TipSourceOpenAI, tip.Source)
		assert.Equal(t, "Personalized advice.", tip.Content)
	}
	mockAdvisor.AssertNumberOfCalls(t, "Generate", 4)
}

func TestGenerateWeek_PartialAdvisorFailure(t *testing.T) {
	store := testutil.TempStore(t)
	mockAdvisor := new(mocks.MockAdvisor)
	mockAdvisor.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "portfolio")
	})).Return("", assert.AnError)
	mockAdvisor.On("Generate", mock.Anything, mock.Anything).Return("Personalized advice.", nil)
	svc := services.NewTipsService(store, tips.New(tips.DefaultBank()), advisor.NewCoach(mockAdvisor))

	generated, err := svc.GenerateWeek(context.Background(), time.Now().UTC())

	require.NoError(t, err)
	require.Len(t, generated, 4)

	sources := map[models.TipCategory]string{}
	for _, tip := range generated {
		sources[tip.Category] = string(tip.Source)
	}
	assert.Equal(t, string(models.TipSourceTemplate), sources[models.TipPortfolio], "failed category falls back")
	assert.Equal(t, string(models.TipSourceOpenAI), sources[models.TipNetworking], "other categories keep advisor content")
}

func TestGenerateWeek_ExistingWeekIsKept(t *testing.T) {
	store := testutil.TempStore(t)
	svc := services.NewTipsService(store, tips.New(tips.DefaultBank()), advisor.NewCoach(advisor.Disabled{}))
	ctx := context.Background()
	asOf := time.Now().UTC()

	first, err := svc.GenerateWeek(ctx, asOf)
	require.NoError(t, err)
	second, err := svc.GenerateWeek(ctx, asOf)
	require.NoError(t, err)

	require.Len(t, second, 4)
	assert.Equal(t, first[0].ID, second[0].ID, "the existing batch is returned, not regenerated")
	assert.Len(t, store.Load().Tips, 4, "re-running must not duplicate the week's tips")
}

func TestRecentTips_LastBatch(t *testing.T) {
	state := &models.State{}
	for week := 1; week <= 2; week++ {
		for _, category := range models.TipCategories {
			state.Tips = append(state.Tips, models.WeeklyTip{
				ID:       models.NewID(),
				Week:     week,
				Category: category,
				Content:  "tip",
			})
		}
	}
	svc := services.NewTipsService(testutil.SeededStore(t, state), tips.New(tips.DefaultBank()), advisor.NewCoach(advisor.Disabled{}))

	recent, err := svc.Recent(context.Background())

	require.NoError(t, err)
	require.Len(t, recent, 4)
	for _, tip := range recent {
		assert.Equal(t, 2, tip.Week, "only the latest week's batch is returned")
	}
}

func TestRecentTips_Empty(t *testing.T) {
	svc := services.NewTipsService(testutil.TempStore(t), tips.New(tips.DefaultBank()), advisor.NewCoach(advisor.Disabled{}))

	recent, err := svc.Recent(context.Background())

	require.NoError(t, err)
	assert.Empty(t, recent)
}
