package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/cli"
	"github.com/example/studycoach/internal/config"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/store"
	"github.com/example/studycoach/internal/testutil"
	"github.com/example/studycoach/internal/tips"
)

func newTestApp(t *testing.T, st *store.Store) (*cli.App, *bytes.Buffer) {
	t.Helper()

	coach := advisor.NewCoach(advisor.Disabled{})
	out := &bytes.Buffer{}
	return &cli.App{
		Config:     config.Config{DataPath: st.Path(), Addr: ":0", LogLevel: "ERROR", ReviewLimit: 10},
		Store:      st,
		Coach:      coach,
		Roadmap:    services.NewRoadmapService(st),
		Progress:   services.NewProgressService(st),
		Flashcards: services.NewFlashcardService(st, coach),
		Resources:  services.NewResourceService(st),
		Projects:   services.NewProjectService(st),
		Tips:       services.NewTipsService(st, tips.New(tips.DefaultBank()), coach),
		Out:        out,
		In:         strings.NewReader(""),
	}, out
}

func TestRun_NoArgs_PrintsHelp(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run(nil)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "COMMANDS:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run([]string{"dance"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Unknown command: dance")
}

func TestLog_RecordsSession(t *testing.T) {
	st := testutil.TempStore(t)
	app, out := newTestApp(t, st)

	code := app.Run([]string{"log", "2.5", "Python,Linear_Algebra"})

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "✓ Session logged: 2.5h on Python, Linear Algebra")
	assert.Contains(t, out.String(), "Current streak: 1 days")

	state := st.Load()
	require.Len(t, state.Progress.Sessions, 1)
	assert.Equal(t, 2.5, state.Progress.Sessions[0].DurationHours)
	assert.Equal(t, []string{"Python", "Linear Algebra"}, state.Progress.Sessions[0].TopicsCovered)
}

func TestLog_InvalidHours(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run([]string{"log", "plenty", "Python"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "hours must be a number")
}

func TestLog_MissingArgs(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run([]string{"log", "2"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Usage: studycoach log")
}

func TestMarkTask_CompletesSeededTask(t *testing.T) {
	st := testutil.TempStore(t)
	app, out := newTestApp(t, st)

	code := app.Run([]string{"mark-task", "w1_t1"})

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "✓ Task w1_t1 marked as complete!")

	state := st.Load()
	task := state.Roadmap.Years[0].Quarters[0].Months[0].Weeks[0].Tasks[0]
	assert.Equal(t, models.MilestoneCompleted, task.Status)
}

func TestMarkTask_UnknownID(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run([]string{"mark-task", "nope"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "✗")
}

func TestCreateDeck_ThenAddCard(t *testing.T) {
	st := testutil.TempStore(t)
	app, out := newTestApp(t, st)

	code := app.Run([]string{"create-deck", "Transformers", "attention papers"})
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "✓ Flashcard deck created: Transformers")

	state := st.Load()
	require.Len(t, state.Decks, 1)
	deckID := state.Decks[0].ID

	out.Reset()
	code = app.Run([]string{"add-card", deckID, "What is attention?", "Weighted context"})
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Question: What is attention?")

	state = st.Load()
	require.Len(t, state.Decks[0].Cards, 1)
	assert.Equal(t, models.CardNew, state.Decks[0].Cards[0].Status)
}

func TestReview_InteractiveSession(t *testing.T) {
	deck := models.Deck{
		ID:    "d1",
		Topic: "Transformers",
		Cards: []models.Flashcard{
			{ID: "c1", Question: "What is attention?", Answer: "Weighted context", Status: models.CardNew},
		},
	}
	st := testutil.SeededStore(t, testutil.StateWithDeck(deck))
	app, out := newTestApp(t, st)
	app.In = strings.NewReader("\nmastered\n")

	code := app.Run([]string{"review"})

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "FLASHCARD REVIEW SESSION (1 cards)")
	assert.Contains(t, out.String(), "[1/1] Transformers")
	assert.Contains(t, out.String(), "A: Weighted context")
	assert.Contains(t, out.String(), "✓ Review session complete!")

	state := st.Load()
	assert.Equal(t, models.CardMastered, state.Decks[0].Cards[0].Status)
	assert.Equal(t, 1, state.Decks[0].Cards[0].ReviewCount)
}

func TestReview_RejectsInvalidOutcome(t *testing.T) {
	deck := models.Deck{
		ID:    "d1",
		Topic: "Transformers",
		Cards: []models.Flashcard{
			{ID: "c1", Question: "Q", Answer: "A", Status: models.CardNew},
		},
	}
	st := testutil.SeededStore(t, testutil.StateWithDeck(deck))
	app, out := newTestApp(t, st)
	app.In = strings.NewReader("\nwat\neasy\n")

	code := app.Run([]string{"review"})

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Invalid input. Use: easy, hard, difficult, or mastered")

	state := st.Load()
	assert.Equal(t, models.CardReviewing, state.Decks[0].Cards[0].Status)
}

func TestReview_NothingToReview(t *testing.T) {
	st := testutil.SeededStore(t, &models.State{})
	app, out := newTestApp(t, st)

	code := app.Run([]string{"review"})

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "No cards to review")
}

func TestAddResource_AndList(t *testing.T) {
	st := testutil.TempStore(t)
	app, out := newTestApp(t, st)

	code := app.Run([]string{"add-resource", "video", "Intro to Backprop", "https://example.com/v1"})
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "✓ Resource added: Intro to Backprop")

	out.Reset()
	code = app.Run([]string{"resources"})
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Intro to Backprop")
}

func TestResourceStatus_InvalidStatus(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run([]string{"resource-status", "r1", "later"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Invalid status. Use: todo, in_progress, completed")
}

func TestAddProject_ThenFeature(t *testing.T) {
	st := testutil.TempStore(t)
	app, out := newTestApp(t, st)

	code := app.Run([]string{"add-project", "rag-bot", "https://github.com/me/rag-bot", "retrieval chatbot", "rag,eval"})
	require.Equal(t, 0, code, out.String())

	state := st.Load()
	require.Len(t, state.Projects, 1)
	projectID := state.Projects[0].ID

	out.Reset()
	code = app.Run([]string{"add-feature", projectID, "readme"})
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "readme marked as complete")

	state = st.Load()
	assert.True(t, state.Projects[0].HasReadme)
}

func TestSuggest_AdvisorDisabled(t *testing.T) {
	app, out := newTestApp(t, testutil.TempStore(t))

	code := app.Run([]string{"suggest", "transformers"})

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "AI Coach not enabled")
}

func TestGenerateTips_FallsBackToTemplates(t *testing.T) {
	st := testutil.TempStore(t)
	app, out := newTestApp(t, st)

	code := app.Run([]string{"generate-tips"})

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "✓ Generated 4 coaching tips for this week")

	state := st.Load()
	assert.Len(t, state.Tips, 4)
}
