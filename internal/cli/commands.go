package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/render"
)

const advisorDisabledMsg = "AI Coach not enabled. Add OPENAI_API_KEY to .env file to use this feature."

func (a *App) cmdRoadmap(ctx context.Context) int {
	overview, err := a.Roadmap.Overview(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.RoadmapSummary(overview))
	return 0
}

func (a *App) cmdStatus(ctx context.Context) int {
	progress, err := a.Progress.Progress(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.ProgressSummary(progress))
	fmt.Fprintln(a.Out)
	fmt.Fprintln(a.Out, render.AdvisorStatus(a.Config.AdvisorEnabled()))
	return 0
}

func (a *App) cmdLog(ctx context.Context, args []string) int {
	if len(args) < 2 {
		return a.usage("log <hours> <topics> [resources] [notes] [mood]")
	}

	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(a.Out, "✗ hours must be a number, got %q\n", args[0])
		return 1
	}

	topics := splitList(args[1], true)
	var resources []string
	if len(args) > 2 {
		resources = splitList(args[2], false)
	}
	notes := ""
	if len(args) > 3 {
		notes = args[3]
	}
	mood := ""
	if len(args) > 4 {
		mood = args[4]
	}

	session, err := a.Progress.LogSession(ctx, hours, topics, resources, notes, mood)
	if err != nil {
		return a.fail(err)
	}

	progress, err := a.Progress.Progress(ctx)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Session logged: %gh on %s\n", hours, strings.Join(session.TopicsCovered, ", "))
	fmt.Fprintf(a.Out, "  Current streak: %d days 🔥\n", progress.CurrentStreak)
	fmt.Fprintf(a.Out, "  Total hours: %.1fh\n", progress.TotalHours)
	return 0
}

func (a *App) cmdFocus(ctx context.Context) int {
	focus, err := a.Roadmap.Focus(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.FocusSummary(focus))
	return 0
}

func (a *App) cmdTasks(ctx context.Context) int {
	upcoming, err := a.Roadmap.Upcoming(ctx, 7)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.UpcomingTasks(upcoming))
	return 0
}

func (a *App) cmdMarkTask(ctx context.Context, args []string) int {
	if len(args) < 1 {
		return a.usage("mark-task <task_id>")
	}

	if err := a.Roadmap.CompleteTask(ctx, args[0]); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "✓ Task %s marked as complete!\n", args[0])
	return 0
}

func (a *App) cmdImportPlan(ctx context.Context, args []string) int {
	if len(args) < 1 {
		return a.usage("import-plan <file>")
	}

	n, err := a.Roadmap.ImportPlan(ctx, args[0])
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "✓ Imported %d roadmap year(s) from %s\n", n, args[0])
	return 0
}

func (a *App) cmdResources(ctx context.Context) int {
	resources, err := a.Resources.All(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.ResourceSummary(resources))
	return 0
}

func (a *App) cmdAddResource(ctx context.Context, args []string) int {
	if len(args) < 3 {
		return a.usage("add-resource <type> <title> <url> [difficulty] [topics]")
	}

	difficulty := models.DifficultyBeginner
	if len(args) > 3 {
		parsed, ok := models.ParseDifficulty(args[3])
		if !ok {
			fmt.Fprintln(a.Out, "Invalid difficulty. Use: beginner, intermediate, advanced")
			return 1
		}
		difficulty = parsed
	}

	var topics []string
	if len(args) > 4 {
		topics = splitList(args[4], false)
	}

	resource, err := a.Resources.Add(ctx, args[1], args[0], args[2], difficulty, "", topics)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Resource added: %s\n", resource.Title)
	fmt.Fprintf(a.Out, "  ID: %s\n", resource.ID)
	return 0
}

func (a *App) cmdResourceStatus(ctx context.Context, args []string) int {
	if len(args) < 2 {
		return a.usage("resource-status <resource_id> <status>")
	}

	status, ok := models.ParseResourceStatus(args[1])
	if !ok {
		fmt.Fprintln(a.Out, "Invalid status. Use: todo, in_progress, completed")
		return 1
	}

	if _, err := a.Resources.SetStatus(ctx, args[0], status); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "✓ Resource %s status updated to %s\n", args[0], status)
	return 0
}

func (a *App) cmdFlashcards(ctx context.Context) int {
	decks, err := a.Flashcards.Decks(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.FlashcardStats(decks))
	return 0
}

func (a *App) cmdCreateDeck(ctx context.Context, args []string) int {
	if len(args) < 1 {
		return a.usage("create-deck <topic> [description]")
	}

	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	deck, err := a.Flashcards.CreateDeck(ctx, args[0], description)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Flashcard deck created: %s\n", deck.Topic)
	fmt.Fprintf(a.Out, "  ID: %s\n", deck.ID)
	return 0
}

func (a *App) cmdAddCard(ctx context.Context, args []string) int {
	if len(args) < 3 {
		return a.usage("add-card <deck_id> <question> <answer>")
	}

	card, err := a.Flashcards.AddCard(ctx, args[0], args[1], args[2], models.DifficultyIntermediate)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.Out, "✓ Card added to deck")
	fmt.Fprintf(a.Out, "  Question: %s\n", card.Question)
	return 0
}

func (a *App) cmdImportDeck(ctx context.Context, args []string) int {
	if len(args) < 2 {
		return a.usage("import-deck <deck_id> <file>")
	}

	result, err := a.Flashcards.ImportDeck(ctx, args[0], args[1])
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Imported %d cards into deck %s\n", result.Imported, args[0])
	fmt.Fprintf(a.Out, "  Processed: %d rows, skipped: %d\n", result.TotalProcessed, result.Skipped)
	for _, line := range result.Errors {
		fmt.Fprintf(a.Out, "  - %s\n", line)
	}
	return 0
}

func (a *App) cmdProjects(ctx context.Context) int {
	projects, err := a.Projects.All(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.PortfolioSummary(projects))
	return 0
}

func (a *App) cmdAddProject(ctx context.Context, args []string) int {
	if len(args) < 3 {
		return a.usage("add-project <name> <repo_url> <description> [skills]")
	}

	var skills []string
	if len(args) > 3 {
		skills = splitList(args[3], false)
	}

	project, err := a.Projects.Add(ctx, args[0], args[1], args[2], skills)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Project added: %s\n", project.Name)
	fmt.Fprintf(a.Out, "  ID: %s\n", project.ID)
	fmt.Fprintf(a.Out, "  URL: %s\n", project.RepoURL)
	return 0
}

func (a *App) cmdUpdateProject(ctx context.Context, args []string) int {
	if len(args) < 2 {
		return a.usage("update-project <project_id> <status>")
	}

	status, ok := models.ParseProjectStatus(args[1])
	if !ok {
		fmt.Fprintln(a.Out, "Invalid status. Use: planning, in_progress, completed")
		return 1
	}

	if err := a.Projects.SetStatus(ctx, args[0], status); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "✓ Project %s status updated to %s\n", args[0], status)
	return 0
}

func (a *App) cmdAddFeature(ctx context.Context, args []string) int {
	if len(args) < 2 {
		return a.usage("add-feature <project_id> <feature>")
	}

	feature := strings.ToLower(strings.TrimSpace(args[1]))
	if err := a.Projects.SetFeature(ctx, args[0], feature, true); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "✓ Project %s: %s marked as complete\n", args[0], feature)
	return 0
}

func (a *App) cmdTips(ctx context.Context) int {
	recent, err := a.Tips.Recent(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.TipsSummary(recent))
	return 0
}

func (a *App) cmdGenerateTips(ctx context.Context) int {
	generated, err := a.Tips.GenerateWeek(ctx, time.Now())
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Generated %d coaching tips for this week\n", len(generated))
	fmt.Fprintln(a.Out, render.TipsSummary(generated))
	return 0
}

func (a *App) cmdProgress(ctx context.Context) int {
	progress, err := a.Progress.Progress(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.ProgressSummary(progress))
	return 0
}

func (a *App) cmdWeek(ctx context.Context) int {
	stats, err := a.Progress.WeekStats(ctx, time.Now())
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out, render.WeekSummary(stats.WeekStart, stats.Sessions, stats.TotalHours, stats.Topics))
	return 0
}

func (a *App) cmdInterview(ctx context.Context) int {
	if !a.Config.AdvisorEnabled() {
		fmt.Fprintln(a.Out, advisorDisabledMsg)
		return 0
	}

	fmt.Fprintln(a.Out, "\n🎯 INTERVIEW PREPARATION GUIDE")
	fmt.Fprintln(a.Out, strings.Repeat("=", 70))

	advice, err := a.Coach.InterviewPrep(ctx)
	if err != nil {
		fmt.Fprintln(a.Out, "Could not generate advice. Please check your API key.")
		return 1
	}
	fmt.Fprintln(a.Out, advice)
	return 0
}

func (a *App) cmdSuggest(ctx context.Context, args []string) int {
	if len(args) < 1 {
		return a.usage("suggest <topic> [difficulty]")
	}
	if !a.Config.AdvisorEnabled() {
		fmt.Fprintln(a.Out, advisorDisabledMsg)
		return 0
	}

	difficulty := models.DifficultyIntermediate
	if len(args) > 1 {
		parsed, ok := models.ParseDifficulty(args[1])
		if !ok {
			fmt.Fprintln(a.Out, "Invalid difficulty. Use: beginner, intermediate, advanced")
			return 1
		}
		difficulty = parsed
	}

	fmt.Fprintf(a.Out, "\n💡 RESOURCE SUGGESTIONS FOR: %s\n", args[0])
	fmt.Fprintln(a.Out, strings.Repeat("=", 70))

	suggestions, err := a.Coach.SuggestResources(ctx, args[0], difficulty)
	if err != nil {
		fmt.Fprintln(a.Out, "Could not generate suggestions. Please check your API key.")
		return 1
	}
	fmt.Fprintln(a.Out, suggestions)
	return 0
}

func (a *App) cmdSuggestCards(ctx context.Context, args []string) int {
	if len(args) < 1 {
		return a.usage("suggest-cards <deck_id> [topic] [n]")
	}
	if !a.Config.AdvisorEnabled() {
		fmt.Fprintln(a.Out, advisorDisabledMsg)
		return 0
	}

	topic := ""
	if len(args) > 1 {
		topic = args[1]
	}
	n := 0
	if len(args) > 2 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintf(a.Out, "✗ card count must be a number, got %q\n", args[2])
			return 1
		}
		n = parsed
	}

	cards, err := a.Flashcards.GenerateCards(ctx, args[0], topic, n)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.Out, "✓ Added %d AI-generated cards to deck %s\n", len(cards), args[0])
	for _, card := range cards {
		fmt.Fprintf(a.Out, "  - %s\n", card.Question)
	}
	return 0
}

func (a *App) cmdAnalyze(ctx context.Context) int {
	if !a.Config.AdvisorEnabled() {
		fmt.Fprintln(a.Out, advisorDisabledMsg)
		return 0
	}

	progress, err := a.Progress.Progress(ctx)
	if err != nil {
		return a.fail(err)
	}
	focus, err := a.Roadmap.Focus(ctx)
	if err != nil {
		return a.fail(err)
	}

	focusLabel := "the roadmap is complete"
	if !focus.Done && focus.Week != "" {
		focusLabel = focus.Week
	}

	fmt.Fprintln(a.Out, "\n📈 PROGRESS ANALYSIS")
	fmt.Fprintln(a.Out, strings.Repeat("=", 70))

	analysis, err := a.Coach.AnalyzeProgress(ctx, sessionsDigest(progress), focusLabel)
	if err != nil {
		fmt.Fprintln(a.Out, "Could not generate analysis. Please check your API key.")
		return 1
	}
	fmt.Fprintln(a.Out, analysis)
	return 0
}

// sessionsDigest condenses recent history into a prompt-sized summary.
func sessionsDigest(p models.ProgressState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.1f hours over %d sessions, current streak %d days.",
		p.TotalHours, len(p.Sessions), p.CurrentStreak)

	sessions := p.Sessions
	if len(sessions) > 5 {
		sessions = sessions[len(sessions)-5:]
	}
	for _, s := range sessions {
		fmt.Fprintf(&b, "\n%s: %.1fh on %s", s.Date, s.DurationHours, strings.Join(s.TopicsCovered, ", "))
	}
	return b.String()
}
