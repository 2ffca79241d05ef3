// Package cli implements the studycoach command dispatch. Every command
// maps to one service call plus a rendered summary on stdout.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/config"
	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/store"
)

const helpText = `StudyCoach - AI/ML career transition coach

USAGE:
    studycoach <command> [options]

COMMANDS:
    roadmap                                  Show the complete learning roadmap
    status                                   Show current progress and statistics
    log <hours> <topics> [resources] [notes] [mood]
                                             Log a learning session (topics comma-separated)
    focus                                    Show the current learning focus
    tasks                                    List upcoming tasks
    mark-task <task_id>                      Mark a task as complete
    import-plan <file>                       Import roadmap years from a YAML plan

    resources                                Show all learning resources
    add-resource <type> <title> <url> [difficulty] [topics]
                                             Add a learning resource
    resource-status <id> <status>            Set resource status (todo/in_progress/completed)

    flashcards                               Show flashcard statistics
    create-deck <topic> [description]        Create a flashcard deck
    add-card <deck_id> <question> <answer>   Add a flashcard
    import-deck <deck_id> <file>             Import cards from an .xlsx or .csv file
    review [n]                               Start an interactive review session

    projects                                 Show portfolio projects
    add-project <name> <url> <description> [skills]
                                             Add a portfolio project
    update-project <id> <status>             Set project status (planning/in_progress/completed)
    add-feature <id> <feature>               Mark a project feature done (readme/docs/tests/demo)

    tips                                     Show this week's coaching tips
    generate-tips                            Generate this week's coaching tips

    progress                                 Show the detailed progress summary
    week                                     Show this week's summary

    interview                                AI interview prep advice (requires API key)
    suggest <topic> [difficulty]             AI resource suggestions (requires API key)
    suggest-cards <deck_id> [topic] [n]      AI-generated flashcards (requires API key)
    analyze                                  AI analysis of recent progress (requires API key)

    serve                                    Start the web dashboard

    help                                     Show this help message

SETUP:
    Optional .env next to the binary:
        OPENAI_API_KEY=sk-...

    Data lives in a single JSON file (COACH_DATA_PATH, default learning_data.json).`

// App wires the services behind the command surface. Out and In are
// injectable so tests can drive commands without a terminal.
type App struct {
	Config     config.Config
	Store      *store.Store
	Coach      *advisor.Coach
	Roadmap    services.RoadmapService
	Progress   services.ProgressService
	Flashcards services.FlashcardService
	Resources  services.ResourceService
	Projects   services.ProjectService
	Tips       services.TipsService
	Out        io.Writer
	In         io.Reader
}

// Run dispatches one command and returns the process exit code.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.Out, helpText)
		return 0
	}

	ctx := logger.NewContext(context.Background(), logger.Default())
	command := strings.ToLower(args[0])
	rest := args[1:]

	switch command {
	case "roadmap":
		return a.cmdRoadmap(ctx)
	case "status":
		return a.cmdStatus(ctx)
	case "log":
		return a.cmdLog(ctx, rest)
	case "focus":
		return a.cmdFocus(ctx)
	case "tasks":
		return a.cmdTasks(ctx)
	case "mark-task":
		return a.cmdMarkTask(ctx, rest)
	case "import-plan":
		return a.cmdImportPlan(ctx, rest)
	case "resources":
		return a.cmdResources(ctx)
	case "add-resource":
		return a.cmdAddResource(ctx, rest)
	case "resource-status":
		return a.cmdResourceStatus(ctx, rest)
	case "flashcards":
		return a.cmdFlashcards(ctx)
	case "create-deck":
		return a.cmdCreateDeck(ctx, rest)
	case "add-card":
		return a.cmdAddCard(ctx, rest)
	case "import-deck":
		return a.cmdImportDeck(ctx, rest)
	case "review":
		return a.cmdReview(ctx, rest)
	case "projects":
		return a.cmdProjects(ctx)
	case "add-project":
		return a.cmdAddProject(ctx, rest)
	case "update-project":
		return a.cmdUpdateProject(ctx, rest)
	case "add-feature":
		return a.cmdAddFeature(ctx, rest)
	case "tips":
		return a.cmdTips(ctx)
	case "generate-tips":
		return a.cmdGenerateTips(ctx)
	case "progress":
		return a.cmdProgress(ctx)
	case "week":
		return a.cmdWeek(ctx)
	case "interview":
		return a.cmdInterview(ctx)
	case "suggest":
		return a.cmdSuggest(ctx, rest)
	case "suggest-cards":
		return a.cmdSuggestCards(ctx, rest)
	case "analyze":
		return a.cmdAnalyze(ctx)
	case "serve":
		return a.runServe()
	case "help", "-h", "--help":
		fmt.Fprintln(a.Out, helpText)
		return 0
	default:
		fmt.Fprintf(a.Out, "Unknown command: %s\n", command)
		fmt.Fprintln(a.Out, "Use 'studycoach help' for usage information.")
		return 1
	}
}

// fail prints the error in the ✗ style and returns exit code 1.
func (a *App) fail(err error) int {
	if appErr, ok := err.(*errors.AppError); ok {
		fmt.Fprintf(a.Out, "✗ %s\n", appErr.Message)
	} else {
		fmt.Fprintf(a.Out, "✗ %v\n", err)
	}
	return 1
}

func (a *App) usage(u string) int {
	fmt.Fprintf(a.Out, "Usage: studycoach %s\n", u)
	return 1
}

// splitList splits a comma-separated argument, dropping blanks.
// Underscores become spaces so multi-word topics survive shell quoting.
func splitList(s string, underscoresToSpaces bool) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if underscoresToSpaces {
			part = strings.ReplaceAll(part, "_", " ")
		}
		out = append(out, part)
	}
	return out
}
