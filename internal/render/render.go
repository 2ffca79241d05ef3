// Package render formats application state into the terminal reports. It
// does no I/O and holds no state; every function returns a string.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/roadmap"
)

func bar(width int) string {
	return strings.Repeat("=", width)
}

// StatusIcon maps a milestone status to the single-character marker used
// in summaries and the dashboard.
func StatusIcon(status models.MilestoneStatus) string {
	switch status {
	case models.MilestoneCompleted:
		return "✓"
	case models.MilestoneInProgress:
		return "→"
	default:
		return "○"
	}
}

// RoadmapSummary renders the full plan tree with completion percentages.
func RoadmapSummary(r models.Roadmap) string {
	lines := []string{bar(80), fmt.Sprintf("AI/ML CAREER TRANSITION ROADMAP (%d YEARS)", len(r.Years)), bar(80)}

	for _, year := range r.Years {
		lines = append(lines, fmt.Sprintf("\n%s (Status: %s)", year.Name, year.Status))
		lines = append(lines, fmt.Sprintf("  Description: %s", year.Description))
		lines = append(lines, fmt.Sprintf("  Focus Areas: %s", strings.Join(year.FocusAreas, ", ")))

		for _, quarter := range year.Quarters {
			lines = append(lines, fmt.Sprintf("\n  └─ %s (%d%%)", quarter.Name, roadmap.Completion(quarter)))
			lines = append(lines, fmt.Sprintf("     Description: %s", quarter.Description))
			lines = append(lines, fmt.Sprintf("     Focus: %s", strings.Join(quarter.FocusAreas, ", ")))

			for _, month := range quarter.Months {
				lines = append(lines, fmt.Sprintf("     └─ %s (%d%%)", month.Name, roadmap.Completion(month)))
				for _, week := range month.Weeks {
					lines = append(lines, fmt.Sprintf("        %s Week %d: %s (%d%%)",
						StatusIcon(week.Status), week.WeekNum, week.Name, roadmap.Completion(week)))
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// FocusSummary renders the current focus, or congratulations when the whole
// plan is finished.
func FocusSummary(focus roadmap.Focus) string {
	lines := []string{bar(60), "YOUR CURRENT FOCUS", bar(60)}

	if focus.Done {
		lines = append(lines, "\nCongratulations on finishing the roadmap!")
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		fmt.Sprintf("\nYear: %s", focus.Year),
		fmt.Sprintf("Quarter: %s", focus.Quarter),
		fmt.Sprintf("Month: %s", focus.Month),
		fmt.Sprintf("Week: %s", focus.Week),
		"\nCurrent Tasks:")
	for i, task := range focus.OpenTasks {
		if i >= 5 {
			break
		}
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, task.Name))
	}
	return strings.Join(lines, "\n")
}

// UpcomingTasks renders the next open tasks across the plan.
func UpcomingTasks(tasks []roadmap.UpcomingTask) string {
	lines := []string{bar(60), "UPCOMING TASKS", bar(60)}

	if len(tasks) == 0 {
		lines = append(lines, "\nNo upcoming tasks. Great job! 🎉")
		return strings.Join(lines, "\n")
	}
	for i, task := range tasks {
		lines = append(lines, fmt.Sprintf("\n%d. %s - %s (%s)", i+1, task.Week, task.Name, task.Description))
	}
	return strings.Join(lines, "\n")
}

// ProgressSummary renders overall statistics and the last five sessions.
func ProgressSummary(p models.ProgressState) string {
	lines := []string{bar(60), "YOUR LEARNING PROGRESS", bar(60)}

	lines = append(lines,
		"\n📊 STATISTICS",
		fmt.Sprintf("  Total Hours Logged: %.1f", p.TotalHours),
		fmt.Sprintf("  Sessions Completed: %d", len(p.Sessions)),
		fmt.Sprintf("  Current Streak: %d days 🔥", p.CurrentStreak),
		fmt.Sprintf("  Longest Streak: %d days", p.LongestStreak))

	if len(p.Sessions) > 0 {
		lines = append(lines, "\n📅 RECENT SESSIONS (Last 5)")
		recent := p.Sessions
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		for _, session := range recent {
			mood := ""
			if session.Mood != "" {
				mood = fmt.Sprintf(" (%s)", session.Mood)
			}
			lines = append(lines, fmt.Sprintf("  %s: %.1fh - %s%s",
				session.Date, session.DurationHours, strings.Join(session.TopicsCovered, ", "), mood))
			if session.Notes != "" {
				lines = append(lines, fmt.Sprintf("    Notes: %s", session.Notes))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// WeekSummary renders this week's totals with an encouragement line keyed to
// the 15-20 hours a week goal.
func WeekSummary(weekStart time.Time, sessions int, totalHours float64, topics []string) string {
	lines := []string{bar(60), "THIS WEEK'S SUMMARY", bar(60)}

	topicsLine := "None yet"
	if len(topics) > 0 {
		topicsLine = strings.Join(topics, ", ")
	}
	lines = append(lines,
		fmt.Sprintf("\nWeek Starting: %s", weekStart.Format("Monday, January 02, 2006")),
		fmt.Sprintf("Sessions: %d", sessions),
		fmt.Sprintf("Total Hours: %.1f", totalHours),
		fmt.Sprintf("Topics Covered: %s", topicsLine))

	switch {
	case totalHours >= 15:
		lines = append(lines, "\n✨ Excellent week! You're on track for your 15-20 hours/week goal!")
	case totalHours >= 10:
		lines = append(lines, "\n👍 Good progress! Try to add a few more hours this week.")
	default:
		lines = append(lines, fmt.Sprintf("\n⚠️  Keep pushing! You can do %.1f more hours this week.", 20-totalHours))
	}
	return strings.Join(lines, "\n")
}

// ResourceSummary renders resources grouped by type, five per type.
func ResourceSummary(resources []models.Resource) string {
	lines := []string{bar(70), "LEARNING RESOURCES", bar(70)}

	byType := make(map[string][]models.Resource)
	for _, r := range resources {
		byType[r.Type] = append(byType[r.Type], r)
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, rtype := range types {
		group := byType[rtype]
		completed := 0
		for _, r := range group {
			if r.Status == models.ResourceCompleted {
				completed++
			}
		}
		lines = append(lines,
			fmt.Sprintf("\n%s", strings.ToUpper(rtype)),
			fmt.Sprintf("  %d/%d completed", completed, len(group)))

		for i, r := range group {
			if i >= 5 {
				break
			}
			icon := "○"
			switch r.Status {
			case models.ResourceCompleted:
				icon = "✓"
			case models.ResourceInProgress:
				icon = "→"
			}
			lines = append(lines,
				fmt.Sprintf("  %s %s (%s)", icon, r.Title, r.Difficulty),
				fmt.Sprintf("     Topics: %s", strings.Join(r.MappedTopics, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}

// FlashcardStats renders deck totals and per-deck counts.
func FlashcardStats(decks []models.Deck) string {
	totalCards, totalReviews := 0, 0
	var deckLines []string
	for _, deck := range decks {
		totalCards += len(deck.Cards)
		totalReviews += deck.TotalReviews

		newCount, mastered := 0, 0
		for _, c := range deck.Cards {
			switch c.Status {
			case models.CardNew:
				newCount++
			case models.CardMastered:
				mastered++
			}
		}
		deckLines = append(deckLines,
			fmt.Sprintf("\n%s", deck.Topic),
			fmt.Sprintf("  Cards: %d (New: %d, Mastered: %d)", len(deck.Cards), newCount, mastered),
			fmt.Sprintf("  Reviews: %d", deck.TotalReviews))
	}

	lines := []string{
		bar(60),
		"FLASHCARD STATISTICS",
		fmt.Sprintf("\nTotal Decks: %d", len(decks)),
		fmt.Sprintf("Total Cards: %d", totalCards),
		fmt.Sprintf("Total Reviews: %d", totalReviews),
		bar(60),
	}
	lines = append(lines, deckLines...)
	return strings.Join(lines, "\n")
}

// PortfolioSummary renders projects with their polish checklist and the
// standing improvement tips.
func PortfolioSummary(projects []models.Project) string {
	lines := []string{bar(70), "GITHUB PORTFOLIO SUMMARY", bar(70)}

	if len(projects) == 0 {
		lines = append(lines, "\n📝 No projects yet! Start your first project to build your portfolio.")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("\nProjects: %d", len(projects)))
	for _, p := range projects {
		lines = append(lines,
			fmt.Sprintf("\n▶ %s (%s)", p.Name, p.Status),
			fmt.Sprintf("  URL: %s", p.RepoURL),
			fmt.Sprintf("  Description: %s", p.Description),
			fmt.Sprintf("  Skills: %s", strings.Join(p.SkillsCovered, ", ")))

		readme := "✓ README"
		if !p.HasReadme {
			readme = "○ README (add this!)"
		}
		features := []string{
			readme,
			checklistItem("Docs", p.HasDocs),
			checklistItem("Tests", p.HasTests),
			checklistItem("Demo", p.HasDemo),
		}
		lines = append(lines, fmt.Sprintf("  Features: %s", strings.Join(features, ", ")))
	}

	lines = append(lines,
		"\n💡 PORTFOLIO IMPROVEMENT TIPS",
		"  • Ensure each project has a polished README with usage instructions",
		"  • Add test coverage (pytest for Python)",
		"  • Create a demo notebook or video walkthrough",
		"  • Write a blog post about your project or learnings",
		"  • Include architecture diagrams in documentation")
	return strings.Join(lines, "\n")
}

func checklistItem(name string, done bool) string {
	if done {
		return "✓ " + name
	}
	return "○ " + name
}

// TipsSummary renders the most recent coaching tips.
func TipsSummary(tips []models.WeeklyTip) string {
	lines := []string{bar(70), "THIS WEEK'S COACHING TIPS", bar(70)}

	if len(tips) == 0 {
		lines = append(lines, "\nNo tips generated yet. Use 'generate-tips' to generate weekly guidance.")
		return strings.Join(lines, "\n")
	}
	for _, tip := range tips {
		lines = append(lines,
			fmt.Sprintf("\n%s", strings.ToUpper(strings.ReplaceAll(string(tip.Category), "_", " "))),
			fmt.Sprintf("  %s", tip.Content))
	}
	return strings.Join(lines, "\n")
}

// AdvisorStatus renders the one-line AI coach status.
func AdvisorStatus(enabled bool) string {
	if enabled {
		return "✓ AI Coach enabled! Advanced personalization available."
	}
	return "○ AI Coach disabled. Add OPENAI_API_KEY to .env to enable personalized coaching."
}
