// Package tips produces the weekly coaching tips. A Generator rotates
// through read-only banks of curated texts, one tip per category per week.
package tips

import (
	"strings"
	"time"

	"github.com/example/studycoach/internal/models"
)

// Bank maps a tip category to its rotation of texts.
type Bank map[models.TipCategory][]string

// DefaultBank returns the built-in coaching texts.
func DefaultBank() Bank {
	return Bank{
		models.TipLearningStrategy: {
			"Learn by doing: Don't just watch videos. Code along and build small projects.",
			"Spaced repetition: Review materials at increasing intervals (1 day, 3 days, 1 week, etc.)",
			"Active recall: Test yourself frequently with flashcards and practice problems.",
			"Mix resources: Combine courses, papers, videos, and hands-on projects for deep learning.",
			"Teach others: Explaining concepts solidifies understanding. Write blog posts or teach a friend.",
			"Deep work: Block 2-3 hour focus sessions for complex topics. Avoid context switching.",
			"Interleaving: Mix topics and problems rather than doing one thing at a time.",
		},
		models.TipTimeManagement: {
			"Schedule learning like meetings: Block 1.5-2 hour sessions 4-5 times/week (15-20h total).",
			"Morning learning: Your brain is freshest in the morning. Save admin tasks for afternoon.",
			"Use a timer: Pomodoro (25min focused + 5min break) keeps energy high.",
			"Batch similar tasks: Do all flashcard reviews at once, not spread throughout the day.",
			"Track time: Log each session. Awareness helps optimize your schedule.",
			"Weekly review: Every Sunday, plan your learning topics for the upcoming week.",
			"Protect deep focus: Turn off notifications. Use 'Do Not Disturb' during learning blocks.",
		},
		models.TipPortfolio: {
			"Start a project early: Don't wait until you're 'ready'. Imperfect action beats perfect inaction.",
			"Deploy something: A live demo (Hugging Face Spaces, GitHub Pages, Vercel) impresses more than notebooks.",
			"Document well: Great documentation > great code. Recruiters read README first.",
			"Share your learning: Tweet about insights, write Medium posts, or create YouTube videos.",
			"Contribute to open source: Shows collaboration and real-world impact.",
			"Diverse projects: Show breadth (ML basics, NLP, MLOps) and depth (specialized domain).",
			"Polish your repos: Clean code, tests, CI/CD, licenses. Shows professionalism.",
		},
		models.TipNetworking: {
			"Join communities: Participate in online forums, Discord/Slack groups, and ML communities.",
			"Attend events: Conferences, webinars, local meetups. Network with peers and senior engineers.",
			"Engage on social media: Follow experts on Twitter/LinkedIn. Share your progress thoughtfully.",
			"Find mentors: Reach out respectfully to senior engineers. Most are happy to help.",
			"Collaborate: Partner on projects with others. Strengthens skills and builds relationships.",
			"Interview prep: Practice with peers. Mock interviews reduce anxiety and improve performance.",
			"Target companies: Follow Alphabet, Meta, OpenAI job boards. Know what skills they want.",
		},
	}
}

// Generator selects tips from its bank. It never mutates the bank.
type Generator struct {
	bank Bank
}

// New returns a Generator over the given bank.
func New(bank Bank) *Generator {
	return &Generator{bank: bank}
}

// WeekNumber maps a time to the 1-52 coaching week used for tip rotation.
func WeekNumber(now time.Time) int {
	_, week := now.ISOWeek()
	return week%52 + 1
}

// ForWeek returns one tip per category for the given week, in the standard
// category order. Categories with an empty bank are skipped.
func (g *Generator) ForWeek(week int, now time.Time) []models.WeeklyTip {
	var out []models.WeeklyTip
	for _, category := range models.TipCategories {
		texts := g.bank[category]
		if len(texts) == 0 {
			continue
		}
		out = append(out, models.WeeklyTip{
			ID:        models.NewID(),
			Week:      week,
			Category:  category,
			Title:     Title(category),
			Content:   texts[week%len(texts)],
			Source:    models.TipSourceTemplate,
			CreatedAt: now,
		})
	}
	return out
}

// Title renders a category as a tip heading, e.g. "Learning Strategy Tip".
func Title(category models.TipCategory) string {
	words := strings.Split(string(category), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " Tip"
}
