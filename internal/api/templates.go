package api

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/render"
	"github.com/example/studycoach/internal/roadmap"
	"github.com/example/studycoach/web"
)

// LoadTemplates parses the embedded dashboard templates.
func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// percent computes the completion percentage of any roadmap level.
		"percent": func(c models.Countable) int {
			return roadmap.Completion(c)
		},
		"icon": func(s models.MilestoneStatus) string {
			return render.StatusIcon(s)
		},
		"hours": func(h float64) string {
			return fmt.Sprintf("%.1f", h)
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		// mastered counts the mastered cards in a deck.
		"mastered": func(cards []models.Flashcard) int {
			n := 0
			for _, c := range cards {
				if c.Status == models.CardMastered {
					n++
				}
			}
			return n
		},
		"check": func(done bool) string {
			if done {
				return "✓"
			}
			return "○"
		},
	}

	t := template.New("base").Funcs(funcs)
	return t.ParseFS(web.Templates, "templates/layouts/*.html", "templates/pages/*.html")
}
