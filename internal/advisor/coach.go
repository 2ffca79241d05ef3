package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
)

// Coach turns coaching questions into prompts for an Advisor and shapes the
// replies. It adds no behavior of its own when the advisor is disabled: the
// unavailable error passes straight through.
type Coach struct {
	advisor Advisor
}

// NewCoach returns a Coach over the given advisor.
func NewCoach(a Advisor) *Coach {
	return &Coach{advisor: a}
}

const analyzePrompt = `You are an expert AI/ML career coach helping someone transition from engineering management to AI/ML roles at top companies (Alphabet, Meta, OpenAI, Tesla, Netflix).

Current Learning Status:
%s

Current Focus Area: %s

Based on this progress, provide:
1. Specific strengths to build on
2. Areas to focus more on
3. 2-3 concrete next steps for this week
4. One resource recommendation

Keep it concise (< 150 words), actionable, and encouraging.`

// AnalyzeProgress asks for personalized insight on the learner's sessions.
func (c *Coach) AnalyzeProgress(ctx context.Context, sessionsSummary, currentFocus string) (string, error) {
	return c.advisor.Generate(ctx, fmt.Sprintf(analyzePrompt, sessionsSummary, currentFocus))
}

const suggestPrompt = `You are an expert in ML/AI education. Suggest 3-4 FREE or low-cost resources for learning: %s

Requirements:
- Difficulty level: %s
- Learning style: mixed (e.g., video, article, interactive, project-based)
- Mostly free resources (MIT OpenCourseWare, ArXiv papers, GitHub repos, YouTube)
- Include direct links where possible

Format:
1. [Title] (type) - description with direct link

Focus on high-quality, well-reviewed resources.`

// SuggestResources asks for free learning resources on a topic.
func (c *Coach) SuggestResources(ctx context.Context, topic string, difficulty models.Difficulty) (string, error) {
	return c.advisor.Generate(ctx, fmt.Sprintf(suggestPrompt, topic, difficulty))
}

const interviewPrompt = `Generate interview prep advice for someone transitioning to mid-level AI/ML roles at top-tier companies like Alphabet, Meta, OpenAI, Tesla.

Include:
1. Top 5 system design topics to practice (with brief explanation)
2. 3 common ML design interview questions they might face
3. How to approach portfolio projects to strengthen interview candidacy
4. Communication tips for discussing past experience in engineering management context

Keep it practical and specific. Total ~300 words.`

// InterviewPrep asks for interview preparation advice.
func (c *Coach) InterviewPrep(ctx context.Context) (string, error) {
	return c.advisor.Generate(ctx, interviewPrompt)
}

const weeklyTipPrompt = `You are an AI/ML career coach. Write one personalized %s tip for someone learning AI/ML full-time.

Their current focus: %s

The tip must be specific and actionable, build on their momentum, and fit in 1-2 sentences. Return only the tip text.`

// WeeklyTip asks for one personalized tip in the given category.
func (c *Coach) WeeklyTip(ctx context.Context, category models.TipCategory, currentFocus string) (string, error) {
	label := strings.ReplaceAll(string(category), "_", " ")
	return c.advisor.Generate(ctx, fmt.Sprintf(weeklyTipPrompt, label, currentFocus))
}

const cardsPrompt = `Generate %d flashcard questions and answers for the topic: %s

Requirements:
- Questions should be clear and specific
- Answers should be concise but complete (2-3 sentences max)
- Target difficulty: %s
- Include both conceptual and practical knowledge
- Avoid yes/no questions

Format as JSON list: [{"question": "...", "answer": "..."}]

Return ONLY the JSON, no other text.`

// GenerateCards asks for n flashcards on a topic and parses the strict-JSON
// reply. A reply that is not a JSON card list is a validation error.
func (c *Coach) GenerateCards(ctx context.Context, topic string, difficulty models.Difficulty, n int) ([]models.Flashcard, error) {
	reply, err := c.advisor.Generate(ctx, fmt.Sprintf(cardsPrompt, n, topic, difficulty))
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(reply), &raw); err != nil {
		return nil, errors.NewValidationError("cards", fmt.Sprintf("advisor returned malformed card JSON: %v", err))
	}

	now := time.Now().UTC()
	var cards []models.Flashcard
	for _, r := range raw {
		if strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Answer) == "" {
			continue
		}
		cards = append(cards, models.Flashcard{
			ID:         models.NewID(),
			Question:   strings.TrimSpace(r.Question),
			Answer:     strings.TrimSpace(r.Answer),
			Topic:      topic,
			Status:     models.CardNew,
			Difficulty: difficulty,
			CreatedAt:  now,
		})
	}
	if len(cards) == 0 {
		return nil, errors.NewValidationError("cards", "advisor returned no usable cards")
	}
	return cards, nil
}
