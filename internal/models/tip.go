package models

import "time"

// TipCategory buckets coaching tips.
type TipCategory string

const (
	TipLearningStrategy TipCategory = "learning_strategy"
	TipTimeManagement   TipCategory = "time_management"
	TipPortfolio        TipCategory = "portfolio"
	TipNetworking       TipCategory = "networking"
)

// TipCategories lists every category in display order.
var TipCategories = []TipCategory{
	TipLearningStrategy,
	TipTimeManagement,
	TipPortfolio,
	TipNetworking,
}

// Tip sources.
const (
	TipSourceTemplate = "template"
	TipSourceOpenAI   = "openai"
)

// WeeklyTip is one piece of coaching advice tied to a week number.
type WeeklyTip struct {
	ID        string      `json:"tip_id"`
	Week      int         `json:"week"`
	Category  TipCategory `json:"category"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Source    string      `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
}
