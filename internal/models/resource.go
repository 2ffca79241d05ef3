package models

import (
	"strings"
	"time"
)

// ResourceStatus tracks whether a learning resource has been worked through.
type ResourceStatus string

const (
	ResourceTodo       ResourceStatus = "todo"
	ResourceInProgress ResourceStatus = "in_progress"
	ResourceCompleted  ResourceStatus = "completed"
)

// ParseResourceStatus normalizes a user-supplied status string.
func ParseResourceStatus(s string) (ResourceStatus, bool) {
	switch ResourceStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ResourceTodo:
		return ResourceTodo, true
	case ResourceInProgress:
		return ResourceInProgress, true
	case ResourceCompleted:
		return ResourceCompleted, true
	}
	return "", false
}

// Resource is a learning resource: course, article, video, repo, paper.
type Resource struct {
	ID           string         `json:"resource_id"`
	Title        string         `json:"title"`
	Type         string         `json:"resource_type"`
	URL          string         `json:"url"`
	Difficulty   Difficulty     `json:"difficulty"`
	Description  string         `json:"description"`
	MappedTopics []string       `json:"mapped_topics"`
	Status       ResourceStatus `json:"status"`
	AddedAt      time.Time      `json:"added_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}
