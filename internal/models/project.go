package models

import (
	"strings"
	"time"
)

// ProjectStatus tracks a portfolio project's lifecycle.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

// ParseProjectStatus normalizes a user-supplied status string.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ProjectStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ProjectPlanning:
		return ProjectPlanning, true
	case ProjectInProgress:
		return ProjectInProgress, true
	case ProjectCompleted:
		return ProjectCompleted, true
	}
	return "", false
}

// Project is a portfolio repository. The four Has* flags form the polish
// checklist shown in summaries.
type Project struct {
	ID            string        `json:"project_id"`
	Name          string        `json:"name"`
	RepoURL       string        `json:"repo_url"`
	Description   string        `json:"description"`
	SkillsCovered []string      `json:"skills_covered"`
	Status        ProjectStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"last_updated"`
	Notes         string        `json:"notes,omitempty"`
	HasReadme     bool          `json:"has_readme"`
	HasDocs       bool          `json:"has_docs"`
	HasTests      bool          `json:"has_tests"`
	HasDemo       bool          `json:"has_demo"`
	BlogPostURL   string        `json:"blog_post_url,omitempty"`
}
