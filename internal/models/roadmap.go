package models

import "time"

// MilestoneStatus is shared by every roadmap level, tasks included.
type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "not_started"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// Countable is implemented by every roadmap level that owns children, so
// completion percentages can be computed without reflection.
type Countable interface {
	ChildCount() int
	CompletedCount() int
}

// Task is a single milestone within a week.
type Task struct {
	ID          string          `json:"task_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      MilestoneStatus `json:"status"`
	Priority    int             `json:"priority"` // 1=high, 2=medium, 3=low
}

// Week is a week of learning tasks.
type Week struct {
	WeekNum     int             `json:"week_num"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tasks       []Task          `json:"tasks"`
	Status      MilestoneStatus `json:"status"`
}

func (w Week) ChildCount() int { return len(w.Tasks) }

func (w Week) CompletedCount() int {
	n := 0
	for _, t := range w.Tasks {
		if t.Status == MilestoneCompleted {
			n++
		}
	}
	return n
}

// Month groups weeks.
type Month struct {
	MonthNum    int             `json:"month_num"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Weeks       []Week          `json:"weeks"`
	Status      MilestoneStatus `json:"status"`
}

func (m Month) ChildCount() int { return len(m.Weeks) }

func (m Month) CompletedCount() int {
	n := 0
	for _, w := range m.Weeks {
		if w.Status == MilestoneCompleted {
			n++
		}
	}
	return n
}

// Quarter groups months.
type Quarter struct {
	QuarterNum  int             `json:"quarter_num"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	FocusAreas  []string        `json:"focus_areas"`
	Months      []Month         `json:"months"`
	Status      MilestoneStatus `json:"status"`
}

func (q Quarter) ChildCount() int { return len(q.Months) }

func (q Quarter) CompletedCount() int {
	n := 0
	for _, m := range q.Months {
		if m.Status == MilestoneCompleted {
			n++
		}
	}
	return n
}

// Year is a year-long plan with quarters.
type Year struct {
	YearNum     int             `json:"year_num"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	FocusAreas  []string        `json:"focus_areas"`
	Quarters    []Quarter       `json:"quarters"`
	Status      MilestoneStatus `json:"status"`
}

func (y Year) ChildCount() int { return len(y.Quarters) }

func (y Year) CompletedCount() int {
	n := 0
	for _, q := range y.Quarters {
		if q.Status == MilestoneCompleted {
			n++
		}
	}
	return n
}

// Roadmap is the complete multi-year study plan.
type Roadmap struct {
	Years     []Year    `json:"years"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"last_updated"`
}
