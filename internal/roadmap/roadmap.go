// Package roadmap navigates the hierarchical study plan: completion
// percentages, the current focus, task completion cascades, and plan
// templates.
package roadmap

import (
	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
)

// Completion returns the percentage of a level's direct children that are
// completed. A level with no children reports zero.
func Completion(c models.Countable) int {
	total := c.ChildCount()
	if total == 0 {
		return 0
	}
	return 100 * c.CompletedCount() / total
}

// Focus is the learner's current position in the roadmap.
type Focus struct {
	Done      bool
	Year      string
	Quarter   string
	Month     string
	Week      string
	OpenTasks []models.Task
}

// CurrentFocus finds the first week, walking the plan in order, that is not
// yet completed. Done is set when every populated branch has been finished.
func CurrentFocus(r models.Roadmap) Focus {
	for _, y := range r.Years {
		if y.Status == models.MilestoneCompleted {
			continue
		}
		for _, q := range y.Quarters {
			if q.Status == models.MilestoneCompleted {
				continue
			}
			for _, m := range q.Months {
				if m.Status == models.MilestoneCompleted {
					continue
				}
				for _, w := range m.Weeks {
					if w.Status == models.MilestoneCompleted {
						continue
					}
					var open []models.Task
					for _, t := range w.Tasks {
						if t.Status != models.MilestoneCompleted {
							open = append(open, t)
						}
					}
					return Focus{
						Year:      y.Name,
						Quarter:   q.Name,
						Month:     m.Name,
						Week:      w.Name,
						OpenTasks: open,
					}
				}
			}
		}
	}
	return Focus{Done: true}
}

// CompleteTask marks the task with the given id as completed and cascades
// upward: the week, month, quarter, and year each flip to completed once
// all of their children are.
func CompleteTask(r *models.Roadmap, taskID string) error {
	for yi := range r.Years {
		y := &r.Years[yi]
		for qi := range y.Quarters {
			q := &y.Quarters[qi]
			for mi := range q.Months {
				m := &q.Months[mi]
				for wi := range m.Weeks {
					w := &m.Weeks[wi]
					for ti := range w.Tasks {
						if w.Tasks[ti].ID != taskID {
							continue
						}
						w.Tasks[ti].Status = models.MilestoneCompleted
						cascade(w, m, q, y)
						return nil
					}
				}
			}
		}
	}
	return errors.NewNotFoundError("task", taskID)
}

func cascade(w *models.Week, m *models.Month, q *models.Quarter, y *models.Year) {
	if w.CompletedCount() == w.ChildCount() {
		w.Status = models.MilestoneCompleted
	}
	if m.CompletedCount() == m.ChildCount() {
		m.Status = models.MilestoneCompleted
	}
	if q.CompletedCount() == q.ChildCount() {
		q.Status = models.MilestoneCompleted
	}
	if y.CompletedCount() == y.ChildCount() {
		y.Status = models.MilestoneCompleted
	}
}

// TaskCensus counts completed and total tasks across the whole plan. The
// progress milestone counters are re-derived from this after every change.
func TaskCensus(r models.Roadmap) (completed, total int) {
	for _, y := range r.Years {
		for _, q := range y.Quarters {
			for _, m := range q.Months {
				for _, w := range m.Weeks {
					for _, t := range w.Tasks {
						total++
						if t.Status == models.MilestoneCompleted {
							completed++
						}
					}
				}
			}
		}
	}
	return completed, total
}

// UpcomingTask pairs an open task with the week it belongs to.
type UpcomingTask struct {
	Week        string
	Name        string
	Description string
}

// UpcomingTasks returns the first limit non-completed tasks in plan order.
func UpcomingTasks(r models.Roadmap, limit int) []UpcomingTask {
	var upcoming []UpcomingTask
	for _, y := range r.Years {
		for _, q := range y.Quarters {
			for _, m := range q.Months {
				for _, w := range m.Weeks {
					for _, t := range w.Tasks {
						if t.Status == models.MilestoneCompleted {
							continue
						}
						upcoming = append(upcoming, UpcomingTask{
							Week:        w.Name,
							Name:        t.Name,
							Description: t.Description,
						})
						if len(upcoming) >= limit {
							return upcoming
						}
					}
				}
			}
		}
	}
	return upcoming
}
