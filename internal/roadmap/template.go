package roadmap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
)

// Plan template files describe one or more years of a study plan in YAML.
// Omitted numbers are filled in from position, omitted statuses default to
// not_started, and omitted task ids are generated.

type templatePlan struct {
	Years []templateYear `yaml:"years"`
}

type templateYear struct {
	YearNum     int               `yaml:"year_num"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	FocusAreas  []string          `yaml:"focus_areas"`
	Quarters    []templateQuarter `yaml:"quarters"`
}

type templateQuarter struct {
	QuarterNum  int             `yaml:"quarter_num"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	FocusAreas  []string        `yaml:"focus_areas"`
	Months      []templateMonth `yaml:"months"`
}

type templateMonth struct {
	MonthNum    int            `yaml:"month_num"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Weeks       []templateWeek `yaml:"weeks"`
}

type templateWeek struct {
	WeekNum     int            `yaml:"week_num"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Tasks       []templateTask `yaml:"tasks"`
}

type templateTask struct {
	ID          string `yaml:"task_id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Priority    int    `yaml:"priority"`
}

// LoadPlan reads a YAML plan template and converts it into roadmap years.
func LoadPlan(path string) ([]models.Year, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("reading plan template: %v", err))
	}
	return ParsePlan(data)
}

// ParsePlan converts raw YAML plan bytes into roadmap years.
func ParsePlan(data []byte) ([]models.Year, error) {
	var plan templatePlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, errors.NewValidationError("plan", fmt.Sprintf("parsing plan template: %v", err))
	}
	if len(plan.Years) == 0 {
		return nil, errors.NewValidationError("plan", "plan template has no years")
	}

	years := make([]models.Year, 0, len(plan.Years))
	for yi, ty := range plan.Years {
		if ty.Name == "" {
			return nil, errors.NewValidationError("plan", fmt.Sprintf("year %d has no name", yi+1))
		}
		year := models.Year{
			YearNum:     numberOr(ty.YearNum, yi+1),
			Name:        ty.Name,
			Description: ty.Description,
			FocusAreas:  ty.FocusAreas,
			Status:      models.MilestoneNotStarted,
		}
		for qi, tq := range ty.Quarters {
			if tq.Name == "" {
				return nil, errors.NewValidationError("plan", fmt.Sprintf("year %d quarter %d has no name", yi+1, qi+1))
			}
			quarter := models.Quarter{
				QuarterNum:  numberOr(tq.QuarterNum, qi+1),
				Name:        tq.Name,
				Description: tq.Description,
				FocusAreas:  tq.FocusAreas,
				Status:      models.MilestoneNotStarted,
			}
			for mi, tm := range tq.Months {
				month := models.Month{
					MonthNum:    numberOr(tm.MonthNum, mi+1),
					Name:        tm.Name,
					Description: tm.Description,
					Status:      models.MilestoneNotStarted,
				}
				for wi, tw := range tm.Weeks {
					week := models.Week{
						WeekNum:     numberOr(tw.WeekNum, wi+1),
						Name:        tw.Name,
						Description: tw.Description,
						Status:      models.MilestoneNotStarted,
					}
					for _, tt := range tw.Tasks {
						if tt.Name == "" {
							return nil, errors.NewValidationError("plan", fmt.Sprintf("task in week %q has no name", tw.Name))
						}
						week.Tasks = append(week.Tasks, models.Task{
							ID:          idOr(tt.ID),
							Name:        tt.Name,
							Description: tt.Description,
							Priority:    numberOr(tt.Priority, 1),
							Status:      models.MilestoneNotStarted,
						})
					}
					month.Weeks = append(month.Weeks, week)
				}
				quarter.Months = append(quarter.Months, month)
			}
			year.Quarters = append(year.Quarters, quarter)
		}
		years = append(years, year)
	}
	return years, nil
}

func numberOr(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}

func idOr(id string) string {
	if id != "" {
		return id
	}
	return models.NewID()
}
