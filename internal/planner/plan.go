// Package planner generates and edits weekly dinner plans. Plans are
// immutable values: every mutator returns a new Plan and leaves the input
// untouched, so callers can keep prior plans around for diffing and undo.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealweek/internal/preflight"
	"mealweek/internal/recipe"
)

// DayOfWeek is the Mon-Sun label of a plan day.
type DayOfWeek string

var dayNames = [7]DayOfWeek{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// PlanStatus is the lifecycle state of a plan.
type PlanStatus string

const (
	StatusDraft   PlanStatus = "DRAFT"
	StatusPlanned PlanStatus = "PLANNED"
	StatusShopped PlanStatus = "SHOPPED"
)

// PlannedDinner is one committed dinner slot. A locked dinner is the unit
// of user commitment: nothing but an explicit unlock may change its recipe.
type PlannedDinner struct {
	RecipeID               string           `json:"recipe_id"`
	Servings               int              `json:"servings"`
	Locked                 bool             `json:"locked"`
	OutEating              bool             `json:"out_eating"`
	PreflightStatus        preflight.Status `json:"preflight_status"`
	AccompanimentRecipeIDs []string         `json:"accompaniment_recipe_ids,omitempty"`
}

// PlanDay is one calendar day of the week. Dinner is nil on empty days
// (leftovers, eating out unplanned, or an under-filled week).
type PlanDay struct {
	Date      recipe.ISODate `json:"date"`
	DayOfWeek DayOfWeek      `json:"day_of_week"`
	Dinner    *PlannedDinner `json:"dinner,omitempty"`
}

// Summary rolls up a generated plan for display.
type Summary struct {
	TotalDinners     int               `json:"total_dinners"`
	FastCount        int               `json:"fast_count"`
	NormalCount      int               `json:"normal_count"`
	ProjectCount     int               `json:"project_count"`
	ThawDays         int               `json:"thaw_days"`
	MarinateDays     int               `json:"marinate_days"`
	AllergensPresent []recipe.Allergen `json:"allergens_present,omitempty"`
	DietaryTags      []string          `json:"dietary_tags,omitempty"`
}

// Plan is a full week of dinners, Monday through Sunday.
type Plan struct {
	ID            string         `json:"id"`
	HouseholdID   string         `json:"household_id"`
	WeekStartDate recipe.ISODate `json:"week_start_date"`
	Status        PlanStatus     `json:"status"`
	Days          []PlanDay      `json:"days"`
	Summary       Summary        `json:"summary"`
}

// Day returns the plan day for a date, or false when the plan does not
// cover it.
func (p Plan) Day(date recipe.ISODate) (PlanDay, bool) {
	for _, d := range p.Days {
		if d.Date == date {
			return d, true
		}
	}
	return PlanDay{}, false
}

func newPlanID() string {
	return fmt.Sprintf("plan_%s", uuid.NewString())
}

// weekDays derives the 7 calendar days starting at weekStart. Labels are
// positional: the start date is treated as Monday.
func weekDays(weekStart recipe.ISODate) []PlanDay {
	days := make([]PlanDay, 0, 7)

	start, err := time.Parse("2006-01-02", string(weekStart))
	if err != nil {
		// Fall back to the raw start date on every slot; generation still
		// produces a 7-day structure the caller can inspect.
		for i := 0; i < 7; i++ {
			days = append(days, PlanDay{Date: weekStart, DayOfWeek: dayNames[i]})
		}
		return days
	}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		days = append(days, PlanDay{Date: recipe.ISODate(date), DayOfWeek: dayNames[i]})
	}
	return days
}

// cloneDays copies the day slice, sharing dinner records of untouched days.
// Mutators allocate a fresh PlannedDinner only for the day they change.
func cloneDays(days []PlanDay) []PlanDay {
	out := make([]PlanDay, len(days))
	copy(out, days)
	return out
}

func cloneDinner(d *PlannedDinner) *PlannedDinner {
	if d == nil {
		return nil
	}
	c := *d
	if d.AccompanimentRecipeIDs != nil {
		c.AccompanimentRecipeIDs = append([]string(nil), d.AccompanimentRecipeIDs...)
	}
	return &c
}
