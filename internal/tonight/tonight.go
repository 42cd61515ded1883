// Package tonight answers the household's 5 PM question: can we actually
// cook what the plan says? It fuses the day's dinner, its recorded
// preflight status, and externally reported missing ingredients into one
// state.
package tonight

import (
	"time"

	"mealweek/internal/planner"
	"mealweek/internal/preflight"
	"mealweek/internal/recipe"
	"mealweek/internal/shopping"
)

// Status is the overall readiness verdict for tonight.
type Status string

const (
	StatusNoPlan               Status = "NO_PLAN"
	StatusReady                Status = "READY"
	StatusMissedPreflight      Status = "MISSED_PREFLIGHT"
	StatusMissingIngredient    Status = "MISSING_INGREDIENT"
	StatusOutEating            Status = "OUT_EATING"
	StatusEasierOptionSelected Status = "EASIER_OPTION_SELECTED"
)

// Context is the snapshot of what tonight's verdict was computed from.
type Context struct {
	Date      recipe.ISODate         `json:"date"`
	DayOfWeek planner.DayOfWeek      `json:"day_of_week"`
	Dinner    *planner.PlannedDinner `json:"dinner,omitempty"`
	Recipe    *recipe.Recipe         `json:"recipe,omitempty"`
}

// IssueIngredient identifies one missing ingredient in the issues record.
type IssueIngredient struct {
	IngredientID string `json:"ingredient_id"`
	DisplayName  string `json:"display_name"`
}

// Issues collects everything wrong with tonight's dinner.
type Issues struct {
	PreflightStatus               preflight.Status  `json:"preflight_status"`
	MissingCriticalIngredients    []IssueIngredient `json:"missing_critical_ingredients"`
	MissingNonCriticalIngredients []IssueIngredient `json:"missing_non_critical_ingredients"`
}

// Actions are the affordances available to the user right now. The easier
// option, out-eating, and change-dinner escapes stay available regardless
// of status: the system never traps the user in a bad state.
type Actions struct {
	CanStartCooking    bool `json:"can_start_cooking"`
	CanUseEasierOption bool `json:"can_use_easier_option"`
	CanMarkOutEating   bool `json:"can_mark_out_eating"`
	CanChangeDinner    bool `json:"can_change_dinner"`
}

// TomorrowPreview is a glance at the next plan day.
type TomorrowPreview struct {
	Date             recipe.ISODate    `json:"date"`
	DayOfWeek        planner.DayOfWeek `json:"day_of_week"`
	DinnerPlanned    bool              `json:"dinner_planned"`
	RecipeName       string            `json:"recipe_name,omitempty"`
	TimeBand         recipe.TimeBand   `json:"time_band,omitempty"`
	KeyPreflightNote string            `json:"key_preflight_note,omitempty"`
}

// State is the full tonight answer.
type State struct {
	PlanID           string           `json:"plan_id"`
	HouseholdID      string           `json:"household_id"`
	Status           Status           `json:"status"`
	PrimaryMessage   string           `json:"primary_message"`
	SecondaryMessage string           `json:"secondary_message,omitempty"`
	Context          Context          `json:"context"`
	Issues           Issues           `json:"issues"`
	Actions          Actions          `json:"actions"`
	TomorrowPreview  *TomorrowPreview `json:"tomorrow_preview,omitempty"`
}

// ComputeState determines tonight's status for a date. Priority, highest
// first: no resolvable dinner, missing critical ingredient, missed
// preflight, ready. Unrecognized stored preflight values fail open to
// READY so cooking is never blocked on a status this version cannot read.
//
// Substitutions are accepted for interface completeness; a substituted item
// is no longer missing, so they do not affect the verdict today.
func ComputeState(plan planner.Plan, catalog []recipe.Recipe, missingItems []shopping.MissingItem, _ []shopping.Substitution, today recipe.ISODate, _ time.Time) State {
	day, found := plan.Day(today)

	baseActions := Actions{
		CanStartCooking:    false,
		CanUseEasierOption: true,
		CanMarkOutEating:   true,
		CanChangeDinner:    true,
	}

	if !found {
		return State{
			PlanID:         plan.ID,
			HouseholdID:    plan.HouseholdID,
			Status:         StatusNoPlan,
			PrimaryMessage: "No plan found for tonight.",
			Context:        Context{Date: today, DayOfWeek: "Mon"},
			Issues: Issues{
				PreflightStatus:               preflight.StatusNoneRequired,
				MissingCriticalIngredients:    []IssueIngredient{},
				MissingNonCriticalIngredients: []IssueIngredient{},
			},
			Actions:         baseActions,
			TomorrowPreview: tomorrowPreview(plan, catalog, today),
		}
	}

	dinner := day.Dinner
	var rec *recipe.Recipe
	if dinner != nil {
		if r, ok := recipe.Find(catalog, dinner.RecipeID); ok {
			rec = &r
		}
	}

	ctx := Context{Date: day.Date, DayOfWeek: day.DayOfWeek, Dinner: dinner, Recipe: rec}

	issues := Issues{
		PreflightStatus:               preflight.StatusNoneRequired,
		MissingCriticalIngredients:    []IssueIngredient{},
		MissingNonCriticalIngredients: []IssueIngredient{},
	}
	if dinner != nil {
		issues.PreflightStatus = dinner.PreflightStatus
	}

	if dinner == nil || rec == nil {
		return State{
			PlanID:          plan.ID,
			HouseholdID:     plan.HouseholdID,
			Status:          StatusNoPlan,
			PrimaryMessage:  "No dinner is planned for tonight yet.",
			Context:         ctx,
			Issues:          issues,
			Actions:         baseActions,
			TomorrowPreview: tomorrowPreview(plan, catalog, today),
		}
	}

	critical, nonCritical := splitMissingByCriticality(*rec, tonightMissing(plan.ID, missingItems))
	issues.MissingCriticalIngredients = critical
	issues.MissingNonCriticalIngredients = nonCritical

	state := State{
		PlanID:      plan.ID,
		HouseholdID: plan.HouseholdID,
		Context:     ctx,
		Issues:      issues,
	}

	switch {
	case len(critical) > 0:
		state.Status = StatusMissingIngredient
		state.PrimaryMessage = "It looks like we're missing a key ingredient for tonight."
		state.SecondaryMessage = "Swap, move, or pick a backup recipe."
		state.Actions = baseActions
	case dinner.PreflightStatus == preflight.StatusMissed:
		state.Status = StatusMissedPreflight
		state.PrimaryMessage = "It looks like we missed the marinate/prep for tonight."
		state.SecondaryMessage = "Swap, move, or pick a backup recipe."
		state.Actions = baseActions
	case dinner.PreflightStatus == preflight.StatusAllGood || dinner.PreflightStatus == preflight.StatusNoneRequired:
		state.Status = StatusReady
		state.PrimaryMessage = "You're all set for tonight."
		state.Actions = baseActions
		state.Actions.CanStartCooking = true
	default:
		// Fail open on unrecognized stored statuses.
		state.Status = StatusReady
		state.PrimaryMessage = "Tonight's dinner is planned; adjust if needed."
		state.Actions = baseActions
		state.Actions.CanStartCooking = true
	}

	state.TomorrowPreview = tomorrowPreview(plan, catalog, today)
	return state
}

// tonightMissing narrows missing-item records to this plan and tonight.
func tonightMissing(planID string, missingItems []shopping.MissingItem) []shopping.MissingItem {
	var out []shopping.MissingItem
	for _, m := range missingItems {
		if m.PlanID == planID && m.AffectsTonight {
			out = append(out, m)
		}
	}
	return out
}

// splitMissingByCriticality classifies missing records against the recipe's
// ingredient list. Records for ingredients the recipe does not declare are
// treated as NON_CRITICAL.
func splitMissingByCriticality(rec recipe.Recipe, missing []shopping.MissingItem) (critical, nonCritical []IssueIngredient) {
	criticalityByID := make(map[string]recipe.Criticality, len(rec.Ingredients))
	nameByID := make(map[string]string, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		criticalityByID[ing.IngredientID] = ing.Criticality
		nameByID[ing.IngredientID] = ing.DisplayName
	}

	critical = []IssueIngredient{}
	nonCritical = []IssueIngredient{}
	for _, m := range missing {
		name := m.IngredientName
		if name == "" {
			name = nameByID[m.IngredientID]
		}
		if name == "" {
			name = "Missing item"
		}
		entry := IssueIngredient{IngredientID: m.IngredientID, DisplayName: name}

		if criticalityByID[m.IngredientID] == recipe.Critical {
			critical = append(critical, entry)
		} else {
			nonCritical = append(nonCritical, entry)
		}
	}
	return critical, nonCritical
}

// tomorrowPreview peeks at the plan day after today, when there is one.
func tomorrowPreview(plan planner.Plan, catalog []recipe.Recipe, today recipe.ISODate) *TomorrowPreview {
	todayIdx := -1
	for i, d := range plan.Days {
		if d.Date == today {
			todayIdx = i
			break
		}
	}
	if todayIdx == -1 || todayIdx >= len(plan.Days)-1 {
		return nil
	}

	tomorrow := plan.Days[todayIdx+1]
	preview := &TomorrowPreview{
		Date:          tomorrow.Date,
		DayOfWeek:     tomorrow.DayOfWeek,
		DinnerPlanned: tomorrow.Dinner != nil,
	}

	if tomorrow.Dinner != nil {
		if rec, ok := recipe.Find(catalog, tomorrow.Dinner.RecipeID); ok {
			preview.RecipeName = rec.Name
			preview.TimeBand = rec.Metadata.TimeBand
			if len(rec.Preflight) > 0 && rec.Preflight[0].Description != "" {
				preview.KeyPreflightNote = rec.Preflight[0].Description
			}
		}
	}
	return preview
}
