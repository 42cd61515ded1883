// Package preflight decides whether a recipe's time-boxed preparation
// (thawing, marinating, slow-cooking) was started early enough, relative to
// an assumed cook time of 18:00 on the target date. Everything here is a
// pure function of its inputs; the current time is always passed in.
package preflight

import (
	"fmt"
	"time"

	"mealweek/internal/recipe"
)

// Status is the preflight readiness vocabulary.
type Status string

const (
	StatusNoneRequired Status = "NONE_REQUIRED"
	StatusAllGood      Status = "ALL_GOOD"
	StatusMissed       Status = "MISSED"
	StatusUnknown      Status = "UNKNOWN"
)

// cookHour is the assumed dinner cook time on any plan date.
const cookHour = 18

// HoursUntilCook returns the hours remaining until 18:00 on the cook date,
// negative when that time already passed. The cook time is placed in now's
// location.
func HoursUntilCook(cookDate recipe.ISODate, now time.Time) float64 {
	t, err := time.ParseInLocation("2006-01-02", string(cookDate), now.Location())
	if err != nil {
		// Unparseable dates behave like a cook time already in the past.
		return -1
	}
	cookTime := time.Date(t.Year(), t.Month(), t.Day(), cookHour, 0, 0, 0, now.Location())
	return cookTime.Sub(now).Hours()
}

// leadHours resolves a requirement's lead time, applying the type default
// when the requirement does not declare one.
func leadHours(req recipe.PreflightRequirement) float64 {
	if req.HoursBeforeCook > 0 {
		return req.HoursBeforeCook
	}
	switch recipe.NormalizeType(req.Type) {
	case recipe.TypeThaw:
		return 24
	case recipe.TypeMarinate:
		return 2
	case recipe.TypeSlowCook, recipe.TypeLegacy:
		return 4
	case recipe.TypeLongPrep:
		return 3
	default:
		return 0
	}
}

// requirementMet checks a single requirement against the clock. The standard
// rule allows a 1-hour grace margin past the declared lead time.
func requirementMet(req recipe.PreflightRequirement, cookDate recipe.ISODate, now time.Time) bool {
	hoursRemaining := HoursUntilCook(cookDate, now)

	switch recipe.NormalizeType(req.Type) {
	case recipe.TypeSlowCook, recipe.TypeMarinate, recipe.TypeThaw, recipe.TypeLegacy:
		return hoursRemaining >= leadHours(req)-1
	case recipe.TypeLongPrep:
		// Achievable if it is still early morning, or there are more than
		// 3 hours left before cook time.
		return now.Hour() < 10 || hoursRemaining > 3
	default:
		// Forward compatibility: unknown requirement types are assumed met
		// rather than blocking dinner on data this version cannot read.
		return true
	}
}

// DetectStatus evaluates a recipe's preflight requirements for a cook date.
func DetectStatus(rec recipe.Recipe, cookDate recipe.ISODate, now time.Time) Status {
	if len(rec.Preflight) == 0 {
		return StatusNoneRequired
	}

	if HoursUntilCook(cookDate, now) < 0 {
		return StatusMissed
	}

	for _, req := range rec.Preflight {
		if !requirementMet(req, cookDate, now) {
			return StatusMissed
		}
	}
	return StatusAllGood
}

// AtRiskRequirements returns requirements that are not yet missed but sit
// inside the warning window before their start deadline.
func AtRiskRequirements(rec recipe.Recipe, cookDate recipe.ISODate, warningThresholdHours float64, now time.Time) []recipe.PreflightRequirement {
	if len(rec.Preflight) == 0 {
		return nil
	}

	hoursRemaining := HoursUntilCook(cookDate, now)
	if hoursRemaining <= 0 {
		return nil
	}

	var atRisk []recipe.PreflightRequirement
	for _, req := range rec.Preflight {
		if hoursRemaining < leadHours(req)+warningThresholdHours {
			atRisk = append(atRisk, req)
		}
	}
	return atRisk
}

// DescribeRequirements renders requirements for display, with the latest
// start time relative to 18:00 on the cook date.
func DescribeRequirements(rec recipe.Recipe, cookDate recipe.ISODate, now time.Time) []string {
	if len(rec.Preflight) == 0 {
		return nil
	}

	descriptions := make([]string, 0, len(rec.Preflight))
	for _, req := range rec.Preflight {
		startBy := startByClock(req, cookDate, now)
		switch recipe.NormalizeType(req.Type) {
		case recipe.TypeSlowCook:
			descriptions = append(descriptions, fmt.Sprintf("Slow cook for %.0f+ hours (start by %s)", leadHours(req), startBy))
		case recipe.TypeMarinate:
			descriptions = append(descriptions, fmt.Sprintf("Marinate for %.0f+ hours (start by %s)", leadHours(req), startBy))
		case recipe.TypeThaw:
			descriptions = append(descriptions, fmt.Sprintf("Thaw for %.0f+ hours (start by %s)", leadHours(req), startBy))
		case recipe.TypeLongPrep:
			descriptions = append(descriptions, "Start preparation by 10 AM")
		default:
			if req.Description != "" {
				descriptions = append(descriptions, req.Description)
			} else {
				descriptions = append(descriptions, fmt.Sprintf("Requires %s", req.Type))
			}
		}
	}
	return descriptions
}

func startByClock(req recipe.PreflightRequirement, cookDate recipe.ISODate, now time.Time) string {
	t, err := time.ParseInLocation("2006-01-02", string(cookDate), now.Location())
	if err != nil {
		return "?"
	}
	cookTime := time.Date(t.Year(), t.Month(), t.Day(), cookHour, 0, 0, 0, now.Location())
	return cookTime.Add(-time.Duration(leadHours(req) * float64(time.Hour))).Format("3:04 PM")
}

// Summary aggregates requirement readiness across multiple recipes.
type Summary struct {
	TotalRecipes         int
	RecipesWithPreflight int
	RequirementsReady    int
	RequirementsAtRisk   int
	RequirementsMissed   int
}

// SummarizeStatus counts requirement readiness across recipes for one cook
// date, using a 2-hour warning window for the at-risk bucket.
func SummarizeStatus(recipes []recipe.Recipe, cookDate recipe.ISODate, now time.Time) Summary {
	summary := Summary{TotalRecipes: len(recipes)}

	for _, rec := range recipes {
		if len(rec.Preflight) == 0 {
			continue
		}
		summary.RecipesWithPreflight++

		status := DetectStatus(rec, cookDate, now)
		atRisk := AtRiskRequirements(rec, cookDate, 2, now)

		for _, req := range rec.Preflight {
			switch status {
			case StatusMissed:
				summary.RequirementsMissed++
			case StatusAllGood:
				if containsType(atRisk, req.Type) {
					summary.RequirementsAtRisk++
				} else {
					summary.RequirementsReady++
				}
			}
		}
	}
	return summary
}

func containsType(reqs []recipe.PreflightRequirement, typ string) bool {
	for _, r := range reqs {
		if r.Type == typ {
			return true
		}
	}
	return false
}
