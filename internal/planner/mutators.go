package planner

import (
	"sort"
	"time"

	"mealweek/internal/household"
	"mealweek/internal/preflight"
	"mealweek/internal/recipe"
)

// SwapRecipe replaces the recipe on an unlocked day, preserving servings,
// lock state, and the out-eating flag. Locked days come back unchanged.
//
// The new recipe id is not validated against any catalog; a caller may swap
// in an id the catalog has never seen. When catalog is non-nil and resolves
// the id, the dinner's preflight status is recomputed for the day against
// now; otherwise the previous status is kept.
func SwapRecipe(plan Plan, date recipe.ISODate, newRecipeID string, catalog []recipe.Recipe, now time.Time) Plan {
	days := cloneDays(plan.Days)
	for i, day := range days {
		if day.Date != date {
			continue
		}
		if day.Dinner != nil && day.Dinner.Locked {
			break
		}

		var dinner *PlannedDinner
		if day.Dinner == nil {
			// Swapping onto an empty day creates a dinner at the
			// authoring-baseline servings.
			dinner = &PlannedDinner{
				RecipeID:        newRecipeID,
				Servings:        4,
				PreflightStatus: preflight.StatusNoneRequired,
			}
		} else {
			dinner = cloneDinner(day.Dinner)
			dinner.RecipeID = newRecipeID
		}

		if rec, ok := recipe.Find(catalog, newRecipeID); ok {
			dinner.PreflightStatus = preflight.DetectStatus(rec, day.Date, now)
		}

		days[i].Dinner = dinner
		break
	}

	plan.Days = days
	return plan
}

// ToggleLock sets or clears the lock on a day's dinner. Days without a
// dinner are left alone.
func ToggleLock(plan Plan, date recipe.ISODate, locked bool) Plan {
	days := cloneDays(plan.Days)
	for i, day := range days {
		if day.Date != date || day.Dinner == nil {
			continue
		}
		dinner := cloneDinner(day.Dinner)
		dinner.Locked = locked
		days[i].Dinner = dinner
		break
	}

	plan.Days = days
	return plan
}

// RemoveDinner clears a day's dinner unless it is locked, in which case the
// plan comes back with the dinner intact.
func RemoveDinner(plan Plan, date recipe.ISODate) Plan {
	days := cloneDays(plan.Days)
	for i, day := range days {
		if day.Date != date {
			continue
		}
		if day.Dinner != nil && day.Dinner.Locked {
			break
		}
		days[i].Dinner = nil
		break
	}

	plan.Days = days
	return plan
}

// Regenerate re-runs selection for the unlocked dinner slots only. Locked
// days keep their recipe ids; empty days stay empty. Locked recipes and the
// caller's recent ids are both excluded from the new selection.
func Regenerate(plan Plan, catalog []recipe.Recipe, profile household.Profile, opts Options) Plan {
	exclude := opts.recentSet()
	if exclude == nil {
		exclude = make(map[string]bool)
	}
	slots := 0
	for _, day := range plan.Days {
		if day.Dinner == nil {
			continue
		}
		if day.Dinner.Locked {
			exclude[day.Dinner.RecipeID] = true
		} else {
			slots++
		}
	}
	if slots == 0 {
		return plan
	}

	eligible := FilterEligible(catalog, profile, exclude, nil)
	selected := selectByTimeBand(eligible, shapeFor(profile.Mode).Mix)

	now := opts.now()
	next := 0
	days := cloneDays(plan.Days)
	for i, day := range days {
		if day.Dinner == nil || day.Dinner.Locked {
			continue
		}
		if next >= len(selected) {
			continue
		}
		rec := selected[next]
		next++

		dinner := newDinner(rec, catalog, day.Date, day.Dinner.Servings, now)
		days[i].Dinner = dinner
	}

	plan.Days = days
	return plan
}

// SwapAlternatives returns up to 4 eligible alternatives for a slot,
// restricted to the same or an easier effort band than the recipe being
// replaced. Same-band recipes and recipes sharing tags rank first; ties
// fall back to catalog order.
func SwapAlternatives(current recipe.Recipe, catalog []recipe.Recipe, profile household.Profile) []recipe.Recipe {
	const limit = 4

	var sameOrEasier []recipe.Recipe
	for _, rec := range catalog {
		if rec.ID == current.ID {
			continue
		}
		if rec.Metadata.TimeBand.Order() <= current.Metadata.TimeBand.Order() {
			sameOrEasier = append(sameOrEasier, rec)
		}
	}

	eligible := FilterEligible(sameOrEasier, profile, nil, nil)

	currentTags := make(map[string]bool, len(current.Tags))
	for _, t := range current.Tags {
		currentTags[t] = true
	}

	score := func(rec recipe.Recipe) int {
		s := 0
		if rec.Metadata.TimeBand == current.Metadata.TimeBand {
			s += 3
		}
		for _, t := range rec.Tags {
			if currentTags[t] {
				s++
			}
		}
		return s
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return score(eligible[i]) > score(eligible[j])
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}
