package planner

import (
	"sort"
	"time"

	"mealweek/internal/household"
	"mealweek/internal/pairing"
	"mealweek/internal/preflight"
	"mealweek/internal/recipe"
)

// weekShape is a household mode's default dinner count and effort mix.
type weekShape struct {
	Dinners int
	Mix     map[recipe.TimeBand]int
}

var weekShapeDefaults = map[household.Mode]weekShape{
	household.ModeFamily: {
		Dinners: 5,
		Mix:     map[recipe.TimeBand]int{recipe.BandFast: 3, recipe.BandNormal: 2, recipe.BandProject: 0},
	},
	household.ModeSolo: {
		Dinners: 3,
		Mix:     map[recipe.TimeBand]int{recipe.BandFast: 2, recipe.BandNormal: 1, recipe.BandProject: 0},
	},
	household.ModeDink: {
		Dinners: 4,
		Mix:     map[recipe.TimeBand]int{recipe.BandFast: 2, recipe.BandNormal: 2, recipe.BandProject: 0},
	},
	household.ModeEmptyNest: {
		Dinners: 3,
		Mix:     map[recipe.TimeBand]int{recipe.BandFast: 1, recipe.BandNormal: 1, recipe.BandProject: 1},
	},
	household.ModeLarge: {
		Dinners: 4,
		Mix:     map[recipe.TimeBand]int{recipe.BandFast: 2, recipe.BandNormal: 1, recipe.BandProject: 1},
	},
}

func shapeFor(mode household.Mode) weekShape {
	if shape, ok := weekShapeDefaults[mode]; ok {
		return shape
	}
	return weekShapeDefaults[household.ModeDink]
}

// Options customize one generation or regeneration call.
type Options struct {
	// TargetDinners overrides the household target and mode default.
	TargetDinners int
	// RecentRecipeIDs are excluded from selection (repeat guard).
	RecentRecipeIDs []string
	// WeekServings overrides the household headcount for every dinner.
	WeekServings int
	// Now is the clock reading used to stamp preflight statuses. Zero
	// means the wall clock.
	Now time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) recentSet() map[string]bool {
	if len(o.RecentRecipeIDs) == 0 {
		return nil
	}
	set := make(map[string]bool, len(o.RecentRecipeIDs))
	for _, id := range o.RecentRecipeIDs {
		set[id] = true
	}
	return set
}

// selectByTimeBand picks recipes per the effort mix, in catalog order so
// generation stays deterministic.
func selectByTimeBand(eligible []recipe.Recipe, mix map[recipe.TimeBand]int) []recipe.Recipe {
	var selected []recipe.Recipe
	for _, band := range []recipe.TimeBand{recipe.BandFast, recipe.BandNormal, recipe.BandProject} {
		want := mix[band]
		for _, rec := range eligible {
			if want == 0 {
				break
			}
			if rec.Metadata.TimeBand == band {
				selected = append(selected, rec)
				want--
			}
		}
	}
	return selected
}

// Generate produces a 7-day plan for the household's week starting at
// weekStart. When the eligible pool is smaller than the target count the
// plan simply holds fewer dinners; scarcity is not an error.
func Generate(profile household.Profile, catalog []recipe.Recipe, weekStart recipe.ISODate, opts Options) Plan {
	shape := shapeFor(profile.Mode)

	// Target priority: explicit option, then household preference, then
	// the mode default.
	targetDinners := shape.Dinners
	if profile.TargetDinnersPerWeek > 0 {
		targetDinners = profile.TargetDinnersPerWeek
	}
	if opts.TargetDinners > 0 {
		targetDinners = opts.TargetDinners
	}

	eligible := FilterEligible(catalog, profile, opts.recentSet(), nil)
	selected := selectByTimeBand(eligible, shape.Mix)

	// Top up from any remaining eligible recipes when the mix alone cannot
	// reach the target.
	if len(selected) < targetDinners {
		used := make(map[string]bool, len(selected))
		for _, rec := range selected {
			used[rec.ID] = true
		}
		for _, rec := range eligible {
			if len(selected) >= targetDinners {
				break
			}
			if !used[rec.ID] {
				selected = append(selected, rec)
				used[rec.ID] = true
			}
		}
	}
	if len(selected) > targetDinners {
		selected = selected[:targetDinners]
	}

	servings := profile.Headcount
	if opts.WeekServings > 0 {
		servings = opts.WeekServings
	}
	if servings <= 0 {
		servings = 4
	}

	days := distributeToDays(selected, catalog, weekDays(weekStart), targetDinners, servings, opts.now())

	return Plan{
		ID:            newPlanID(),
		HouseholdID:   profile.ID,
		WeekStartDate: weekStart,
		Status:        StatusDraft,
		Days:          days,
		Summary:       summarize(days, catalog),
	}
}

// distributeToDays places recipes on the week: PROJECT recipes go to the
// weekend, FAST recipes to weeknights, everything else fills the gaps.
func distributeToDays(selected []recipe.Recipe, catalog []recipe.Recipe, week []PlanDay, targetDinners, servings int, now time.Time) []PlanDay {
	byDate := make(map[recipe.ISODate]PlanDay, 7)
	for _, d := range week {
		byDate[d.Date] = d
	}

	var fast, normal, project []recipe.Recipe
	for _, rec := range selected {
		switch rec.Metadata.TimeBand {
		case recipe.BandFast:
			fast = append(fast, rec)
		case recipe.BandProject:
			project = append(project, rec)
		default:
			normal = append(normal, rec)
		}
	}

	assigned := 0
	place := func(day PlanDay, rec recipe.Recipe) {
		day.Dinner = newDinner(rec, catalog, day.Date, servings, now)
		byDate[day.Date] = day
		assigned++
	}

	weeknights := week[0:4] // Mon-Thu
	weekends := week[5:7]   // Sat-Sun

	for _, day := range weekends {
		if assigned >= targetDinners || len(project) == 0 {
			break
		}
		place(day, project[0])
		project = project[1:]
	}

	for _, day := range weeknights {
		if assigned >= targetDinners || len(fast) == 0 {
			break
		}
		place(day, fast[0])
		fast = fast[1:]
	}

	remaining := append(append(normal, fast...), project...)
	for _, day := range week {
		if byDate[day.Date].Dinner != nil {
			continue
		}
		if assigned >= targetDinners || len(remaining) == 0 {
			continue
		}
		place(day, remaining[0])
		remaining = remaining[1:]
	}

	days := make([]PlanDay, 0, 7)
	for _, d := range week {
		days = append(days, byDate[d.Date])
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// newDinner creates a dinner slot for a recipe, stamping its preflight
// status and attaching curated accompaniments that resolve in the catalog.
func newDinner(rec recipe.Recipe, catalog []recipe.Recipe, date recipe.ISODate, servings int, now time.Time) *PlannedDinner {
	var accompaniments []string
	for _, a := range pairing.ForRecipe(rec.ID) {
		if _, ok := recipe.Find(catalog, a.RecipeID); ok {
			accompaniments = append(accompaniments, a.RecipeID)
		}
	}

	return &PlannedDinner{
		RecipeID:               rec.ID,
		Servings:               servings,
		Locked:                 false,
		OutEating:              false,
		PreflightStatus:        preflight.DetectStatus(rec, date, now),
		AccompanimentRecipeIDs: accompaniments,
	}
}

// summarize rolls the week up: effort counts, thaw/marinate day counts, and
// allergen/tag unions across planned recipes.
func summarize(days []PlanDay, catalog []recipe.Recipe) Summary {
	byID := recipe.ByID(catalog)

	var s Summary
	allergenSeen := make(map[recipe.Allergen]bool)
	tagSeen := make(map[string]bool)

	for _, day := range days {
		if day.Dinner == nil {
			continue
		}
		s.TotalDinners++

		rec, ok := byID[day.Dinner.RecipeID]
		if !ok {
			continue
		}

		switch rec.Metadata.TimeBand {
		case recipe.BandFast:
			s.FastCount++
		case recipe.BandNormal:
			s.NormalCount++
		case recipe.BandProject:
			s.ProjectCount++
		}

		var thaw, marinate bool
		for _, req := range rec.Preflight {
			switch recipe.NormalizeType(req.Type) {
			case recipe.TypeThaw:
				thaw = true
			case recipe.TypeMarinate:
				marinate = true
			}
		}
		if thaw {
			s.ThawDays++
		}
		if marinate {
			s.MarinateDays++
		}

		for _, a := range rec.EffectiveAllergens() {
			if !allergenSeen[a] {
				allergenSeen[a] = true
				s.AllergensPresent = append(s.AllergensPresent, a)
			}
		}
		for _, t := range rec.Tags {
			if !tagSeen[t] {
				tagSeen[t] = true
				s.DietaryTags = append(s.DietaryTags, t)
			}
		}
	}
	return s
}
