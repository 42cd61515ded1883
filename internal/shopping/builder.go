package shopping

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"mealweek/internal/household"
	"mealweek/internal/planner"
	"mealweek/internal/recipe"
)

// servingsBaseline is the serving count recipe amounts are authored for.
const servingsBaseline = 4

// itemKey is the consolidation key. Ingredients merge by shopper-facing
// name and unit, not by ingredient id: two recipes using different internal
// ids for "bell pepper" must land on one list position, while "bell pepper"
// and "red bell pepper" stay distinct.
type itemKey struct {
	name string
	unit recipe.Unit
}

func keyFor(ing recipe.IngredientRequirement) itemKey {
	return itemKey{
		name: strings.ToLower(strings.TrimSpace(ing.DisplayName)),
		unit: ing.Unit,
	}
}

type accumulator struct {
	ingredientID string
	displayName  string
	category     recipe.ShoppingCategory
	totalAmount  float64
	unit         recipe.Unit
	kind         recipe.Kind
	usedIn       []ItemUsage
	criticality  recipe.Criticality
	allergens    []recipe.Allergen
	allergenSet  map[recipe.Allergen]bool

	packageSize     *recipe.PackageSize
	packageCount    float64
	packageMismatch bool
}

// BuildList consolidates every non-out-eating dinner (and its
// accompaniments) into one shopping list. Malformed ingredient data aborts
// the whole build: silently dropping a possibly-critical ingredient would
// be worse than failing.
//
// The household parameter is accepted for future servings defaults and is
// currently unused.
func BuildList(plan planner.Plan, catalog []recipe.Recipe, _ *household.Profile) (*List, error) {
	byID := recipe.ByID(catalog)

	acc := make(map[itemKey]*accumulator)
	var order []itemKey

	addRecipe := func(rec recipe.Recipe, servings int) error {
		multiplier := 1.0
		if servings > 0 {
			multiplier = float64(servings) / servingsBaseline
		}

		for _, ing := range rec.Ingredients {
			if math.IsNaN(ing.Amount) || math.IsInf(ing.Amount, 0) || ing.Amount < 0 {
				return fmt.Errorf("ingredient amount is invalid for ingredient %s in recipe %s", ing.IngredientID, rec.ID)
			}
			if strings.TrimSpace(ing.DisplayName) == "" {
				return fmt.Errorf("ingredient display name is missing for ingredient %s in recipe %s", ing.IngredientID, rec.ID)
			}

			key := keyFor(ing)
			scaled := ing.Amount * multiplier

			existing, ok := acc[key]
			if !ok {
				existing = &accumulator{
					ingredientID: ing.IngredientID,
					displayName:  ing.DisplayName,
					category:     ing.Category,
					unit:         ing.Unit,
					kind:         ing.Kind,
					criticality:  ing.Criticality,
					allergenSet:  make(map[recipe.Allergen]bool),
				}
				acc[key] = existing
				order = append(order, key)
			}

			existing.totalAmount += scaled
			existing.usedIn = append(existing.usedIn, ItemUsage{RecipeID: rec.ID, RecipeName: rec.Name})

			// One-way ratchets: criticality is only ever promoted, and a
			// key touched by any PROTEIN contributor stays PROTEIN so the
			// quick-review guard sees it.
			if ing.Criticality == recipe.Critical {
				existing.criticality = recipe.Critical
			}
			if ing.Kind == recipe.KindProtein {
				existing.kind = recipe.KindProtein
			}

			for _, a := range ing.Allergens {
				if !existing.allergenSet[a] {
					existing.allergenSet[a] = true
					existing.allergens = append(existing.allergens, a)
				}
			}

			if ing.PackageSize != nil && !existing.packageMismatch {
				switch {
				case existing.packageSize == nil:
					size := *ing.PackageSize
					existing.packageSize = &size
					existing.packageCount = ing.PackageCount * multiplier
				case *existing.packageSize == *ing.PackageSize:
					existing.packageCount += ing.PackageCount * multiplier
				default:
					existing.packageMismatch = true
					existing.packageSize = nil
					existing.packageCount = 0
				}
			}
		}
		return nil
	}

	for _, day := range plan.Days {
		if day.Dinner == nil || day.Dinner.OutEating {
			continue
		}

		rec, ok := byID[day.Dinner.RecipeID]
		if !ok {
			continue
		}
		if err := addRecipe(rec, day.Dinner.Servings); err != nil {
			return nil, err
		}

		for _, sideID := range day.Dinner.AccompanimentRecipeIDs {
			side, ok := byID[sideID]
			if !ok {
				continue
			}
			if err := addRecipe(side, day.Dinner.Servings); err != nil {
				return nil, err
			}
		}
	}

	items := make([]Item, 0, len(order))
	var candidates []QuickReviewCandidate
	for _, key := range order {
		a := acc[key]
		item := Item{
			ID:           fmt.Sprintf("si_%s", uuid.NewString()),
			PlanID:       plan.ID,
			IngredientID: a.ingredientID,
			DisplayName:  a.displayName,
			Category:     a.category,
			TotalAmount:  a.totalAmount,
			Unit:         a.unit,
			UsedIn:       a.usedIn,
			Checked:      false,
			Criticality:  a.criticality,
			Allergens:    a.allergens,
			PackageSize:  a.packageSize,
			PackageCount: a.packageCount,
		}
		items = append(items, item)

		if reviewable(a) {
			candidates = append(candidates, QuickReviewCandidate{
				ShoppingItemID: item.ID,
				Reason:         ReasonPantryStaple,
				Decision:       DecisionNeedIt,
			})
		}
	}

	return &List{
		PlanID:                plan.ID,
		Items:                 items,
		QuickReviewCandidates: candidates,
	}, nil
}

// reviewable decides whether an item may be offered for quick review.
// CRITICAL items never qualify, nor does anything of PROTEIN kind: quick
// review exists so shoppers can skip optional pantry items without risking
// the meal.
func reviewable(a *accumulator) bool {
	if a.criticality == recipe.Critical || a.kind == recipe.KindProtein {
		return false
	}
	switch a.category {
	case recipe.CategoryPantryDry, recipe.CategoryDairyEggs, recipe.CategoryFrozen:
		return true
	default:
		return false
	}
}
