package planner

import (
	"fmt"
	"regexp"
	"strings"

	"mealweek/internal/household"
	"mealweek/internal/recipe"
)

// RejectionReason says why the constraint filter excluded a recipe.
type RejectionReason string

const (
	RejectedRecentlyUsed     RejectionReason = "RECENTLY_USED"
	RejectedEquipmentMissing RejectionReason = "EQUIPMENT_NOT_AVAILABLE"
	RejectedDietConstraint   RejectionReason = "DIET_CONSTRAINT_VIOLATED"
)

// Rejection records one filtered-out recipe for diagnostics.
type Rejection struct {
	RecipeID string
	Reason   RejectionReason
	Details  string
}

var (
	porkRe      = regexp.MustCompile(`(?i)pork|bacon|ham|sausage`)
	beefRe      = regexp.MustCompile(`(?i)beef|steak|ground beef|chuck`)
	shellfishRe = regexp.MustCompile(`(?i)shrimp|crab|lobster|clam|mussel|oyster|scallop`)
	peanutRe    = regexp.MustCompile(`(?i)peanut`)
	glutenRe    = regexp.MustCompile(`(?i)flour|pasta|bread|soy sauce|wheat|barley|rye`)
	dairyRe     = regexp.MustCompile(`(?i)milk|cheese|cream|butter|yogurt`)
	meatRe      = regexp.MustCompile(`(?i)chicken|beef|pork|fish|shrimp|meat|turkey|lamb`)
	animalRe    = regexp.MustCompile(`(?i)egg|honey|milk|cheese|cream|butter|yogurt`)
	highCarbRe  = regexp.MustCompile(`(?i)rice|pasta|bread|potato|tortilla|noodle|flour|sugar|honey|corn|beans|lentils`)
	plantRe     = regexp.MustCompile(`(?i)vegetable|lettuce|tomato|onion|garlic|pepper|broccoli|carrot|fruit|beans|lentils|rice|pasta|bread`)
)

func anyIngredient(rec recipe.Recipe, match func(recipe.IngredientRequirement) bool) bool {
	for _, ing := range rec.Ingredients {
		if match(ing) {
			return true
		}
	}
	return false
}

func nameMatches(re *regexp.Regexp) func(recipe.IngredientRequirement) bool {
	return func(ing recipe.IngredientRequirement) bool {
		return re.MatchString(ing.DisplayName)
	}
}

// dietPredicates maps each diet constraint to its exclusion test. Where an
// allergen tag exists, tags and name heuristics are both consulted so
// under-tagged catalog data cannot slip through.
var dietPredicates = map[household.DietConstraint]func(recipe.Recipe) (bool, string){
	household.NoPork: func(r recipe.Recipe) (bool, string) {
		return anyIngredient(r, nameMatches(porkRe)), "Contains pork"
	},
	household.NoBeef: func(r recipe.Recipe) (bool, string) {
		return anyIngredient(r, nameMatches(beefRe)), "Contains beef"
	},
	household.NoShellfish: func(r recipe.Recipe) (bool, string) {
		return r.HasAllergen(recipe.AllergenShellfish) || anyIngredient(r, nameMatches(shellfishRe)), "Contains shellfish"
	},
	household.NoPeanut: func(r recipe.Recipe) (bool, string) {
		return r.HasAllergen(recipe.AllergenPeanut) || anyIngredient(r, nameMatches(peanutRe)), "Contains peanut"
	},
	household.NoGluten: func(r recipe.Recipe) (bool, string) {
		return r.HasAllergen(recipe.AllergenWheat) || anyIngredient(r, nameMatches(glutenRe)), "Contains gluten"
	},
	household.NoDairy: func(r recipe.Recipe) (bool, string) {
		violated := r.HasAllergen(recipe.AllergenDairy) || anyIngredient(r, func(ing recipe.IngredientRequirement) bool {
			return ing.Kind == recipe.KindDairy || dairyRe.MatchString(ing.DisplayName)
		})
		return violated, "Contains dairy"
	},
	household.Vegetarian: func(r recipe.Recipe) (bool, string) {
		violated := anyIngredient(r, func(ing recipe.IngredientRequirement) bool {
			return ing.Kind == recipe.KindProtein && meatRe.MatchString(ing.DisplayName)
		})
		return violated, "Contains meat"
	},
	household.Vegan: func(r recipe.Recipe) (bool, string) {
		violated := anyIngredient(r, func(ing recipe.IngredientRequirement) bool {
			if ing.Kind == recipe.KindProtein && meatRe.MatchString(ing.DisplayName) {
				return true
			}
			return ing.Kind == recipe.KindDairy || animalRe.MatchString(ing.DisplayName)
		})
		return violated, "Contains animal products"
	},
	household.Keto: func(r recipe.Recipe) (bool, string) {
		violated := anyIngredient(r, func(ing recipe.IngredientRequirement) bool {
			return ing.Kind == recipe.KindCarb || highCarbRe.MatchString(ing.DisplayName)
		})
		return violated, "Too many carbs"
	},
	household.Carnivore: func(r recipe.Recipe) (bool, string) {
		violated := anyIngredient(r, func(ing recipe.IngredientRequirement) bool {
			return ing.Kind == recipe.KindVeg || ing.Kind == recipe.KindCarb || plantRe.MatchString(ing.DisplayName)
		})
		return violated, "Contains plant ingredients"
	},
}

// FilterEligible returns the recipes a household may be served this week,
// in catalog order. When rejections is non-nil, every excluded recipe is
// recorded there with the reason.
func FilterEligible(catalog []recipe.Recipe, profile household.Profile, recentRecipeIDs map[string]bool, rejections *[]Rejection) []recipe.Recipe {
	reject := func(rec recipe.Recipe, reason RejectionReason, details string) {
		if rejections != nil {
			*rejections = append(*rejections, Rejection{RecipeID: rec.ID, Reason: reason, Details: details})
		}
	}

	var eligible []recipe.Recipe
recipes:
	for _, rec := range catalog {
		if recentRecipeIDs[rec.ID] {
			reject(rec, RejectedRecentlyUsed, "Used in recent dinners")
			continue
		}

		if len(profile.AvailableEquipment) > 0 && len(rec.Metadata.EquipmentTags) > 0 {
			var missing []string
			for _, tag := range rec.Metadata.EquipmentTags {
				if !profile.HasEquipment(tag) {
					missing = append(missing, tag)
				}
			}
			if len(missing) > 0 {
				reject(rec, RejectedEquipmentMissing, fmt.Sprintf("Missing: %s", strings.Join(missing, ", ")))
				continue
			}
		}

		for _, constraint := range profile.DietConstraints {
			predicate, ok := dietPredicates[constraint]
			if !ok {
				continue
			}
			if violated, detail := predicate(rec); violated {
				reject(rec, RejectedDietConstraint, fmt.Sprintf("%s (%s)", detail, constraint))
				continue recipes
			}
		}

		eligible = append(eligible, rec)
	}
	return eligible
}

// Eligible reports whether a single recipe passes the household's
// constraints, ignoring recency.
func Eligible(rec recipe.Recipe, profile household.Profile) bool {
	filtered := FilterEligible([]recipe.Recipe{rec}, profile, nil, nil)
	return len(filtered) == 1
}
