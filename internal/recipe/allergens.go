package recipe

import "strings"

// Allergen is a recognized allergen tag in catalog data.
type Allergen string

const (
	AllergenShellfish Allergen = "SHELLFISH"
	AllergenFish      Allergen = "FISH"
	AllergenPeanut    Allergen = "PEANUT"
	AllergenTreeNut   Allergen = "TREE_NUT"
	AllergenWheat     Allergen = "WHEAT"
	AllergenDairy     Allergen = "DAIRY"
	AllergenEgg       Allergen = "EGG"
	AllergenSoy       Allergen = "SOY"
	AllergenSesame    Allergen = "SESAME"
)

// allergenOverrides maps lowercase name fragments to allergens for noisy
// ingredient names and ids. Used sparingly: only high-risk allergens where
// a false negative is not acceptable.
var allergenOverrides = map[string][]Allergen{
	"pesto":           {AllergenTreeNut}, // pine nuts
	"pine nut":        {AllergenTreeNut},
	"pine-nut":        {AllergenTreeNut},
	"fish sauce":      {AllergenFish},
	"anchovy":         {AllergenFish},
	"anchovies":       {AllergenFish},
	"nutella":         {AllergenTreeNut, AllergenDairy},
	"hazelnut spread": {AllergenTreeNut, AllergenDairy},
	"almond extract":  {AllergenTreeNut},
	"walnut oil":      {AllergenTreeNut},
	"tahini":          {AllergenSesame},
}

// OverrideAllergens returns allergens implied by an ingredient's id or
// display name alone, independent of explicit tagging.
func OverrideAllergens(ingredientID, displayName string) []Allergen {
	id := strings.ToLower(ingredientID)
	name := strings.ToLower(displayName)

	var out []Allergen
	seen := make(map[Allergen]bool)
	for fragment, allergens := range allergenOverrides {
		if !strings.Contains(id, fragment) && !strings.Contains(name, fragment) {
			continue
		}
		for _, a := range allergens {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// HasAllergen reports whether the recipe carries the allergen, checking the
// recipe-level summary, every ingredient's tags, and the override lexicon.
// Tag-aware on purpose: upstream data may tag an allergen without using an
// obvious ingredient name.
func (r Recipe) HasAllergen(target Allergen) bool {
	for _, a := range r.Allergens {
		if a == target {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		for _, a := range ing.Allergens {
			if a == target {
				return true
			}
		}
		for _, a := range OverrideAllergens(ing.IngredientID, ing.DisplayName) {
			if a == target {
				return true
			}
		}
	}
	return false
}

// EffectiveAllergens is the union of the recipe summary, ingredient tags,
// and lexicon overrides.
func (r Recipe) EffectiveAllergens() []Allergen {
	seen := make(map[Allergen]bool)
	var out []Allergen
	add := func(a Allergen) {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	for _, a := range r.Allergens {
		add(a)
	}
	for _, ing := range r.Ingredients {
		for _, a := range ing.Allergens {
			add(a)
		}
		for _, a := range OverrideAllergens(ing.IngredientID, ing.DisplayName) {
			add(a)
		}
	}
	return out
}
