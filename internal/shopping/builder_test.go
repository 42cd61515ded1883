package shopping

import (
	"math"
	"strings"
	"testing"

	"mealweek/internal/planner"
	"mealweek/internal/preflight"
	"mealweek/internal/recipe"
)

func dinnerDay(date recipe.ISODate, recipeID string, servings int) planner.PlanDay {
	return planner.PlanDay{
		Date: date,
		Dinner: &planner.PlannedDinner{
			RecipeID:        recipeID,
			Servings:        servings,
			PreflightStatus: preflight.StatusNoneRequired,
		},
	}
}

func planWith(days ...planner.PlanDay) planner.Plan {
	return planner.Plan{
		ID:            "plan_test",
		HouseholdID:   "hh_test",
		WeekStartDate: "2025-12-08",
		Status:        planner.StatusDraft,
		Days:          days,
	}
}

func findItem(items []Item, name string, unit recipe.Unit) *Item {
	for i := range items {
		if strings.EqualFold(items[i].DisplayName, name) && items[i].Unit == unit {
			return &items[i]
		}
	}
	return nil
}

func TestBuildListConsolidation(t *testing.T) {
	catalog := recipe.SeedCatalog()
	plan := planWith(
		dinnerDay("2025-12-08", "r_spaghetti-aglio-e-olio", 4),
		dinnerDay("2025-12-09", "r_one-pot-creamy-mushroom-pasta", 4),
	)

	list, err := BuildList(plan, catalog, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if list.PlanID != "plan_test" {
		t.Errorf("Expected plan id plan_test, got %s", list.PlanID)
	}

	// Garlic appears in both recipes at 6 and 3 units.
	garlic := findItem(list.Items, "garlic", recipe.UnitCount)
	if garlic == nil {
		t.Fatal("Expected a consolidated garlic item")
	}
	if math.Abs(garlic.TotalAmount-9) > 1e-9 {
		t.Errorf("Expected 9 units of garlic, got %v", garlic.TotalAmount)
	}
	if len(garlic.UsedIn) != 2 {
		t.Errorf("Expected garlic used in 2 recipes, got %d", len(garlic.UsedIn))
	}

	// No two items may share a (name, unit) key.
	seen := make(map[itemKey]bool)
	for _, item := range list.Items {
		key := itemKey{name: strings.ToLower(strings.TrimSpace(item.DisplayName)), unit: item.Unit}
		if seen[key] {
			t.Errorf("Expected unique (name, unit) keys, saw %v twice", key)
		}
		seen[key] = true
	}

	for _, item := range list.Items {
		if item.Checked {
			t.Errorf("Expected new items unchecked, %s is checked", item.DisplayName)
		}
		if item.ID == "" || item.PlanID != plan.ID {
			t.Errorf("Expected stamped ids on %s", item.DisplayName)
		}
	}
}

func TestBuildListScalesByServings(t *testing.T) {
	catalog := recipe.SeedCatalog()
	plan := planWith(dinnerDay("2025-12-08", "r_spaghetti-aglio-e-olio", 8))

	list, err := BuildList(plan, catalog, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	spaghetti := findItem(list.Items, "spaghetti", recipe.UnitLb)
	if spaghetti == nil {
		t.Fatal("Expected a spaghetti item")
	}
	if math.Abs(spaghetti.TotalAmount-2) > 1e-9 {
		t.Errorf("Expected 1 lb doubled to 2 for 8 servings, got %v", spaghetti.TotalAmount)
	}
}

func TestBuildListCriticalityRatchet(t *testing.T) {
	catalog := recipe.SeedCatalog()

	// Mushroom pasta lists garlic as NON_CRITICAL; aglio e olio lists it
	// CRITICAL. Merge order must not matter.
	plans := []planner.Plan{
		planWith(
			dinnerDay("2025-12-08", "r_one-pot-creamy-mushroom-pasta", 4),
			dinnerDay("2025-12-09", "r_spaghetti-aglio-e-olio", 4),
		),
		planWith(
			dinnerDay("2025-12-08", "r_spaghetti-aglio-e-olio", 4),
			dinnerDay("2025-12-09", "r_one-pot-creamy-mushroom-pasta", 4),
		),
	}

	for _, plan := range plans {
		list, err := BuildList(plan, catalog, nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		garlic := findItem(list.Items, "garlic", recipe.UnitCount)
		if garlic == nil {
			t.Fatal("Expected a garlic item")
		}
		if garlic.Criticality != recipe.Critical {
			t.Errorf("Expected garlic promoted to CRITICAL, got %s", garlic.Criticality)
		}
	}
}

func TestBuildListMonotonicOverNestedPlans(t *testing.T) {
	catalog := recipe.SeedCatalog()
	dinners := []planner.PlanDay{
		dinnerDay("2025-12-08", "r_spaghetti-aglio-e-olio", 4),
		dinnerDay("2025-12-09", "r_one-pot-teriyaki-chicken-and-rice", 4),
		dinnerDay("2025-12-10", "r_easy-baked-ziti", 4),
		dinnerDay("2025-12-11", "r_simple-chicken-fajitas", 4),
		dinnerDay("2025-12-12", "r_slow-cooker-pulled-pork", 4),
	}

	// Each week is a superset of the one before it; adding a dinner must
	// never shrink the list or reduce the critical quantity already on it.
	prevItems := 0
	prevCritical := 0.0
	for n := 1; n <= len(dinners); n++ {
		list, err := BuildList(planWith(dinners[:n]...), catalog, nil)
		if err != nil {
			t.Fatalf("Expected no error for %d dinners, got %v", n, err)
		}

		critical := 0.0
		for _, item := range list.Items {
			if item.Criticality == recipe.Critical {
				critical += item.TotalAmount
			}
		}

		if len(list.Items) < prevItems {
			t.Errorf("Item count shrank from %d to %d at %d dinners", prevItems, len(list.Items), n)
		}
		if critical < prevCritical-1e-9 {
			t.Errorf("Critical quantity shrank from %v to %v at %d dinners", prevCritical, critical, n)
		}
		prevItems = len(list.Items)
		prevCritical = critical
	}
}

func TestBuildListSkipsOutEatingAndUnknown(t *testing.T) {
	catalog := recipe.SeedCatalog()

	out := dinnerDay("2025-12-08", "r_easy-baked-ziti", 4)
	out.Dinner.OutEating = true

	plan := planWith(
		out,
		planner.PlanDay{Date: "2025-12-09"}, // empty day
		dinnerDay("2025-12-10", "r_gone-from-catalog", 4),
		dinnerDay("2025-12-11", "r_simple-green-salad", 4),
	)

	list, err := BuildList(plan, catalog, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if findItem(list.Items, "ziti pasta", recipe.UnitLb) != nil {
		t.Error("Expected the out-eating dinner to contribute nothing")
	}
	if findItem(list.Items, "mixed greens", recipe.UnitOz) == nil {
		t.Error("Expected the salad to contribute its ingredients")
	}
}

func TestBuildListIncludesAccompaniments(t *testing.T) {
	catalog := recipe.SeedCatalog()

	day := dinnerDay("2025-12-08", "r_easy-baked-ziti", 4)
	day.Dinner.AccompanimentRecipeIDs = []string{"r_garlic-bread"}

	list, err := BuildList(planWith(day), catalog, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	bread := findItem(list.Items, "french bread loaf", recipe.UnitCount)
	if bread == nil {
		t.Fatal("Expected the garlic bread's ingredients on the list")
	}
	if len(bread.UsedIn) != 1 || bread.UsedIn[0].RecipeID != "r_garlic-bread" {
		t.Errorf("Expected the bread attributed to the garlic bread, got %v", bread.UsedIn)
	}
}

func TestBuildListAllergenUnion(t *testing.T) {
	catalog := recipe.SeedCatalog()
	plan := planWith(dinnerDay("2025-12-08", "r_one-pot-teriyaki-chicken-and-rice", 4))

	list, err := BuildList(plan, catalog, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	soy := findItem(list.Items, "soy sauce", recipe.UnitCup)
	if soy == nil {
		t.Fatal("Expected a soy sauce item")
	}
	if len(soy.Allergens) != 2 {
		t.Fatalf("Expected WHEAT and SOY on the soy sauce, got %v", soy.Allergens)
	}
}

func TestBuildListPackageCounts(t *testing.T) {
	catalog := recipe.SeedCatalog()

	t.Run("SameSizeSums", func(t *testing.T) {
		plan := planWith(
			dinnerDay("2025-12-08", "r_one-pot-teriyaki-chicken-and-rice", 4),
			dinnerDay("2025-12-09", "r_one-pot-teriyaki-chicken-and-rice", 4),
		)

		list, err := BuildList(plan, catalog, nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		veg := findItem(list.Items, "frozen stir fry vegetables", recipe.UnitOz)
		if veg == nil {
			t.Fatal("Expected a frozen vegetables item")
		}
		if veg.PackageSize == nil || veg.PackageSize.Amount != 12 {
			t.Fatalf("Expected a 12 oz package size, got %v", veg.PackageSize)
		}
		if math.Abs(veg.PackageCount-2) > 1e-9 {
			t.Errorf("Expected 2 packages across two dinners, got %v", veg.PackageCount)
		}
	})

	t.Run("MismatchedSizesDropPackageMath", func(t *testing.T) {
		small := recipe.Recipe{
			ID: "r_a", Name: "A",
			Ingredients: []recipe.IngredientRequirement{
				{IngredientID: "ing_peas", DisplayName: "frozen peas", Amount: 10, Unit: recipe.UnitOz, Criticality: recipe.NonCritical, Kind: recipe.KindVeg, Category: recipe.CategoryFrozen, PackageSize: &recipe.PackageSize{Amount: 10, Unit: recipe.UnitOz}, PackageCount: 1},
			},
		}
		large := recipe.Recipe{
			ID: "r_b", Name: "B",
			Ingredients: []recipe.IngredientRequirement{
				{IngredientID: "ing_peas", DisplayName: "frozen peas", Amount: 16, Unit: recipe.UnitOz, Criticality: recipe.NonCritical, Kind: recipe.KindVeg, Category: recipe.CategoryFrozen, PackageSize: &recipe.PackageSize{Amount: 16, Unit: recipe.UnitOz}, PackageCount: 1},
			},
		}

		plan := planWith(dinnerDay("2025-12-08", "r_a", 4), dinnerDay("2025-12-09", "r_b", 4))
		list, err := BuildList(plan, []recipe.Recipe{small, large}, nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		peas := findItem(list.Items, "frozen peas", recipe.UnitOz)
		if peas == nil {
			t.Fatal("Expected a consolidated peas item")
		}
		if peas.PackageSize != nil || peas.PackageCount != 0 {
			t.Errorf("Expected package math dropped on mismatched sizes, got %v x %v", peas.PackageSize, peas.PackageCount)
		}
		if math.Abs(peas.TotalAmount-26) > 1e-9 {
			t.Errorf("Expected amounts still summed to 26 oz, got %v", peas.TotalAmount)
		}
	})
}

func TestBuildListQuickReview(t *testing.T) {
	catalog := recipe.SeedCatalog()
	plan := planWith(
		dinnerDay("2025-12-08", "r_simple-chicken-fajitas", 4),
		dinnerDay("2025-12-09", "r_bbq-ribs", 4),
	)

	list, err := BuildList(plan, catalog, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	byID := make(map[string]Item, len(list.Items))
	for _, item := range list.Items {
		byID[item.ID] = item
	}

	candidateNames := make(map[string]bool)
	for _, c := range list.QuickReviewCandidates {
		item, ok := byID[c.ShoppingItemID]
		if !ok {
			t.Fatalf("Expected candidate %s to reference a list item", c.ShoppingItemID)
		}
		candidateNames[item.DisplayName] = true

		if item.Criticality == recipe.Critical {
			t.Errorf("Expected no CRITICAL item offered for review, got %s", item.DisplayName)
		}
		if c.Decision != DecisionNeedIt {
			t.Errorf("Expected candidates to default to NEED_IT, got %s", c.Decision)
		}
	}

	if !candidateNames["fajita seasoning"] {
		t.Error("Expected the fajita seasoning as a quick review candidate")
	}
	// The ribs are CRITICAL and PROTEIN kind; never reviewable even though
	// they sit in the FROZEN category.
	if candidateNames["frozen pork ribs"] {
		t.Error("Expected the frozen ribs excluded from quick review")
	}
	// Produce is not on the review allow-list.
	if candidateNames["bell peppers"] || candidateNames["onion"] {
		t.Error("Expected produce excluded from quick review")
	}
}

func TestBuildListQuickReviewKindRatchet(t *testing.T) {
	// The same (name, unit) key arrives first as OTHER kind, then as
	// PROTEIN. The merged item must be treated as protein and never
	// offered for quick review.
	veggie := recipe.Recipe{
		ID: "r_veggie", Name: "Veggie Night",
		Ingredients: []recipe.IngredientRequirement{
			{IngredientID: "ing_mince-a", DisplayName: "frozen mince", Amount: 8, Unit: recipe.UnitOz, Criticality: recipe.NonCritical, Kind: recipe.KindOther, Category: recipe.CategoryFrozen},
		},
	}
	meaty := recipe.Recipe{
		ID: "r_meaty", Name: "Meaty Night",
		Ingredients: []recipe.IngredientRequirement{
			{IngredientID: "ing_mince-b", DisplayName: "frozen mince", Amount: 8, Unit: recipe.UnitOz, Criticality: recipe.NonCritical, Kind: recipe.KindProtein, Category: recipe.CategoryFrozen},
		},
	}

	plan := planWith(dinnerDay("2025-12-08", "r_veggie", 4), dinnerDay("2025-12-09", "r_meaty", 4))
	list, err := BuildList(plan, []recipe.Recipe{veggie, meaty}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	mince := findItem(list.Items, "frozen mince", recipe.UnitOz)
	if mince == nil {
		t.Fatal("Expected a consolidated mince item")
	}
	for _, c := range list.QuickReviewCandidates {
		if c.ShoppingItemID == mince.ID {
			t.Error("Expected the merged protein item excluded from quick review")
		}
	}
}

func TestBuildListMalformedIngredients(t *testing.T) {
	base := recipe.Recipe{
		ID: "r_bad", Name: "Bad Recipe",
		Ingredients: []recipe.IngredientRequirement{
			{IngredientID: "ing_ok", DisplayName: "fine", Amount: 1, Unit: recipe.UnitCup, Criticality: recipe.Critical, Kind: recipe.KindOther, Category: recipe.CategoryOther},
		},
	}

	t.Run("NaNAmount", func(t *testing.T) {
		rec := base
		rec.Ingredients = append([]recipe.IngredientRequirement{}, base.Ingredients...)
		rec.Ingredients = append(rec.Ingredients, recipe.IngredientRequirement{
			IngredientID: "ing_nan", DisplayName: "mystery", Amount: math.NaN(), Unit: recipe.UnitCup,
		})

		_, err := BuildList(planWith(dinnerDay("2025-12-08", "r_bad", 4)), []recipe.Recipe{rec}, nil)
		if err == nil {
			t.Fatal("Expected an error for a NaN amount")
		}
		if !strings.Contains(err.Error(), "ing_nan") || !strings.Contains(err.Error(), "r_bad") {
			t.Errorf("Expected the error to name the ingredient and recipe, got %v", err)
		}
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		rec := base
		rec.Ingredients = []recipe.IngredientRequirement{
			{IngredientID: "ing_neg", DisplayName: "upside down", Amount: -2, Unit: recipe.UnitCup},
		}
		if _, err := BuildList(planWith(dinnerDay("2025-12-08", "r_bad", 4)), []recipe.Recipe{rec}, nil); err == nil {
			t.Fatal("Expected an error for a negative amount")
		}
	})

	t.Run("BlankDisplayName", func(t *testing.T) {
		rec := base
		rec.Ingredients = []recipe.IngredientRequirement{
			{IngredientID: "ing_blank", DisplayName: "   ", Amount: 1, Unit: recipe.UnitCup},
		}
		_, err := BuildList(planWith(dinnerDay("2025-12-08", "r_bad", 4)), []recipe.Recipe{rec}, nil)
		if err == nil {
			t.Fatal("Expected an error for a blank display name")
		}
		if !strings.Contains(err.Error(), "ing_blank") {
			t.Errorf("Expected the error to name the ingredient, got %v", err)
		}
	})

	t.Run("NothingPartialOnFailure", func(t *testing.T) {
		rec := base
		rec.Ingredients = append([]recipe.IngredientRequirement{}, base.Ingredients...)
		rec.Ingredients = append(rec.Ingredients, recipe.IngredientRequirement{
			IngredientID: "ing_inf", DisplayName: "endless", Amount: math.Inf(1), Unit: recipe.UnitCup,
		})

		list, err := BuildList(planWith(dinnerDay("2025-12-08", "r_bad", 4)), []recipe.Recipe{rec}, nil)
		if err == nil {
			t.Fatal("Expected an error for an infinite amount")
		}
		if list != nil {
			t.Error("Expected no partial list on failure")
		}
	})
}

func TestBuildListEmptyPlan(t *testing.T) {
	list, err := BuildList(planWith(), recipe.SeedCatalog(), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected an empty list, got %d items", len(list.Items))
	}
	if len(list.QuickReviewCandidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(list.QuickReviewCandidates))
	}
}
