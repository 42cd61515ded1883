package pairing

import "testing"

func TestForRecipe(t *testing.T) {
	t.Run("KnownMain", func(t *testing.T) {
		got := ForRecipe("r_easy-baked-ziti")
		if len(got) != 1 {
			t.Fatalf("Expected 1 accompaniment for the ziti, got %d", len(got))
		}
		if got[0].RecipeID != "r_garlic-bread" || got[0].Kind != KindSide {
			t.Errorf("Expected the garlic bread as a SIDE, got %+v", got[0])
		}
	})

	t.Run("UnknownMain", func(t *testing.T) {
		if got := ForRecipe("r_unknown"); len(got) != 0 {
			t.Errorf("Expected no accompaniments, got %v", got)
		}
	})

	t.Run("KindFilter", func(t *testing.T) {
		if got := ForRecipe("r_easy-baked-ziti", KindDessert); len(got) != 0 {
			t.Errorf("Expected no desserts paired with the ziti, got %v", got)
		}
		if got := ForRecipe("r_easy-baked-ziti", KindSide); len(got) != 1 {
			t.Errorf("Expected the side to pass the filter, got %v", got)
		}
	})

	t.Run("ReturnsACopy", func(t *testing.T) {
		got := ForRecipe("r_bbq-ribs")
		if len(got) == 0 {
			t.Fatal("Expected an accompaniment for the ribs")
		}
		got[0].RecipeID = "r_mutated"
		if again := ForRecipe("r_bbq-ribs"); again[0].RecipeID == "r_mutated" {
			t.Error("Expected the curated map to be insulated from callers")
		}
	})
}

func TestHasAccompaniments(t *testing.T) {
	if !HasAccompaniments("r_spaghetti-aglio-e-olio") {
		t.Error("Expected aglio e olio to have a pairing")
	}
	if HasAccompaniments("r_simple-green-salad") {
		t.Error("Expected the salad itself to have no pairing")
	}
}
