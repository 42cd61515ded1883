// Package pairing carries the curated accompaniment map: which side or
// dessert recipe goes with a given main. Pairings are suggestions; the
// planner only attaches ones that resolve in the active catalog.
package pairing

// Kind distinguishes the role an accompaniment plays in the meal.
type Kind string

const (
	KindSide    Kind = "SIDE"
	KindDessert Kind = "DESSERT"
)

// Accompaniment is one curated pairing entry.
type Accompaniment struct {
	Kind     Kind
	RecipeID string
}

var accompaniments = map[string][]Accompaniment{
	"r_easy-baked-ziti": {
		{Kind: KindSide, RecipeID: "r_garlic-bread"},
	},
	"r_homestyle-chicken-noodle-soup": {
		{Kind: KindSide, RecipeID: "r_garlic-bread"},
	},
	"r_spaghetti-aglio-e-olio": {
		{Kind: KindSide, RecipeID: "r_simple-green-salad"},
	},
	"r_one-pot-creamy-mushroom-pasta": {
		{Kind: KindSide, RecipeID: "r_simple-green-salad"},
	},
	"r_bbq-ribs": {
		{Kind: KindSide, RecipeID: "r_simple-green-salad"},
	},
}

// ForRecipe returns accompaniments for a main recipe id, filtered by the
// given kinds when any are provided.
func ForRecipe(recipeID string, kinds ...Kind) []Accompaniment {
	all := accompaniments[recipeID]
	if len(kinds) == 0 {
		out := make([]Accompaniment, len(all))
		copy(out, all)
		return out
	}

	var out []Accompaniment
	for _, a := range all {
		for _, k := range kinds {
			if a.Kind == k {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// HasAccompaniments reports whether a main recipe has any curated pairing.
func HasAccompaniments(recipeID string) bool {
	return len(accompaniments[recipeID]) > 0
}
