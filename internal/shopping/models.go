package shopping

import "mealweek/internal/recipe"

// ItemUsage records which recipe contributed to a consolidated item.
type ItemUsage struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
}

// Item is one consolidated shopping list position. Contributions from
// multiple recipes are merged by (normalized display name, unit); the
// ingredient id is the first one seen for that key.
type Item struct {
	ID           string                  `json:"id"`
	PlanID       string                  `json:"plan_id"`
	IngredientID string                  `json:"ingredient_id"`
	DisplayName  string                  `json:"display_name"`
	Category     recipe.ShoppingCategory `json:"shopping_category"`
	TotalAmount  float64                 `json:"total_amount"`
	Unit         recipe.Unit             `json:"unit"`
	UsedIn       []ItemUsage             `json:"used_in"`
	Checked      bool                    `json:"checked"`
	Criticality  recipe.Criticality      `json:"criticality"`
	Allergens    []recipe.Allergen       `json:"allergens,omitempty"`
	// PackageSize and PackageCount are set only when every contributor
	// declared the same package size; mismatched sizes cannot be summed.
	PackageSize  *recipe.PackageSize `json:"package_size,omitempty"`
	PackageCount float64             `json:"package_count,omitempty"`
}

// QuickReviewReason categorizes why an item is offered for quick review.
type QuickReviewReason string

const (
	ReasonPantryStaple QuickReviewReason = "PANTRY_STAPLE"
	ReasonBulkStaple   QuickReviewReason = "BULK_STAPLE"
)

// QuickReviewDecision is the shopper's answer to a quick review prompt.
type QuickReviewDecision string

const (
	DecisionNeedIt  QuickReviewDecision = "NEED_IT"
	DecisionHaveIt  QuickReviewDecision = "HAVE_IT"
	DecisionNotSure QuickReviewDecision = "NOT_SURE"
)

// QuickReviewCandidate suggests the shopper confirm they already have a
// safely-optional staple before buying it again.
type QuickReviewCandidate struct {
	ShoppingItemID string              `json:"shopping_item_id"`
	Reason         QuickReviewReason   `json:"reason"`
	Decision       QuickReviewDecision `json:"decision"`
}

// List is the consolidated shopping list for one plan.
type List struct {
	PlanID                string                 `json:"plan_id"`
	Items                 []Item                 `json:"items"`
	QuickReviewCandidates []QuickReviewCandidate `json:"quick_review_candidates"`
}

// MissingReason says why a shopping item could not be obtained.
type MissingReason string

const (
	MissingOutOfStock MissingReason = "OUT_OF_STOCK"
	MissingSubbed     MissingReason = "SUBBED"
	MissingUserMarked MissingReason = "USER_MARKED"
)

// MissingItem is an externally maintained record of an unobtained shopping
// item. The planning core consumes these; it never produces them.
type MissingItem struct {
	ID             string        `json:"id"`
	PlanID         string        `json:"plan_id"`
	ShoppingItemID string        `json:"shopping_item_id"`
	IngredientID   string        `json:"ingredient_id"`
	IngredientName string        `json:"ingredient_name"`
	Reason         MissingReason `json:"reason"`
	AffectsTonight bool          `json:"affects_tonight"`
	AffectsFuture  bool          `json:"affects_future"`
	Note           string        `json:"note,omitempty"`
}

// Substitution records what replaced a missing item, if anything.
type Substitution struct {
	ShoppingItemID         string `json:"shopping_item_id"`
	PlanID                 string `json:"plan_id"`
	SubstituteName         string `json:"substitute_name"`
	SubstituteIngredientID string `json:"substitute_ingredient_id,omitempty"`
	Note                   string `json:"note,omitempty"`
}
