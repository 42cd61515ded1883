package recipe

// ISODate is a calendar date in YYYY-MM-DD form.
type ISODate string

// TimeBand is a recipe's coarse effort classification.
type TimeBand string

const (
	BandFast    TimeBand = "FAST"    // <= 30 minutes
	BandNormal  TimeBand = "NORMAL"  // 30-60 minutes
	BandProject TimeBand = "PROJECT" // > 60 minutes
)

// Order positions bands so FAST < NORMAL < PROJECT. Unknown bands sort last.
func (b TimeBand) Order() int {
	switch b {
	case BandFast:
		return 0
	case BandNormal:
		return 1
	case BandProject:
		return 2
	default:
		return 3
	}
}

// Criticality says whether a missing ingredient blocks cooking.
type Criticality string

const (
	Critical    Criticality = "CRITICAL"
	NonCritical Criticality = "NON_CRITICAL"
)

// Kind is a coarse ingredient classification.
type Kind string

const (
	KindProtein   Kind = "PROTEIN"
	KindCarb      Kind = "CARB"
	KindVeg       Kind = "VEG"
	KindFruit     Kind = "FRUIT"
	KindDairy     Kind = "DAIRY"
	KindFatOil    Kind = "FAT_OIL"
	KindSpice     Kind = "SPICE"
	KindCondiment Kind = "CONDIMENT"
	KindOther     Kind = "OTHER"
)

// ShoppingCategory is the store aisle an ingredient belongs to.
type ShoppingCategory string

const (
	CategoryProduce     ShoppingCategory = "PRODUCE"
	CategoryMeatSeafood ShoppingCategory = "MEAT_SEAFOOD"
	CategoryDairyEggs   ShoppingCategory = "DAIRY_EGGS"
	CategoryPantryDry   ShoppingCategory = "PANTRY_DRY"
	CategoryFrozen      ShoppingCategory = "FROZEN"
	CategoryOther       ShoppingCategory = "OTHER"
)

// Unit is a measurement unit for ingredient amounts.
type Unit string

const (
	UnitCount Unit = "UNIT"
	UnitGram  Unit = "GRAM"
	UnitKg    Unit = "KG"
	UnitOz    Unit = "OZ"
	UnitLb    Unit = "LB"
	UnitCup   Unit = "CUP"
	UnitTbsp  Unit = "TBSP"
	UnitTsp   Unit = "TSP"
	UnitMl    Unit = "ML"
)

// QuantityKind distinguishes measured amounts from looser ones.
type QuantityKind string

const (
	QuantityFixed       QuantityKind = "FIXED"
	QuantityApproximate QuantityKind = "APPROXIMATE"
	QuantityToTaste     QuantityKind = "TO_TASTE"
)

// LeftoverStrategy describes what a recipe expects to happen with leftovers.
type LeftoverStrategy string

const (
	LeftoversNone     LeftoverStrategy = "NONE"
	LeftoversExpected LeftoverStrategy = "EXPECTED"
	CookOnceEatTwice  LeftoverStrategy = "COOK_ONCE_EAT_TWICE"
)

// PreflightType classifies time-boxed preparation that must begin hours
// before cooking. TypeLegacy is the explicit bucket for the retired
// CHILL/SOAK/FREEZE values still present in older catalog data; anything
// else unrecognized maps to TypeUnknown and is assumed satisfied.
type PreflightType string

const (
	TypeThaw     PreflightType = "THAW"
	TypeMarinate PreflightType = "MARINATE"
	TypeSlowCook PreflightType = "SLOW_COOK"
	TypeLongPrep PreflightType = "LONG_PREP"
	TypeLegacy   PreflightType = "LEGACY"
	TypeUnknown  PreflightType = "UNKNOWN"
)

// NormalizeType folds raw catalog preflight type strings into the closed
// enum above.
func NormalizeType(raw string) PreflightType {
	switch PreflightType(raw) {
	case TypeThaw, TypeMarinate, TypeSlowCook, TypeLongPrep:
		return PreflightType(raw)
	}
	switch raw {
	case "CHILL", "SOAK", "FREEZE":
		return TypeLegacy
	}
	return TypeUnknown
}

// PackageSize records how an ingredient is sold, for package-count math.
type PackageSize struct {
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit"`
}

// IngredientRequirement is one line of a recipe's ingredient list. Amounts
// are authored for 4 servings.
type IngredientRequirement struct {
	IngredientID string           `json:"ingredient_id"`
	DisplayName  string           `json:"display_name"`
	Amount       float64          `json:"amount"`
	Unit         Unit             `json:"unit"`
	Criticality  Criticality      `json:"criticality"`
	Kind         Kind             `json:"kind"`
	Category     ShoppingCategory `json:"shopping_category"`
	Allergens    []Allergen       `json:"allergens,omitempty"`
	PackageSize  *PackageSize     `json:"package_size,omitempty"`
	PackageCount float64          `json:"package_count,omitempty"`
	QuantityKind QuantityKind     `json:"quantity_kind,omitempty"`
}

// PreflightRequirement is a preparation action that must begin a number of
// hours before the assumed cook time. HoursBeforeCook of zero means the
// type's default lead time applies.
type PreflightRequirement struct {
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	HoursBeforeCook float64 `json:"hours_before_cook,omitempty"`
}

// Step is one instruction in a recipe.
type Step struct {
	Number       int    `json:"step_number"`
	Instruction  string `json:"instruction"`
	TimerMinutes int    `json:"timer_minutes,omitempty"`
}

// Metadata carries a recipe's planning-relevant attributes.
type Metadata struct {
	TimeBand         TimeBand         `json:"time_band"`
	EstimatedMinutes int              `json:"estimated_minutes"`
	EquipmentTags    []string         `json:"equipment_tags,omitempty"`
	LeftoverStrategy LeftoverStrategy `json:"leftover_strategy,omitempty"`
}

// Recipe is read-only reference data owned by the catalog. The planning
// core never mutates recipes.
type Recipe struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Slug         string                  `json:"slug"`
	Metadata     Metadata                `json:"metadata"`
	Ingredients  []IngredientRequirement `json:"ingredients"`
	Preflight    []PreflightRequirement  `json:"preflight,omitempty"`
	Steps        []Step                  `json:"steps,omitempty"`
	Tags         []string                `json:"tags,omitempty"`
	Allergens    []Allergen              `json:"recipe_allergens,omitempty"`
	BaseServings int                     `json:"base_servings,omitempty"`
	YieldText    string                  `json:"yield_text,omitempty"`
}

// ByID indexes a catalog slice for lookup.
func ByID(catalog []Recipe) map[string]Recipe {
	m := make(map[string]Recipe, len(catalog))
	for _, r := range catalog {
		m[r.ID] = r
	}
	return m
}

// Find returns the recipe with the given id, or false when the catalog does
// not contain it.
func Find(catalog []Recipe, id string) (Recipe, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}
