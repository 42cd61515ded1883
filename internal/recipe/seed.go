package recipe

// SeedCatalog returns the built-in dinner catalog. Callers normally load a
// catalog from a Store; the seed exists for first-run use and tests.
func SeedCatalog() []Recipe {
	return []Recipe{
		{
			ID:   "r_slow-cooker-pulled-pork",
			Name: "Slow Cooker Pulled Pork",
			Slug: "slow-cooker-pulled-pork",
			Metadata: Metadata{
				TimeBand:         BandProject,
				EstimatedMinutes: 319,
				EquipmentTags:    []string{"SLOW_COOKER", "SHEET_PAN"},
				LeftoverStrategy: LeftoversExpected,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_pork-butt", DisplayName: "pork butt", Amount: 3, Unit: UnitLb, Criticality: Critical, Kind: KindProtein, Category: CategoryMeatSeafood},
				{IngredientID: "ing_onion", DisplayName: "onion", Amount: 1, Unit: UnitCount, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_garlic", DisplayName: "garlic", Amount: 4, Unit: UnitCount, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_smoked-paprika", DisplayName: "smoked paprika", Amount: 1, Unit: UnitTsp, Criticality: NonCritical, Kind: KindSpice, Category: CategoryPantryDry},
				{IngredientID: "ing_brown-sugar", DisplayName: "brown sugar", Amount: 2, Unit: UnitTbsp, Criticality: NonCritical, Kind: KindOther, Category: CategoryPantryDry},
				{IngredientID: "ing_bbq-sauce", DisplayName: "bbq sauce", Amount: 1, Unit: UnitCup, Criticality: Critical, Kind: KindCondiment, Category: CategoryPantryDry},
			},
			Preflight: []PreflightRequirement{
				{Type: "SLOW_COOK", Description: "Slow cooker recipe: plan 6-8 hours cook time.", HoursBeforeCook: 6},
			},
			Tags: []string{"BBQ", "MAKE_AHEAD"},
		},
		{
			ID:   "r_one-pot-teriyaki-chicken-and-rice",
			Name: "One Pot Teriyaki Chicken and Rice",
			Slug: "one-pot-teriyaki-chicken-and-rice",
			Metadata: Metadata{
				TimeBand:         BandNormal,
				EstimatedMinutes: 44,
				LeftoverStrategy: LeftoversNone,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_chicken-breast", DisplayName: "skinless chicken breast", Amount: 1.5, Unit: UnitLb, Criticality: Critical, Kind: KindProtein, Category: CategoryMeatSeafood},
				{IngredientID: "ing_jasmine-rice", DisplayName: "uncooked jasmine rice", Amount: 1.5, Unit: UnitCup, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry},
				{IngredientID: "ing_soy-sauce", DisplayName: "soy sauce", Amount: 0.25, Unit: UnitCup, Criticality: Critical, Kind: KindCondiment, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat, AllergenSoy}},
				{IngredientID: "ing_stir-fry-vegetables", DisplayName: "frozen stir fry vegetables", Amount: 12, Unit: UnitOz, Criticality: Critical, Kind: KindVeg, Category: CategoryFrozen, PackageSize: &PackageSize{Amount: 12, Unit: UnitOz}, PackageCount: 1},
				{IngredientID: "ing_fresh-ginger", DisplayName: "grated fresh ginger", Amount: 1, Unit: UnitTsp, Criticality: NonCritical, Kind: KindSpice, Category: CategoryProduce},
				{IngredientID: "ing_garlic", DisplayName: "garlic", Amount: 2, Unit: UnitCount, Criticality: NonCritical, Kind: KindVeg, Category: CategoryProduce},
			},
			Preflight: []PreflightRequirement{
				{Type: "MARINATE", Description: "Marinate the chicken in teriyaki sauce.", HoursBeforeCook: 2},
			},
		},
		{
			ID:   "r_easy-baked-ziti",
			Name: "Easy Baked Ziti",
			Slug: "easy-baked-ziti",
			Metadata: Metadata{
				TimeBand:         BandNormal,
				EstimatedMinutes: 55,
				EquipmentTags:    []string{"OVEN"},
				LeftoverStrategy: LeftoversExpected,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_ziti", DisplayName: "ziti pasta", Amount: 1, Unit: UnitLb, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat}},
				{IngredientID: "ing_italian-sausage", DisplayName: "italian sausage", Amount: 1, Unit: UnitLb, Criticality: Critical, Kind: KindProtein, Category: CategoryMeatSeafood},
				{IngredientID: "ing_marinara", DisplayName: "marinara sauce", Amount: 24, Unit: UnitOz, Criticality: Critical, Kind: KindCondiment, Category: CategoryPantryDry, PackageSize: &PackageSize{Amount: 24, Unit: UnitOz}, PackageCount: 1},
				{IngredientID: "ing_ricotta", DisplayName: "ricotta cheese", Amount: 15, Unit: UnitOz, Criticality: Critical, Kind: KindDairy, Category: CategoryDairyEggs, Allergens: []Allergen{AllergenDairy}},
				{IngredientID: "ing_mozzarella", DisplayName: "shredded mozzarella", Amount: 2, Unit: UnitCup, Criticality: Critical, Kind: KindDairy, Category: CategoryDairyEggs, Allergens: []Allergen{AllergenDairy}},
			},
		},
		{
			ID:   "r_homestyle-chicken-noodle-soup",
			Name: "Homestyle Chicken Noodle Soup",
			Slug: "homestyle-chicken-noodle-soup",
			Metadata: Metadata{
				TimeBand:         BandNormal,
				EstimatedMinutes: 50,
				LeftoverStrategy: LeftoversExpected,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_chicken-thighs", DisplayName: "boneless chicken thighs", Amount: 1, Unit: UnitLb, Criticality: Critical, Kind: KindProtein, Category: CategoryMeatSeafood},
				{IngredientID: "ing_egg-noodles", DisplayName: "egg noodles", Amount: 8, Unit: UnitOz, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat, AllergenEgg}},
				{IngredientID: "ing_carrots", DisplayName: "carrots", Amount: 3, Unit: UnitCount, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_celery", DisplayName: "celery", Amount: 3, Unit: UnitCount, Criticality: NonCritical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_chicken-broth", DisplayName: "chicken broth", Amount: 6, Unit: UnitCup, Criticality: Critical, Kind: KindOther, Category: CategoryPantryDry},
				{IngredientID: "ing_onion", DisplayName: "onion", Amount: 1, Unit: UnitCount, Criticality: NonCritical, Kind: KindVeg, Category: CategoryProduce},
			},
		},
		{
			ID:   "r_spaghetti-aglio-e-olio",
			Name: "Spaghetti Aglio e Olio",
			Slug: "spaghetti-aglio-e-olio",
			Metadata: Metadata{
				TimeBand:         BandFast,
				EstimatedMinutes: 25,
				LeftoverStrategy: LeftoversNone,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_spaghetti", DisplayName: "spaghetti", Amount: 1, Unit: UnitLb, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat}},
				{IngredientID: "ing_olive-oil", DisplayName: "olive oil", Amount: 0.5, Unit: UnitCup, Criticality: Critical, Kind: KindFatOil, Category: CategoryPantryDry},
				{IngredientID: "ing_garlic", DisplayName: "garlic", Amount: 6, Unit: UnitCount, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_red-pepper-flakes", DisplayName: "red pepper flakes", Amount: 0.5, Unit: UnitTsp, Criticality: NonCritical, Kind: KindSpice, Category: CategoryPantryDry, QuantityKind: QuantityToTaste},
				{IngredientID: "ing_parsley", DisplayName: "fresh parsley", Amount: 0.25, Unit: UnitCup, Criticality: NonCritical, Kind: KindVeg, Category: CategoryProduce},
			},
			Tags: []string{"VEGETARIAN", "PANTRY_MEAL"},
		},
		{
			ID:   "r_one-pot-creamy-mushroom-pasta",
			Name: "One Pot Creamy Mushroom Pasta",
			Slug: "one-pot-creamy-mushroom-pasta",
			Metadata: Metadata{
				TimeBand:         BandFast,
				EstimatedMinutes: 30,
				LeftoverStrategy: LeftoversNone,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_fettuccine", DisplayName: "fettuccine", Amount: 8, Unit: UnitOz, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat}},
				{IngredientID: "ing_mushrooms", DisplayName: "cremini mushrooms", Amount: 8, Unit: UnitOz, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_heavy-cream", DisplayName: "heavy cream", Amount: 1, Unit: UnitCup, Criticality: Critical, Kind: KindDairy, Category: CategoryDairyEggs, Allergens: []Allergen{AllergenDairy}},
				{IngredientID: "ing_parmesan", DisplayName: "grated parmesan", Amount: 0.5, Unit: UnitCup, Criticality: NonCritical, Kind: KindDairy, Category: CategoryDairyEggs, Allergens: []Allergen{AllergenDairy}},
				{IngredientID: "ing_garlic", DisplayName: "garlic", Amount: 3, Unit: UnitCount, Criticality: NonCritical, Kind: KindVeg, Category: CategoryProduce},
			},
			Tags: []string{"VEGETARIAN"},
		},
		{
			ID:   "r_simple-chicken-fajitas",
			Name: "Simple Chicken Fajitas",
			Slug: "simple-chicken-fajitas",
			Metadata: Metadata{
				TimeBand:         BandFast,
				EstimatedMinutes: 30,
				EquipmentTags:    []string{"SKILLET"},
				LeftoverStrategy: LeftoversNone,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_chicken-breast", DisplayName: "skinless chicken breast", Amount: 1, Unit: UnitLb, Criticality: Critical, Kind: KindProtein, Category: CategoryMeatSeafood},
				{IngredientID: "ing_bell-peppers", DisplayName: "bell peppers", Amount: 2, Unit: UnitCount, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_flour-tortillas", DisplayName: "flour tortillas", Amount: 8, Unit: UnitCount, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat}},
				{IngredientID: "ing_fajita-seasoning", DisplayName: "fajita seasoning", Amount: 2, Unit: UnitTbsp, Criticality: NonCritical, Kind: KindSpice, Category: CategoryPantryDry},
				{IngredientID: "ing_onion", DisplayName: "onion", Amount: 1, Unit: UnitCount, Criticality: NonCritical, Kind: KindVeg, Category: CategoryProduce},
			},
		},
		{
			ID:   "r_bbq-ribs",
			Name: "BBQ Ribs",
			Slug: "bbq-ribs",
			Metadata: Metadata{
				TimeBand:         BandProject,
				EstimatedMinutes: 210,
				EquipmentTags:    []string{"OVEN"},
				LeftoverStrategy: LeftoversExpected,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_pork-ribs", DisplayName: "frozen pork ribs", Amount: 3, Unit: UnitLb, Criticality: Critical, Kind: KindProtein, Category: CategoryFrozen},
				{IngredientID: "ing_bbq-sauce", DisplayName: "bbq sauce", Amount: 1.5, Unit: UnitCup, Criticality: Critical, Kind: KindCondiment, Category: CategoryPantryDry},
				{IngredientID: "ing_brown-sugar", DisplayName: "brown sugar", Amount: 0.25, Unit: UnitCup, Criticality: NonCritical, Kind: KindOther, Category: CategoryPantryDry},
				{IngredientID: "ing_smoked-paprika", DisplayName: "smoked paprika", Amount: 1, Unit: UnitTbsp, Criticality: NonCritical, Kind: KindSpice, Category: CategoryPantryDry},
			},
			Preflight: []PreflightRequirement{
				{Type: "THAW", Description: "Move ribs from freezer to fridge the night before.", HoursBeforeCook: 24},
				{Type: "MARINATE", Description: "Dry-rub the ribs.", HoursBeforeCook: 4},
			},
			Tags: []string{"BBQ"},
		},
		{
			ID:   "r_garlic-bread",
			Name: "Garlic Bread",
			Slug: "garlic-bread",
			Metadata: Metadata{
				TimeBand:         BandFast,
				EstimatedMinutes: 15,
				EquipmentTags:    []string{"OVEN"},
				LeftoverStrategy: LeftoversNone,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_french-bread", DisplayName: "french bread loaf", Amount: 1, Unit: UnitCount, Criticality: Critical, Kind: KindCarb, Category: CategoryPantryDry, Allergens: []Allergen{AllergenWheat}},
				{IngredientID: "ing_butter", DisplayName: "butter", Amount: 0.5, Unit: UnitCup, Criticality: Critical, Kind: KindDairy, Category: CategoryDairyEggs, Allergens: []Allergen{AllergenDairy}},
				{IngredientID: "ing_garlic", DisplayName: "garlic", Amount: 4, Unit: UnitCount, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
			},
			Tags: []string{"VEGETARIAN", "SIDE"},
		},
		{
			ID:   "r_simple-green-salad",
			Name: "Simple Green Salad",
			Slug: "simple-green-salad",
			Metadata: Metadata{
				TimeBand:         BandFast,
				EstimatedMinutes: 10,
				LeftoverStrategy: LeftoversNone,
			},
			Ingredients: []IngredientRequirement{
				{IngredientID: "ing_mixed-greens", DisplayName: "mixed greens", Amount: 5, Unit: UnitOz, Criticality: Critical, Kind: KindVeg, Category: CategoryProduce},
				{IngredientID: "ing_olive-oil", DisplayName: "olive oil", Amount: 2, Unit: UnitTbsp, Criticality: NonCritical, Kind: KindFatOil, Category: CategoryPantryDry},
				{IngredientID: "ing_red-wine-vinegar", DisplayName: "red wine vinegar", Amount: 1, Unit: UnitTbsp, Criticality: NonCritical, Kind: KindCondiment, Category: CategoryPantryDry},
			},
			Tags: []string{"VEGETARIAN", "SIDE"},
		},
	}
}
