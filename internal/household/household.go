// Package household holds the caller-supplied household configuration the
// planner works from. Profiles are immutable inputs: the planning core reads
// them on every call and never stores or mutates them.
package household

// Mode drives the default week shape (dinner count and effort mix).
type Mode string

const (
	ModeSolo      Mode = "SOLO"
	ModeFamily    Mode = "FAMILY"
	ModeDink      Mode = "DINK" // dual income, no kids
	ModeEmptyNest Mode = "EMPTY_NEST"
	ModeLarge     Mode = "LARGE"
)

// DietConstraint is a closed vocabulary of household dietary rules. Each
// constraint maps to a concrete recipe exclusion test in the planner.
type DietConstraint string

const (
	NoPork      DietConstraint = "NO_PORK"
	NoBeef      DietConstraint = "NO_BEEF"
	NoShellfish DietConstraint = "NO_SHELLFISH"
	NoPeanut    DietConstraint = "NO_PEANUT"
	NoGluten    DietConstraint = "NO_GLUTEN"
	NoDairy     DietConstraint = "NO_DAIRY"
	Vegetarian  DietConstraint = "VEGETARIAN"
	Vegan       DietConstraint = "VEGAN"
	Keto        DietConstraint = "KETO"
	Carnivore   DietConstraint = "CARNIVORE"
)

// Profile describes one household.
type Profile struct {
	ID                   string           `json:"id" yaml:"id"`
	Mode                 Mode             `json:"mode" yaml:"mode"`
	Headcount            int              `json:"headcount" yaml:"headcount"`
	TargetDinnersPerWeek int              `json:"target_dinners_per_week" yaml:"target_dinners_per_week"`
	DietConstraints      []DietConstraint `json:"diet_constraints,omitempty" yaml:"diet_constraints"`
	// AvailableEquipment, when non-empty, restricts planning to recipes
	// whose equipment tags it covers. Empty means no equipment filtering.
	AvailableEquipment []string `json:"available_equipment,omitempty" yaml:"available_equipment"`
}

// HasEquipment reports whether the profile's equipment set covers the tag.
func (p Profile) HasEquipment(tag string) bool {
	for _, have := range p.AvailableEquipment {
		if have == tag {
			return true
		}
	}
	return false
}
