package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mealweek/internal/household"
)

// PlannerDefaults are week-level knobs a profile file may set. Zero values
// mean "use the household mode defaults".
type PlannerDefaults struct {
	TargetDinners int `yaml:"target_dinners"`
	WeekServings  int `yaml:"week_servings"`
}

// ProfileFile models the on-disk household profile document.
type ProfileFile struct {
	Household household.Profile `yaml:"household"`
	Planner   PlannerDefaults   `yaml:"planner"`
}

// Config holds the runtime configuration for the planning library's
// collaborators: where the recipe catalog database lives and which
// household profile to plan for.
type Config struct {
	DatabasePath string
	ProfilePath  string

	Profile ProfileFile
}

// NewFromEnv creates a Config from environment variables, reading a .env
// file first if one is present.
func NewFromEnv() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	dbPath := os.Getenv("MEALWEEK_DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("MEALWEEK_DB_PATH not set and home directory unavailable: %w", err)
		}
		dbPath = filepath.Join(home, ".mealweek", "catalog.db")
	}

	profilePath := os.Getenv("MEALWEEK_PROFILE")
	if profilePath == "" {
		return nil, fmt.Errorf("MEALWEEK_PROFILE environment variable not set")
	}

	profile, err := LoadProfile(profilePath)
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabasePath: dbPath,
		ProfilePath:  profilePath,
		Profile:      *profile,
	}, nil
}

// LoadProfile reads and validates a household profile YAML file.
func LoadProfile(path string) (*ProfileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var pf ProfileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}

	if pf.Household.ID == "" {
		return nil, fmt.Errorf("profile file %s: household id is required", path)
	}
	if pf.Household.Mode == "" {
		return nil, fmt.Errorf("profile file %s: household mode is required", path)
	}
	switch pf.Household.Mode {
	case household.ModeSolo, household.ModeFamily, household.ModeDink, household.ModeEmptyNest, household.ModeLarge:
	default:
		return nil, fmt.Errorf("profile file %s: unknown household mode %q", path, pf.Household.Mode)
	}
	if pf.Household.Headcount <= 0 {
		return nil, fmt.Errorf("profile file %s: headcount must be positive", path)
	}

	return &pf, nil
}
