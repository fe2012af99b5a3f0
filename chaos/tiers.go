package chaos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml"
)

// ErrTierLevel is returned when a tier level outside [1,4] is requested.
var ErrTierLevel = errors.New("chaos: tier level must be in [1,4]")

// Tier is one chaos intensity preset. Tiers differ only in cascade tuning
// and in whether the presentation layer should additionally trigger
// automatic slice rotations; the cascade algorithm itself is identical
// across tiers.
type Tier struct {
	Level       int     `toml:"level"`
	BaseChance  float64 `toml:"base_chance"`
	DecayFactor float64 `toml:"decay_factor"`
	MinStrength float64 `toml:"min_strength"`
	MaxSteps    int     `toml:"max_steps"`
	AutoRotate  bool    `toml:"auto_rotate"`
}

// Options converts the tier to the functional options New accepts.
func (t Tier) Options() []Option {
	return []Option{
		WithBaseChance(t.BaseChance),
		WithDecayFactor(t.DecayFactor),
		WithMinStrength(t.MinStrength),
		WithMaxSteps(t.MaxSteps),
	}
}

// tierFile is the on-disk shape of a tier configuration.
type tierFile struct {
	Tiers []Tier `toml:"tiers"`
}

// DefaultTiers returns the four built-in intensity presets. Levels 1–2
// are gentle, slow-decaying ripples; levels 3–4 spread aggressively and
// ask the presentation layer for automatic rotations on top.
func DefaultTiers() []Tier {
	return []Tier{
		{Level: 1, BaseChance: 0.25, DecayFactor: 0.60, MinStrength: 0.05, MaxSteps: 12, AutoRotate: false},
		{Level: 2, BaseChance: 0.35, DecayFactor: 0.70, MinStrength: 0.05, MaxSteps: 24, AutoRotate: false},
		{Level: 3, BaseChance: 0.50, DecayFactor: 0.80, MinStrength: 0.03, MaxSteps: 48, AutoRotate: true},
		{Level: 4, BaseChance: 0.65, DecayFactor: 0.90, MinStrength: 0.02, MaxSteps: 96, AutoRotate: true},
	}
}

// TierByLevel returns the built-in preset for a level in [1,4].
func TierByLevel(level int) (Tier, error) {
	tiers := DefaultTiers()
	if level < 1 || level > len(tiers) {
		return Tier{}, fmt.Errorf("%w: got %d", ErrTierLevel, level)
	}
	return tiers[level-1], nil
}

// LoadTiers reads tier presets from the TOML file at the provided path.
// If the file does not exist yet, it is created with the built-in
// defaults, which are then returned.
func LoadTiers(path string) ([]Tier, error) {
	if path == "" {
		return nil, errors.New("chaos: tier config path must not be empty")
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		tiers := DefaultTiers()
		if err = SaveTiers(path, tiers); err != nil {
			return nil, err
		}
		return tiers, nil
	}
	if err != nil {
		return nil, fmt.Errorf("chaos: read tier config: %w", err)
	}
	var f tierFile
	if err = toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chaos: decode tier config: %w", err)
	}
	return f.Tiers, nil
}

// SaveTiers writes tier presets to the TOML file at the provided path.
func SaveTiers(path string, tiers []Tier) error {
	data, err := toml.Marshal(tierFile{Tiers: tiers})
	if err != nil {
		return fmt.Errorf("chaos: encode tier config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("chaos: write tier config: %w", err)
	}
	return nil
}
