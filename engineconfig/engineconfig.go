// Package engineconfig holds the run-wide tunables for the rip-up loop
// and placer generator: PRNG seed, scoring weights, iteration cap, and
// the placer's generate ratio. Grounded on config.DeviceBuilder's
// fluent builder and core.LoadProgramFile's YAML loading.
package engineconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the full set of knobs a run needs beyond the netlist
// and cell library themselves (spec.md §4.8, §4.2).
type EngineConfig struct {
	Seed          int64
	Alpha         float64
	Beta          float64
	Gamma         float64
	ViolationCost int
	MaxIterations int
	GenerateRatio int
}

// EngineConfigBuilder builds an EngineConfig with the teacher's
// value-receiver fluent style: every With* returns a modified copy, so
// no call aliases another builder's state.
type EngineConfigBuilder struct {
	cfg EngineConfig
}

// NewEngineConfigBuilder returns a builder seeded with spec.md's
// defaults: α=3, β=0.1, γ=1, violation_cost=1000, generate ratio=5, and
// a 1000-iteration cap (spec.md §9 Open Question 4).
func NewEngineConfigBuilder() EngineConfigBuilder {
	return EngineConfigBuilder{cfg: EngineConfig{
		Alpha:         3,
		Beta:          0.1,
		Gamma:         1,
		ViolationCost: 1000,
		MaxIterations: 1000,
		GenerateRatio: 5,
	}}
}

func (b EngineConfigBuilder) WithSeed(seed int64) EngineConfigBuilder {
	b.cfg.Seed = seed
	return b
}

func (b EngineConfigBuilder) WithAlpha(alpha float64) EngineConfigBuilder {
	b.cfg.Alpha = alpha
	return b
}

func (b EngineConfigBuilder) WithBeta(beta float64) EngineConfigBuilder {
	b.cfg.Beta = beta
	return b
}

func (b EngineConfigBuilder) WithGamma(gamma float64) EngineConfigBuilder {
	b.cfg.Gamma = gamma
	return b
}

func (b EngineConfigBuilder) WithViolationCost(cost int) EngineConfigBuilder {
	b.cfg.ViolationCost = cost
	return b
}

func (b EngineConfigBuilder) WithMaxIterations(n int) EngineConfigBuilder {
	b.cfg.MaxIterations = n
	return b
}

func (b EngineConfigBuilder) WithGenerateRatio(ratio int) EngineConfigBuilder {
	b.cfg.GenerateRatio = ratio
	return b
}

func (b EngineConfigBuilder) Build() EngineConfig {
	return b.cfg
}

// yamlOverrides mirrors EngineConfig's fields that a caller may override
// from a config file; zero-valued fields are left at the builder's
// defaults.
type yamlOverrides struct {
	Seed          *int64   `yaml:"seed"`
	Alpha         *float64 `yaml:"alpha"`
	Beta          *float64 `yaml:"beta"`
	Gamma         *float64 `yaml:"gamma"`
	ViolationCost *int     `yaml:"violation_cost"`
	MaxIterations *int     `yaml:"max_iterations"`
	GenerateRatio *int     `yaml:"generate_ratio"`
}

// LoadEngineConfigYAML reads overrides from r and applies them on top of
// NewEngineConfigBuilder's defaults. Fields omitted from the YAML
// document keep their default value.
func LoadEngineConfigYAML(r io.Reader) (EngineConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("engineconfig: read: %w", err)
	}

	var overrides yamlOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return EngineConfig{}, fmt.Errorf("engineconfig: unmarshal: %w", err)
	}

	b := NewEngineConfigBuilder()
	if overrides.Seed != nil {
		b = b.WithSeed(*overrides.Seed)
	}
	if overrides.Alpha != nil {
		b = b.WithAlpha(*overrides.Alpha)
	}
	if overrides.Beta != nil {
		b = b.WithBeta(*overrides.Beta)
	}
	if overrides.Gamma != nil {
		b = b.WithGamma(*overrides.Gamma)
	}
	if overrides.ViolationCost != nil {
		b = b.WithViolationCost(*overrides.ViolationCost)
	}
	if overrides.MaxIterations != nil {
		b = b.WithMaxIterations(*overrides.MaxIterations)
	}
	if overrides.GenerateRatio != nil {
		b = b.WithGenerateRatio(*overrides.GenerateRatio)
	}

	return b.Build(), nil
}
