package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/adherence-sim/adherence-sim/sim"
)

// ScenarioConfig is the YAML shape of a scenario preset file:
//
//	scenarios:
//	  baseline:
//	    total_members: 17000
//	    intervention_ratio: 0.4878
//	    ...
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is one named preset. Zero-valued fields fall back to the
// calibrated defaults, so a preset only needs to name what it changes.
type Scenario struct {
	TotalMembers             int     `yaml:"total_members"`
	InterventionRatio        float64 `yaml:"intervention_ratio"`
	ObservationDays          int     `yaml:"observation_days"`
	AdherenceThreshold       float64 `yaml:"adherence_threshold"`
	InterventionAdherence    float64 `yaml:"intervention_adherence"`
	ControlAdherence         float64 `yaml:"control_adherence"`
	AdherentAdmissionProb    float64 `yaml:"adherent_admission_prob"`
	NonAdherentAdmissionProb float64 `yaml:"non_adherent_admission_prob"`
	UnitCost                 float64 `yaml:"unit_cost"`
}

// LoadScenarioConfig reads and strictly decodes a scenario preset file.
// Unknown fields are rejected so a typo never silently falls back to a
// default.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &cfg, nil
}

// GetScenarioConfig loads the named preset and converts it into a validated
// sim.Config, filling unset fields with the calibrated defaults.
func GetScenarioConfig(path string, name string) (*sim.Config, error) {
	cfg, err := LoadScenarioConfig(path)
	if err != nil {
		return nil, err
	}
	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", name, path)
	}

	out := sim.DefaultConfig()
	if scenario.TotalMembers != 0 {
		out.TotalMembers = scenario.TotalMembers
	}
	if scenario.InterventionRatio != 0 {
		out.InterventionRatio = scenario.InterventionRatio
	}
	if scenario.ObservationDays != 0 {
		out.ObservationDays = scenario.ObservationDays
	}
	if scenario.AdherenceThreshold != 0 {
		out.AdherenceThreshold = scenario.AdherenceThreshold
	}
	if scenario.InterventionAdherence != 0 {
		out.InterventionAdherence = scenario.InterventionAdherence
	}
	if scenario.ControlAdherence != 0 {
		out.ControlAdherence = scenario.ControlAdherence
	}
	if scenario.AdherentAdmissionProb != 0 {
		out.AdherentAdmissionProb = scenario.AdherentAdmissionProb
	}
	if scenario.NonAdherentAdmissionProb != 0 {
		out.NonAdherentAdmissionProb = scenario.NonAdherentAdmissionProb
	}
	if scenario.UnitCost != 0 {
		out.UnitCost = scenario.UnitCost
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return out, nil
}
