package sim

import "math"

// Default calibration constants. The cohort shape and cost figure come from
// the Medicare Advantage program evaluation this simulator reproduces; the
// admission probabilities solve the target-rate equations so the intervention
// group converges to ~251 admissions/1000 and the control group to ~333/1000.
const (
	DefaultTotalMembers      = 17000
	DefaultInterventionRatio = 1.0 / 2.05
	DefaultObservationDays   = 365

	// AdherenceThreshold is the standard PDC cutoff for calling a member
	// adherent.
	DefaultAdherenceThreshold = 0.80

	DefaultInterventionAdherence = 0.75
	DefaultControlAdherence      = DefaultInterventionAdherence / 1.35

	DefaultAdherentAdmissionProb    = 0.145
	DefaultNonAdherentAdmissionProb = 0.567

	// DefaultUnitCost is the average cost of one hospital admission, in
	// dollars.
	DefaultUnitCost = 14700.0
)

// Config holds every parameter of a simulation run. A Config plus a seed
// fully determines the output document.
type Config struct {
	// TotalMembers is the cohort size N across both groups.
	TotalMembers int

	// InterventionRatio is the fraction of the cohort assigned to the
	// intervention group. Must lie strictly inside (0,1).
	InterventionRatio float64

	// ObservationDays is the length of the PDC observation window.
	ObservationDays int

	// AdherenceThreshold is the PDC cutoff for the is_adherent flag.
	AdherenceThreshold float64

	// InterventionAdherence and ControlAdherence are the target adherence
	// rates the PDC distributions are calibrated against.
	InterventionAdherence float64
	ControlAdherence      float64

	// AdherentAdmissionProb and NonAdherentAdmissionProb map a member's
	// adherence flag to a hospitalization probability over the window.
	// The group-level admission gap emerges from the groups' adherence
	// mix, not from per-group constants.
	AdherentAdmissionProb    float64
	NonAdherentAdmissionProb float64

	// UnitCost is the dollar cost of one admission.
	UnitCost float64
}

// DefaultConfig returns the calibrated baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		TotalMembers:             DefaultTotalMembers,
		InterventionRatio:        DefaultInterventionRatio,
		ObservationDays:          DefaultObservationDays,
		AdherenceThreshold:       DefaultAdherenceThreshold,
		InterventionAdherence:    DefaultInterventionAdherence,
		ControlAdherence:         DefaultControlAdherence,
		AdherentAdmissionProb:    DefaultAdherentAdmissionProb,
		NonAdherentAdmissionProb: DefaultNonAdherentAdmissionProb,
		UnitCost:                 DefaultUnitCost,
	}
}

// Validate checks that all fields describe a runnable simulation.
func (c *Config) Validate() error {
	if c.TotalMembers <= 0 {
		return configErrorf("total_members must be positive, got %d", c.TotalMembers)
	}
	if c.InterventionRatio <= 0 || c.InterventionRatio >= 1 {
		return configErrorf("intervention_ratio must lie in (0,1), got %f", c.InterventionRatio)
	}
	if c.ObservationDays <= 0 {
		return configErrorf("observation_days must be positive, got %d", c.ObservationDays)
	}
	if c.AdherenceThreshold <= 0 || c.AdherenceThreshold >= 1 {
		return configErrorf("adherence_threshold must lie in (0,1), got %f", c.AdherenceThreshold)
	}
	if err := validateRate("intervention_adherence", c.InterventionAdherence); err != nil {
		return err
	}
	if err := validateRate("control_adherence", c.ControlAdherence); err != nil {
		return err
	}
	if err := validateProb("adherent_admission_prob", c.AdherentAdmissionProb); err != nil {
		return err
	}
	if err := validateProb("non_adherent_admission_prob", c.NonAdherentAdmissionProb); err != nil {
		return err
	}
	if math.IsNaN(c.UnitCost) || c.UnitCost < 0 {
		return configErrorf("unit_cost must be non-negative, got %f", c.UnitCost)
	}
	return nil
}

// validateRate checks a calibration target, which must be a proper fraction:
// 0 or 1 would degenerate the Beta calibration.
func validateRate(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v >= 1 {
		return configErrorf("%s must lie in (0,1), got %f", name, v)
	}
	return nil
}

// validateProb checks a Bernoulli parameter, where the closed endpoints are
// legal (a probability of exactly 0 or 1 is degenerate but well-defined).
func validateProb(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return configErrorf("%s must lie in [0,1], got %f", name, v)
	}
	return nil
}
