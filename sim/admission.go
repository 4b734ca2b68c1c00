package sim

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// AdmissionProbability maps a member's study arm and adherence flag to a
// hospitalization probability for the observation window. Both arms share
// the same mapping: adherent members carry the low probability, non-adherent
// members the high one. The group-level admission gap therefore emerges from
// the groups' different adherence mixes instead of being hardcoded per group.
func AdmissionProbability(cfg *Config, group Group, adherent bool) float64 {
	_ = group // reserved for arm-specific risk adjustment
	if adherent {
		return cfg.AdherentAdmissionProb
	}
	return cfg.NonAdherentAdmissionProb
}

// SimulateAdmissions draws one AdmissionRecord per member, in member order,
// from the shared admission sub-stream. adherence must be the record set
// produced for the same members, in the same order.
func SimulateAdmissions(members []Member, adherence []AdherenceRecord, cfg *Config, rng *rand.Rand) ([]AdmissionRecord, error) {
	if len(adherence) != len(members) {
		return nil, dataIntegrityErrorf("adherence records (%d) do not cover cohort (%d)", len(adherence), len(members))
	}

	trial := distuv.Bernoulli{Src: rng}

	records := make([]AdmissionRecord, len(members))
	for i, m := range members {
		if adherence[i].MemberID != m.ID {
			return nil, dataIntegrityErrorf("adherence record %d belongs to %s, expected %s", i, adherence[i].MemberID, m.ID)
		}

		p := AdmissionProbability(cfg, m.Group, adherence[i].IsAdherent)
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, dataIntegrityErrorf("member %s: admission probability %v outside [0,1]", m.ID, p)
		}
		trial.P = p

		rec := AdmissionRecord{MemberID: m.ID, AdmissionDay: -1}
		if trial.Rand() == 1 {
			rec.Admitted = true
			rec.AdmissionCount = 1
			rec.AdmissionDay = rng.IntN(cfg.ObservationDays)
		}
		records[i] = rec
	}
	return records, nil
}
