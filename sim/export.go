package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Results is the fixed-schema document the dashboard consumes. The dashboard
// only reads it; nothing downstream computes.
type Results struct {
	Groups GroupsResult `json:"groups"`
	Impact ImpactResult `json:"impact"`
}

// GroupsResult holds exactly the two study arms.
type GroupsResult struct {
	Intervention GroupResult `json:"intervention"`
	Control      GroupResult `json:"control"`
}

// GroupResult is one arm's slice of the output document.
type GroupResult struct {
	MemberCount       int     `json:"member_count"`
	AdherenceRate     float64 `json:"adherence_rate"`
	AdmissionsPer1000 float64 `json:"admissions_per_1000"`
}

// ImpactResult is the cost-impact slice of the output document.
type ImpactResult struct {
	AvoidedAdmissions float64 `json:"avoided_admissions"`
	UnitCost          float64 `json:"unit_cost"`
	CostSavings       float64 `json:"cost_savings"`
}

// ExportResults assembles the output document from the group aggregates and
// impact summary. Pure transformation: it fails only when an internal
// invariant is broken, never on valid aggregates.
func ExportResults(groups map[Group]GroupAggregate, impact ImpactSummary) (*Results, error) {
	intervention, ok := groups[GroupIntervention]
	if !ok {
		return nil, serializationErrorf("intervention aggregate missing")
	}
	control, ok := groups[GroupControl]
	if !ok {
		return nil, serializationErrorf("control aggregate missing")
	}

	results := &Results{
		Groups: GroupsResult{
			Intervention: exportGroup(intervention),
			Control:      exportGroup(control),
		},
		Impact: ImpactResult{
			AvoidedAdmissions: impact.AvoidedAdmissions,
			UnitCost:          impact.UnitCost,
			CostSavings:       impact.CostSavings,
		},
	}
	if err := results.validate(); err != nil {
		return nil, err
	}
	return results, nil
}

func exportGroup(agg GroupAggregate) GroupResult {
	return GroupResult{
		MemberCount:       agg.MemberCount,
		AdherenceRate:     agg.AdherenceRate,
		AdmissionsPer1000: agg.AdmissionsPer1000,
	}
}

// validate enforces the document's range invariants before anything is
// written.
func (r *Results) validate() error {
	for _, g := range []struct {
		name string
		res  GroupResult
	}{
		{"intervention", r.Groups.Intervention},
		{"control", r.Groups.Control},
	} {
		if g.res.MemberCount <= 0 {
			return serializationErrorf("group %s: member_count must be positive, got %d", g.name, g.res.MemberCount)
		}
		if g.res.AdherenceRate < 0 || g.res.AdherenceRate > 1 {
			return serializationErrorf("group %s: adherence_rate %f outside [0,1]", g.name, g.res.AdherenceRate)
		}
		if g.res.AdmissionsPer1000 < 0 {
			return serializationErrorf("group %s: admissions_per_1000 %f is negative", g.name, g.res.AdmissionsPer1000)
		}
	}
	if r.Impact.AvoidedAdmissions < 0 {
		return serializationErrorf("avoided_admissions %f is negative", r.Impact.AvoidedAdmissions)
	}
	if r.Impact.CostSavings < 0 {
		return serializationErrorf("cost_savings %f is negative", r.Impact.CostSavings)
	}
	return nil
}

// Encode renders the document as indented JSON with a trailing newline.
// Output is byte-identical for identical Results values.
func (r *Results) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, serializationErrorf("encoding results: %v", err)
	}
	return append(data, '\n'), nil
}

// WriteFile encodes the document and writes it to path.
func (r *Results) WriteFile(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}

// Print displays the headline findings at the end of a run.
func (r *Results) Print() {
	fmt.Println("=== Adherence Impact Findings ===")
	if r.Groups.Control.AdherenceRate > 0 {
		uplift := (r.Groups.Intervention.AdherenceRate/r.Groups.Control.AdherenceRate - 1) * 100
		fmt.Printf("Adherence uplift          : %+.1f%% (%.1f%% vs %.1f%%)\n",
			uplift, r.Groups.Intervention.AdherenceRate*100, r.Groups.Control.AdherenceRate*100)
	}
	if r.Groups.Control.AdmissionsPer1000 > 0 {
		reduction := (1 - r.Groups.Intervention.AdmissionsPer1000/r.Groups.Control.AdmissionsPer1000) * 100
		fmt.Printf("Hospitalization reduction : %.1f%% (%.1f vs %.1f per 1,000)\n",
			reduction, r.Groups.Intervention.AdmissionsPer1000, r.Groups.Control.AdmissionsPer1000)
	}
	fmt.Printf("Avoided admissions        : %.1f\n", r.Impact.AvoidedAdmissions)
	fmt.Printf("Estimated cost savings    : $%.2f\n", r.Impact.CostSavings)
}
