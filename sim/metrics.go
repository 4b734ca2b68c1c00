package sim

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// GroupAggregate holds the cohort-level KPIs for one study arm.
type GroupAggregate struct {
	Group             Group
	MemberCount       int
	TotalAdmissions   int
	AdherenceRate     float64 // mean of is_adherent over the arm
	AdmissionsPer1000 float64 // total admissions / member_count * 1000
}

// ImpactSummary holds the derived cost impact of the intervention.
type ImpactSummary struct {
	AvoidedAdmissions float64
	UnitCost          float64
	CostSavings       float64
}

// Aggregator reduces per-member records to per-group KPIs. The pipeline ships
// the in-memory implementation below; any relational backend slotted in here
// must produce identical results, so the interface is a seam, not a
// requirement.
type Aggregator interface {
	Aggregate(members []Member, adherence []AdherenceRecord, admissions []AdmissionRecord) (map[Group]GroupAggregate, error)
}

// MemoryAggregator is the pure in-memory reduction. No randomness: identical
// record sets produce identical aggregates, in any input order.
type MemoryAggregator struct{}

func (MemoryAggregator) Aggregate(members []Member, adherence []AdherenceRecord, admissions []AdmissionRecord) (map[Group]GroupAggregate, error) {
	if len(adherence) != len(members) {
		return nil, aggregationErrorf("adherence records (%d) do not cover cohort (%d)", len(adherence), len(members))
	}
	if len(admissions) != len(members) {
		return nil, aggregationErrorf("admission records (%d) do not cover cohort (%d)", len(admissions), len(members))
	}

	// Index by member so record ordering never matters.
	adhByID := make(map[uuid.UUID]AdherenceRecord, len(adherence))
	for _, r := range adherence {
		adhByID[r.MemberID] = r
	}
	admByID := make(map[uuid.UUID]AdmissionRecord, len(admissions))
	for _, r := range admissions {
		admByID[r.MemberID] = r
	}

	type accumulator struct {
		flags      []float64
		admissions int
	}
	acc := map[Group]*accumulator{
		GroupIntervention: {},
		GroupControl:      {},
	}

	for _, m := range members {
		a, ok := acc[m.Group]
		if !ok {
			return nil, aggregationErrorf("member %s: unknown group %q", m.ID, m.Group)
		}
		adh, ok := adhByID[m.ID]
		if !ok {
			return nil, aggregationErrorf("member %s has no adherence record", m.ID)
		}
		adm, ok := admByID[m.ID]
		if !ok {
			return nil, aggregationErrorf("member %s has no admission record", m.ID)
		}

		flag := 0.0
		if adh.IsAdherent {
			flag = 1.0
		}
		a.flags = append(a.flags, flag)
		a.admissions += adm.AdmissionCount
	}

	groups := make(map[Group]GroupAggregate, len(acc))
	for g, a := range acc {
		if len(a.flags) == 0 {
			return nil, aggregationErrorf("group %s has no members", g)
		}
		n := len(a.flags)
		groups[g] = GroupAggregate{
			Group:             g,
			MemberCount:       n,
			TotalAdmissions:   a.admissions,
			AdherenceRate:     stat.Mean(a.flags, nil),
			AdmissionsPer1000: float64(a.admissions) / float64(n) * 1000,
		}
	}
	return groups, nil
}

// ComputeImpact derives avoided admissions and cost savings from the two
// group aggregates. Avoided admissions is the per-1000 admission gap scaled
// to the intervention arm's size, clamped at zero: a run where the
// intervention arm admits more than control saves nothing, it never "costs
// negative".
func ComputeImpact(groups map[Group]GroupAggregate, unitCost float64) (ImpactSummary, error) {
	intervention, ok := groups[GroupIntervention]
	if !ok {
		return ImpactSummary{}, aggregationErrorf("intervention aggregate missing")
	}
	control, ok := groups[GroupControl]
	if !ok {
		return ImpactSummary{}, aggregationErrorf("control aggregate missing")
	}
	if intervention.MemberCount <= 0 || control.MemberCount <= 0 {
		return ImpactSummary{}, aggregationErrorf("degenerate group: intervention=%d control=%d members",
			intervention.MemberCount, control.MemberCount)
	}

	avoided := (control.AdmissionsPer1000 - intervention.AdmissionsPer1000) / 1000 * float64(intervention.MemberCount)
	if avoided < 0 {
		avoided = 0
	}
	return ImpactSummary{
		AvoidedAdmissions: avoided,
		UnitCost:          unitCost,
		CostSavings:       avoided * unitCost,
	}, nil
}
