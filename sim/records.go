package sim

import "github.com/google/uuid"

// Group labels a member's study arm.
type Group string

const (
	GroupIntervention Group = "intervention"
	GroupControl      Group = "control"
)

// Member is one synthetic plan member. Created once by the cohort stage and
// immutable thereafter; group assignment is independent of all later
// simulated behavior.
type Member struct {
	ID    uuid.UUID
	Group Group
	Age   int
}

// AdherenceRecord holds one member's day-level medication coverage, reduced
// to a PDC score. Exactly one record exists per member.
type AdherenceRecord struct {
	MemberID    uuid.UUID
	DaysCovered int
	DaysTotal   int

	// PDC is DaysCovered/DaysTotal before rounding, always in [0,1].
	PDC float64

	// IsAdherent is PDC >= the configured adherence threshold.
	IsAdherent bool
}

// AdmissionRecord holds one member's hospitalization outcome for the
// observation window. Exactly one record exists per member.
type AdmissionRecord struct {
	MemberID       uuid.UUID
	Admitted       bool
	AdmissionCount int

	// AdmissionDay is the day offset of the admission within the window,
	// or -1 when the member was not admitted.
	AdmissionDay int
}
