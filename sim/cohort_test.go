package sim

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func cohortRNG(seed int64) *PartitionedRNG {
	return NewPartitionedRNG(NewSimulationKey(seed))
}

func TestGenerateCohort_SizeAndSplit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalMembers = 1000
	cfg.InterventionRatio = 0.4

	members, err := GenerateCohort(cfg, cohortRNG(42).ForSubsystem(SubsystemCohort))
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1000 {
		t.Fatalf("got %d members, want 1000", len(members))
	}

	counts := map[Group]int{}
	for _, m := range members {
		counts[m.Group]++
	}
	if counts[GroupIntervention] != 400 {
		t.Errorf("intervention count = %d, want 400", counts[GroupIntervention])
	}
	if counts[GroupControl] != 600 {
		t.Errorf("control count = %d, want 600", counts[GroupControl])
	}
}

func TestGenerateCohort_UniqueIDsAndAges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalMembers = 5000

	members, err := GenerateCohort(cfg, cohortRNG(7).ForSubsystem(SubsystemCohort))
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		if seen[m.ID] {
			t.Fatalf("duplicate member id %s", m.ID)
		}
		seen[m.ID] = true
		if m.Age < memberAgeMin || m.Age > memberAgeMax {
			t.Fatalf("member age %d outside [%d,%d]", m.Age, memberAgeMin, memberAgeMax)
		}
	}
}

func TestGenerateCohort_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalMembers = 200

	a, err := GenerateCohort(cfg, cohortRNG(11).ForSubsystem(SubsystemCohort))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateCohort(cfg, cohortRNG(11).ForSubsystem(SubsystemCohort))
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("member %d differs across equal-seed runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateCohort_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"non-positive size", func(c *Config) { c.TotalMembers = 0 }},
		{"ratio at zero", func(c *Config) { c.InterventionRatio = 0 }},
		{"ratio at one", func(c *Config) { c.InterventionRatio = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			_, err := GenerateCohort(cfg, cohortRNG(1).ForSubsystem(SubsystemCohort))
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
