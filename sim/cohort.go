package sim

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Medicare Advantage age band for synthetic members.
const (
	memberAgeMin = 65
	memberAgeMax = 95
)

// GenerateCohort synthesizes the member population: N members with unique
// identifiers, the first int(N*ratio) (truncated) assigned to the
// intervention group and the rest to control. Pure function of (cfg, rng): the same seed always
// produces the same identifiers, ages, and split.
//
// Group assignment happens before any behavior is simulated, so there is no
// selection bias; the label only decides which distribution parameters the
// later stages apply.
func GenerateCohort(cfg *Config, rng *rand.Rand) ([]Member, error) {
	if cfg.TotalMembers <= 0 {
		return nil, configErrorf("cohort size must be positive, got %d", cfg.TotalMembers)
	}
	if cfg.InterventionRatio <= 0 || cfg.InterventionRatio >= 1 {
		return nil, configErrorf("intervention ratio must lie in (0,1), got %f", cfg.InterventionRatio)
	}

	numIntervention := int(float64(cfg.TotalMembers) * cfg.InterventionRatio)
	idReader := randReader{rng: rng}

	members := make([]Member, cfg.TotalMembers)
	for i := range members {
		group := GroupControl
		if i < numIntervention {
			group = GroupIntervention
		}

		// Identifiers come from the cohort sub-stream so a seed pins
		// them down along with everything else.
		// randReader never fails, so neither does this.
		id, err := uuid.NewRandomFromReader(idReader)
		if err != nil {
			return nil, dataIntegrityErrorf("generating member id: %v", err)
		}

		members[i] = Member{
			ID:    id,
			Group: group,
			Age:   memberAgeMin + rng.IntN(memberAgeMax-memberAgeMin+1),
		}
	}
	return members, nil
}
