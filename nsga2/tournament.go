// Binary tournament selection, adapted directly from the teacher's
// two-random-index pattern (_examples/cbarrick-evo/sel/tournament.go's
// BinaryTournament), generalised from scalar Fitness() comparison to
// the rank-then-crowding-then-coin-flip order spec.md §4.5 specifies.
package nsga2

import "math/rand"

// BinaryTournament picks two distinct individuals from pop uniformly
// at random and returns the winner: lower Rank wins; ties broken by
// larger CrowdingDistance; remaining ties broken by a coin flip
// (spec.md §4.5).
func BinaryTournament(rng *rand.Rand, pop []*Individual) *Individual {
	size := len(pop)
	var x, y int
	if size > 2 {
		x = rng.Intn(size)
		y = x
		for y == x {
			y = rng.Intn(size)
		}
	} else {
		x, y = 0, 1%size
	}
	return winner(rng, pop[x], pop[y])
}

func winner(rng *rand.Rand, a, b *Individual) *Individual {
	switch {
	case a.Rank < b.Rank:
		return a
	case b.Rank < a.Rank:
		return b
	case a.CrowdingDistance > b.CrowdingDistance:
		return a
	case b.CrowdingDistance > a.CrowdingDistance:
		return b
	case rng.Float64() < 0.5:
		return a
	default:
		return b
	}
}
