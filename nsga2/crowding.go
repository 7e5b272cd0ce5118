package nsga2

import (
	"math"
	"sort"
)

// AssignCrowdingDistance computes each individual's crowding distance
// within its front (spec.md §4.5): per objective, sort by that
// objective, assign +-Inf to the endpoints, and for interior members
// add (obj[i+1]-obj[i-1])/(objMax-objMin) to their running total.
// front is sorted in place during the per-objective passes; the
// individuals' relative order at return is unspecified.
func AssignCrowdingDistance(front []*Individual) {
	n := len(front)
	if n == 0 {
		return
	}
	for _, ind := range front {
		ind.CrowdingDistance = 0
	}
	if n <= 2 {
		for _, ind := range front {
			ind.CrowdingDistance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Eval.Objectives)
	for m := 0; m < numObjectives; m++ {
		sort.Slice(front, func(i, j int) bool {
			return front[i].Objective(m) < front[j].Objective(m)
		})

		objMin := front[0].Objective(m)
		objMax := front[n-1].Objective(m)
		front[0].CrowdingDistance = math.Inf(1)
		front[n-1].CrowdingDistance = math.Inf(1)

		span := objMax - objMin
		if span <= 0 {
			continue // every individual ties on this objective; contributes 0
		}
		for i := 1; i < n-1; i++ {
			if math.IsInf(front[i].CrowdingDistance, 1) {
				continue
			}
			front[i].CrowdingDistance += (front[i+1].Objective(m) - front[i-1].Objective(m)) / span
		}
	}
}
