package nsga2

// FastNonDominatedSort partitions pop into fronts of mutually
// non-dominated individuals, front 0 being the best (spec.md §4.5
// "fast non-dominated sort, O(MN^2) standard algorithm"), and sets
// each individual's Rank to its front index as a side effect.
func FastNonDominatedSort(pop []*Individual) [][]*Individual {
	n := len(pop)
	dominationCount := make([]int, n)
	dominatedBy := make([][]int, n)

	var fronts [][]int
	front0 := make([]int, 0, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if pop[i].Dominates(pop[j]) {
				dominatedBy[i] = append(dominatedBy[i], j)
			} else if pop[j].Dominates(pop[i]) {
				dominationCount[i]++
			}
		}
		if dominationCount[i] == 0 {
			pop[i].Rank = 0
			front0 = append(front0, i)
		}
	}
	fronts = append(fronts, front0)

	for rank := 0; len(fronts[rank]) > 0; rank++ {
		var next []int
		for _, i := range fronts[rank] {
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					pop[j].Rank = rank + 1
					next = append(next, j)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		fronts = append(fronts, next)
	}

	out := make([][]*Individual, len(fronts))
	for f, idxs := range fronts {
		row := make([]*Individual, len(idxs))
		for k, i := range idxs {
			row[k] = pop[i]
		}
		out[f] = row
	}
	return out
}
