package domain

import "sort"

// RegionCount is one line of the admin tally.
type RegionCount struct {
	Region string
	Count  int
}

// CountByRegion tallies users per stored region. Users without a region fall
// into the UnselectedLabel bucket. The result is ordered by descending count;
// ties keep the first-occurrence order of the input.
func CountByRegion(users []User) []RegionCount {
	counts := make(map[string]int)
	var order []string
	for _, u := range users {
		r := u.Region
		if r == "" {
			r = UnselectedLabel
		}
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	res := make([]RegionCount, 0, len(order))
	for _, r := range order {
		res = append(res, RegionCount{Region: r, Count: counts[r]})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Count > res[j].Count })
	return res
}
