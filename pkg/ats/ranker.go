package ats

import "sort"

// rank sorts partials descending by total match count, breaking ties by
// corpus insertion order, then truncates to topN. topN larger than
// len(partials) is not an error; the result is simply shorter.
func rank(partials []ApplicantResult, topN int) []ApplicantResult {
	sort.SliceStable(partials, func(i, j int) bool {
		if partials[i].Total != partials[j].Total {
			return partials[i].Total > partials[j].Total
		}
		return partials[i].corpusIndex < partials[j].corpusIndex
	})

	if topN < len(partials) {
		partials = partials[:topN]
	}
	return partials
}
