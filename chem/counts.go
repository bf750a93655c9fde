package chem

// equalCounts reports whether two count maps hold exactly the same
// keys and values. Key order is irrelevant.
func equalCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// mergeCounts adds every entry of src into dst, treating absent keys as zero.
func mergeCounts(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}

// checkConserved compares element counts first, then site counts.
// Mass divergence is reported before site divergence when both differ.
func checkConserved(leftElements, rightElements, leftSites, rightSites map[string]int, left, right string) error {
	if !equalCounts(leftElements, rightElements) {
		return &NotConservedError{Kind: ConservationMass, Left: left, Right: right}
	}
	if !equalCounts(leftSites, rightSites) {
		return &NotConservedError{Kind: ConservationSite, Left: left, Right: right}
	}
	return nil
}
