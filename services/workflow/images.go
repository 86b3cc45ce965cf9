package workflow

// MergeImageEdits removes the entries of current at deleteIndices (by position, since
// URLs may repeat) and appends uploaded in upload order. Indices outside current are ignored.
func MergeImageEdits(current, uploaded []string, deleteIndices []int) []string {
	drop := make(map[int]struct{}, len(deleteIndices))
	for _, i := range deleteIndices {
		drop[i] = struct{}{}
	}

	merged := make([]string, 0, len(current)+len(uploaded))
	for i, url := range current {
		if _, ok := drop[i]; ok {
			continue
		}
		merged = append(merged, url)
	}
	return append(merged, uploaded...)
}

// RemovedImages returns the entries of current selected by deleteIndices, in position order.
func RemovedImages(current []string, deleteIndices []int) []string {
	drop := make(map[int]struct{}, len(deleteIndices))
	for _, i := range deleteIndices {
		drop[i] = struct{}{}
	}
	var removed []string
	for i, url := range current {
		if _, ok := drop[i]; ok {
			removed = append(removed, url)
		}
	}
	return removed
}
