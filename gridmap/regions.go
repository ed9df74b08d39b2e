package gridmap

// Regions labels every open cell with the index of its 4-connected region.
// labels is row-major with -1 for walls; regions are numbered 0..count-1 in
// the row-major order of their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and the queue.
func (m *GridMap) Regions() (labels []int, count int) {
	labels = make([]int, m.Cells())
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, m.Open())

	for i0, wall := range m.walls {
		if wall || labels[i0] >= 0 {
			continue
		}
		// BFS to flood the region
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			for _, s := range m.Neighbors4(m.Coordinate(queue[qi])) {
				vi := m.Index(s.Pos)
				if m.walls[vi] || labels[vi] >= 0 {
					continue
				}
				labels[vi] = count
				queue = append(queue, vi)
			}
		}
		count++
	}
	return labels, count
}

// Connected reports whether a and b are open cells of the same region.
func (m *GridMap) Connected(a, b Position) bool {
	if !m.IsOpen(a) || !m.IsOpen(b) {
		return false
	}
	labels, _ := m.Regions()
	return labels[m.Index(a)] == labels[m.Index(b)]
}
