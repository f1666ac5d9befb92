package terrain

// seaComponents labels 8-connected sea components with a depth-first search
// and returns the cells of each component.
func seaComponents(g *Grid) [][]Point {
	visited := make([]bool, len(g.cells))
	var components [][]Point
	var stack []Point
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := g.Index(row, col)
			if g.cells[idx] != TileSea || visited[idx] {
				continue
			}
			visited[idx] = true
			stack = append(stack[:0], Point{Row: row, Col: col})
			var cells []Point
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cells = append(cells, cur)
				for _, d := range mooreOffsets {
					r, c := cur.Row+d.Row, cur.Col+d.Col
					if !g.InBounds(r, c) {
						continue
					}
					nIdx := g.Index(r, c)
					if g.cells[nIdx] != TileSea || visited[nIdx] {
						continue
					}
					visited[nIdx] = true
					stack = append(stack, Point{Row: r, Col: c})
				}
			}
			components = append(components, cells)
		}
	}
	return components
}

// reclassifyWaterBodies turns every sea component smaller than threshold into
// lake. It returns the number of components converted.
func reclassifyWaterBodies(g *Grid, threshold int) int {
	converted := 0
	for _, comp := range seaComponents(g) {
		if len(comp) >= threshold {
			continue
		}
		for _, p := range comp {
			g.Set(p.Row, p.Col, TileLake)
		}
		converted++
	}
	return converted
}

// lakeThreshold returns the minimum size a sea component needs to stay sea.
func lakeThreshold(cols int, p Params) int {
	return cols / p.LakeThresholdDivisor
}
