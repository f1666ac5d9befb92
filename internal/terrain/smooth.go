package terrain

import "grid-game/pkg/core"

// familyCounts holds Moore neighbour counts per smoothing family.
type familyCounts [len(SmoothingFamilies)]int

func (g *Grid) familyCountsAt(row, col int) (counts familyCounts, total int) {
	for _, d := range mooreOffsets {
		r, c := row+d.Row, col+d.Col
		if !g.InBounds(r, c) {
			continue
		}
		slot := smoothingSlot(g.At(r, c))
		if slot < 0 {
			continue
		}
		counts[slot]++
		total++
	}
	return counts, total
}

// majority returns the family with the largest count. Ties resolve to the
// family listed first in SmoothingFamilies.
func (fc familyCounts) majority() Tile {
	best := 0
	for i := 1; i < len(fc); i++ {
		if fc[i] > fc[best] {
			best = i
		}
	}
	return SmoothingFamilies[best]
}

// sample picks a family by cumulative banding of the proportions with a
// uniform draw u in [0, 1).
func (fc familyCounts) sample(total int, u float64) Tile {
	acc := 0.0
	for i, n := range fc {
		if n == 0 {
			continue
		}
		acc += float64(n) / float64(total)
		if u < acc {
			return SmoothingFamilies[i]
		}
	}
	for i := len(fc) - 1; i >= 0; i-- {
		if fc[i] > 0 {
			return SmoothingFamilies[i]
		}
	}
	return SmoothingFamilies[0]
}

// relax runs passes of a neighbourhood rule. Every pass reads the grid as it
// stood at the start of the pass and commits all updates at the end.
func relax(g *Grid, passes int, rule func(counts familyCounts, total int) Tile) {
	if passes <= 0 || len(g.cells) == 0 {
		return
	}
	next := make([]Tile, len(g.cells))
	for pass := 0; pass < passes; pass++ {
		copy(next, g.cells)
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.cols; col++ {
				idx := g.Index(row, col)
				if g.cells[idx] == TileUnassigned {
					continue
				}
				counts, total := g.familyCountsAt(row, col)
				if total == 0 {
					continue
				}
				next[idx] = rule(counts, total)
			}
		}
		copy(g.cells, next)
	}
}

// smooth applies majority-vote relaxation.
func smooth(g *Grid, passes int) {
	relax(g, passes, func(counts familyCounts, _ int) Tile {
		return counts.majority()
	})
}

// blend applies weighted random resampling: each cell takes a family drawn
// in proportion to its neighbourhood.
func blend(g *Grid, passes int, rng *core.RNG) {
	relax(g, passes, func(counts familyCounts, total int) Tile {
		return counts.sample(total, rng.Float64())
	})
}
