package terrain

import "grid-game/pkg/core"

const noRegion = -1

// RegionMap stores a region id per cell, or noRegion. It only lives for the
// partition and typing stages.
type RegionMap struct {
	rows, cols int
	ids        []int
}

func newRegionMap(rows, cols int) *RegionMap {
	ids := make([]int, rows*cols)
	for i := range ids {
		ids[i] = noRegion
	}
	return &RegionMap{rows: rows, cols: cols, ids: ids}
}

// At returns the region id at (row, col).
func (m *RegionMap) At(row, col int) int { return m.ids[row*m.cols+col] }

func (m *RegionMap) set(row, col, id int) { m.ids[row*m.cols+col] = id }

func (m *RegionMap) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Unassigned returns the number of cells with no region.
func (m *RegionMap) Unassigned() int {
	n := 0
	for _, id := range m.ids {
		if id == noRegion {
			n++
		}
	}
	return n
}

// SeedSet holds one seed position per region.
type SeedSet []Point

// placeSeeds scatters k seeds uniformly at random. Duplicate positions are
// allowed.
func placeSeeds(rows, cols, k int, rng *core.RNG) SeedSet {
	seeds := make(SeedSet, k)
	for i := range seeds {
		seeds[i] = Point{Row: rng.IntN(rows), Col: rng.IntN(cols)}
	}
	return seeds
}

// nearest returns the index of the seed closest to (row, col) by Euclidean
// distance. The first seed wins ties.
func (s SeedSet) nearest(row, col int) int {
	best := -1
	bestDist := 0
	for i, p := range s {
		dr, dc := row-p.Row, col-p.Col
		d := dr*dr + dc*dc
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// partitionRegions grows k regions from random seeds with a randomized
// breadth-first fill. Each newly reached cell is claimed by whichever seed is
// nearest, so boundaries come out Voronoi-like even though regions grow one
// at a time.
func partitionRegions(rows, cols int, p Params, rng *core.RNG) (*RegionMap, SeedSet) {
	regions := newRegionMap(rows, cols)
	seeds := placeSeeds(rows, cols, p.RegionCount, rng)
	for id, s := range seeds {
		regions.set(s.Row, s.Col, id)
	}

	maxSize := rows * cols / p.RegionSizeDivisor
	if maxSize < 1 {
		maxSize = 1
	}

	var dirs [4]Point
	for _, s := range seeds {
		size := 1
		queue := []Point{s}
		for len(queue) > 0 && size < maxSize {
			cur := queue[0]
			queue = queue[1:]

			dirs = cardinalOffsets
			rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

			for _, d := range dirs {
				r, c := cur.Row+d.Row, cur.Col+d.Col
				if !regions.inBounds(r, c) || regions.At(r, c) != noRegion {
					continue
				}
				regions.set(r, c, seeds.nearest(r, c))
				queue = append(queue, Point{Row: r, Col: c})
				size++
				if size >= maxSize {
					break
				}
			}
		}
	}
	return regions, seeds
}
