package board

// Conflict identifies a cell whose value duplicates an earlier value
// in the same row, column, or subgrid.
type Conflict struct {
	X     int
	Y     int
	Value int
}

// Validate scans every row, column, and subgrid for duplicate values
// and returns the conflicting cells. Empty cells are skipped. A nil
// or empty result means the filled cells are mutually consistent.
func (b *Board) Validate() []Conflict {
	var conflicts []Conflict

	// Rows
	for y := 0; y < b.dim; y++ {
		seen := make([]bool, b.dim+1)
		for x := 0; x < b.dim; x++ {
			v := b.cells[b.index(x, y)]
			if v == Empty || v < 1 || v > b.dim {
				if v != Empty {
					conflicts = append(conflicts, Conflict{X: x, Y: y, Value: v})
				}
				continue
			}
			if seen[v] {
				conflicts = append(conflicts, Conflict{X: x, Y: y, Value: v})
			}
			seen[v] = true
		}
	}

	// Columns
	for x := 0; x < b.dim; x++ {
		seen := make([]bool, b.dim+1)
		for y := 0; y < b.dim; y++ {
			v := b.cells[b.index(x, y)]
			if v == Empty || v < 1 || v > b.dim {
				continue
			}
			if seen[v] {
				conflicts = append(conflicts, Conflict{X: x, Y: y, Value: v})
			}
			seen[v] = true
		}
	}

	// Subgrids
	for y0 := 0; y0 < b.dim; y0 += b.sub {
		for x0 := 0; x0 < b.dim; x0 += b.sub {
			seen := make([]bool, b.dim+1)
			for dy := 0; dy < b.sub; dy++ {
				for dx := 0; dx < b.sub; dx++ {
					v := b.cells[b.index(x0+dx, y0+dy)]
					if v == Empty || v < 1 || v > b.dim {
						continue
					}
					if seen[v] {
						conflicts = append(conflicts, Conflict{X: x0 + dx, Y: y0 + dy, Value: v})
					}
					seen[v] = true
				}
			}
		}
	}

	return conflicts
}

// IsComplete reports whether every cell is filled and no unit contains
// a duplicate.
func (b *Board) IsComplete() bool {
	return b.FreeCells() == 0 && len(b.Validate()) == 0
}
