package triangle

// Solve runs the bottom-up pass over t and returns the minimal path from the
// apex to the base row. It returns nil for an empty triangle. When both
// children of a cell have the same distance the left one is chosen.
//
// The pass runs at most once; later calls only rebuild the path.
func (t *Triangle) Solve() Path {
	if len(t.rows) == 0 {
		return nil
	}
	if !t.solved {
		t.computeDistances()
		t.solved = true
	}
	return t.walk()
}

// Apex returns the top cell. After Solve its MinDistanceToBase is the
// minimal path sum. ok is false for an empty triangle.
func (t *Triangle) Apex() (Cell, bool) {
	if len(t.rows) == 0 {
		return Cell{}, false
	}
	return t.rows[0][0], true
}

func (t *Triangle) computeDistances() {
	last := len(t.rows) - 1
	for j := range t.rows[last] {
		cell := &t.rows[last][j]
		cell.MinDistanceToBase = cell.Value
	}

	for r := last - 1; r >= 0; r-- {
		below := t.rows[r+1]
		for j := range t.rows[r] {
			cell := &t.rows[r][j]
			left, right := below[j], below[j+1]

			child := j
			best := left.MinDistanceToBase
			if right.MinDistanceToBase < best {
				child = j + 1
				best = right.MinDistanceToBase
			}

			cell.MinDistanceToBase = cell.Value + best
			cell.Child = Coord{Row: r + 1, Col: child}
			cell.hasChild = true
		}
	}
}

func (t *Triangle) walk() Path {
	path := make(Path, 0, len(t.rows))
	cell := t.rows[0][0]
	for {
		path = append(path, cell.Value)
		if !cell.hasChild {
			return path
		}
		cell = t.Cell(cell.Child)
	}
}
