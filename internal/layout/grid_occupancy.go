package layout

// span is a half-open range of origin-zero grid lines.
type span struct {
	start, end int
}

func (s span) len() int { return s.end - s.start }

// trackCounts splits an axis into implicit tracks before the explicit grid,
// the explicit tracks, and implicit tracks after it.
type trackCounts struct {
	negative, explicit, positive int
}

func (t trackCounts) len() int { return t.negative + t.explicit + t.positive }

// implicitStart is the origin-zero line at the start of the implicit grid.
func (t trackCounts) implicitStart() int { return -t.negative }

// implicitEnd is the origin-zero line at the end of the implicit grid.
func (t trackCounts) implicitEnd() int { return t.explicit + t.positive }

// index converts an origin-zero line into an index into the track slice.
func (t trackCounts) index(line int) int { return line + t.negative }

type cellState uint8

const (
	cellFree cellState = iota
	cellDefinite
	cellAuto
)

// occupancy records which grid cells are claimed. It only ever grows.
type occupancy struct {
	cols, rows trackCounts
	cells      [][]cellState // [row][column]
}

func newOccupancy(cols, rows trackCounts) *occupancy {
	o := &occupancy{cols: cols, rows: rows}
	o.cells = make([][]cellState, rows.len())
	for i := range o.cells {
		o.cells[i] = make([]cellState, cols.len())
	}
	return o
}

func (o *occupancy) counts(axis Axis) trackCounts {
	if axis == Horizontal {
		return o.cols
	}
	return o.rows
}

// expandToFit adds implicit tracks so the area lies inside the matrix.
func (o *occupancy) expandToFit(rowSpan, colSpan span) {
	addNegRows := max(o.rows.implicitStart()-rowSpan.start, 0)
	addPosRows := max(rowSpan.end-o.rows.implicitEnd(), 0)
	addNegCols := max(o.cols.implicitStart()-colSpan.start, 0)
	addPosCols := max(colSpan.end-o.cols.implicitEnd(), 0)
	if addNegRows+addPosRows+addNegCols+addPosCols == 0 {
		return
	}

	cols := trackCounts{negative: o.cols.negative + addNegCols, explicit: o.cols.explicit, positive: o.cols.positive + addPosCols}
	rows := trackCounts{negative: o.rows.negative + addNegRows, explicit: o.rows.explicit, positive: o.rows.positive + addPosRows}
	grown := newOccupancy(cols, rows)
	for r, row := range o.cells {
		copy(grown.cells[r+addNegRows][addNegCols:], row)
	}
	*o = *grown

	if debugEnabled() {
		Logger().Debug("grid implicit tracks added",
			"rows", addNegRows+addPosRows, "columns", addNegCols+addPosCols)
	}
}

// rowColSpans orders a primary/secondary pair as (rows, columns).
func rowColSpans(primaryAxis Axis, primary, secondary span) (rowSpan, colSpan span) {
	if primaryAxis == Horizontal {
		return secondary, primary
	}
	return primary, secondary
}

// mark claims an area, growing the matrix if needed.
func (o *occupancy) mark(primaryAxis Axis, primary, secondary span, state cellState) {
	rowSpan, colSpan := rowColSpans(primaryAxis, primary, secondary)
	o.expandToFit(rowSpan, colSpan)
	for r := o.rows.index(rowSpan.start); r < o.rows.index(rowSpan.end); r++ {
		for c := o.cols.index(colSpan.start); c < o.cols.index(colSpan.end); c++ {
			o.cells[r][c] = state
		}
	}
}

// isFree reports whether no cell of the area is claimed. Cells outside the
// matrix are free.
func (o *occupancy) isFree(primaryAxis Axis, primary, secondary span) bool {
	rowSpan, colSpan := rowColSpans(primaryAxis, primary, secondary)
	for r := max(o.rows.index(rowSpan.start), 0); r < min(o.rows.index(rowSpan.end), len(o.cells)); r++ {
		row := o.cells[r]
		for c := max(o.cols.index(colSpan.start), 0); c < min(o.cols.index(colSpan.end), len(row)); c++ {
			if row[c] != cellFree {
				return false
			}
		}
	}
	return true
}

// lastOfType returns the line after the last cell in the given secondary
// track that holds state, walking along the primary axis.
func (o *occupancy) lastOfType(primaryAxis Axis, secondaryLine int, state cellState) (int, bool) {
	primary := o.counts(primaryAxis)
	secondary := o.counts(primaryAxis.Other())
	s := secondary.index(secondaryLine)
	if s < 0 || s >= secondary.len() {
		return 0, false
	}
	for p := primary.len() - 1; p >= 0; p-- {
		var cell cellState
		if primaryAxis == Horizontal {
			cell = o.cells[s][p]
		} else {
			cell = o.cells[p][s]
		}
		if cell == state {
			return p - primary.negative + 1, true
		}
	}
	return 0, false
}

// trackOccupied reports whether any cell of a track is claimed.
func (o *occupancy) trackOccupied(axis Axis, index int) bool {
	for r := range o.cells {
		for c := range o.cells[r] {
			if o.cells[r][c] == cellFree {
				continue
			}
			if (axis == Horizontal && c == index) || (axis == Vertical && r == index) {
				return true
			}
		}
	}
	return false
}
