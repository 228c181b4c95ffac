package ui

// Cells are addressed by 1-based tags counted column by column:
// on a 3x3 board tags 1, 2, 3 are column 0 from top to bottom.

// CellTag - returns the tag of the cell at (column, row), or 0 when it is off the board.
func CellTag(column, row, size int) int {
	if column < 0 || column >= size || row < 0 || row >= size {
		return 0
	}
	return column*size + row + 1
}

// CellCoordinates - maps a tag back to (column, row). ok is false for tags outside 1..size².
func CellCoordinates(tag, size int) (column, row int, ok bool) {
	if size < 1 || tag < 1 || tag > size*size {
		return 0, 0, false
	}

	index := tag - 1
	return index / size, index % size, true
}
