package engine

// EmptyCell marks an unoccupied board cell.
const EmptyCell = ""

// winLines - the 8 three-in-a-row combinations: rows, columns and both diagonals.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner - returns the mark that occupies a full line, or an empty string if nobody has won.
func Winner(board [9]string) string {
	for _, line := range winLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return ""
}

// IsDraw - reports whether every cell is occupied.
// Only meaningful once Winner reports no line for either mark.
func IsDraw(board [9]string) bool {
	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - returns the indexes of all unoccupied cells in row-major order.
// Every difficulty tier enumerates candidate moves through this single helper.
func EmptyCells(board [9]string) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}
