package engine

import "errors"

// ErrNoEmptyCells is returned when a move is requested on a full board.
var ErrNoEmptyCells = errors.New("no empty cells on the board")

// Score - evaluates a position with full-depth minimax: +1 if the bot mark wins
// under optimal play from both sides, -1 if the human mark wins, 0 for a draw.
// The board is an array value, so every recursive branch mutates its own copy
// and the caller's board is never touched.
func Score(board [9]string, botMark, humanMark string, botToMove bool) int {
	switch Winner(board) {
	case botMark:
		return 1
	case humanMark:
		return -1
	}

	if IsDraw(board) {
		return 0
	}

	if botToMove {
		best := -2
		for _, cell := range EmptyCells(board) {
			next := board
			next[cell] = botMark

			if score := Score(next, botMark, humanMark, false); score > best {
				best = score
			}
		}

		return best
	}

	best := 2
	for _, cell := range EmptyCells(board) {
		next := board
		next[cell] = humanMark

		if score := Score(next, botMark, humanMark, true); score < best {
			best = score
		}
	}

	return best
}

// BestCell - returns the strongest bot move for the given position.
// Candidates are scored in row-major order and only a strictly greater score
// replaces the current choice, so ties always resolve to the lowest cell index.
// On the empty board that makes cell 0 the first move.
func BestCell(board [9]string, botMark, humanMark string) (int, error) {
	bestCell := -1
	bestScore := -2

	for _, cell := range EmptyCells(board) {
		next := board
		next[cell] = botMark

		if score := Score(next, botMark, humanMark, false); score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	if bestCell < 0 {
		return 0, ErrNoEmptyCells
	}

	return bestCell, nil
}
