package engine

// NoMove marks a SearchResult produced at a terminal node, where no cell
// is chosen.
const NoMove = -1

const winScore = 10

// SearchResult pairs the chosen cell with its minimax score. Scores live in
// [-10, 10]: positive means the maximizing player forces a win, negative a
// loss, zero a draw.
type SearchResult struct {
	Move  int
	Score int
}

// Search explores every legal continuation of board and returns the optimal
// cell for playerToMove together with its score. Scores are depth-adjusted:
// a win for the maximizing player counts winScore-depth and a loss
// depth-winScore, so the engine takes the fastest win and drags out an
// unavoidable loss. Equal scores go to the lowest cell index.
//
// The board is copied per branch; hypothetical moves never leak between
// siblings or back to the caller.
func Search(board Board, playerToMove, maximizing, minimizing string, depth int) SearchResult {
	switch Winner(board) {
	case maximizing:
		return SearchResult{Move: NoMove, Score: winScore - depth}
	case minimizing:
		return SearchResult{Move: NoMove, Score: depth - winScore}
	}

	moves := LegalMoves(board)
	if len(moves) == 0 {
		return SearchResult{Move: NoMove, Score: 0}
	}

	best := SearchResult{Move: NoMove}

	for _, move := range moves {
		next := board
		next[move] = playerToMove

		child := Search(next, toggleMark(playerToMove, maximizing, minimizing), maximizing, minimizing, depth+1)

		if best.Move == NoMove ||
			(playerToMove == maximizing && child.Score > best.Score) ||
			(playerToMove == minimizing && child.Score < best.Score) {
			best = SearchResult{Move: move, Score: child.Score}
		}
	}

	return best
}

// ChooseMove picks the optimal cell for aiMark on the live board. The second
// return is false when no legal move remains.
func ChooseMove(board Board, aiMark, humanMark string) (int, bool) {
	result := Search(board, aiMark, aiMark, humanMark, 0)
	if result.Move == NoMove {
		return NoMove, false
	}

	return result.Move, true
}

func toggleMark(currentMark, maximizing, minimizing string) string {
	if currentMark == maximizing {
		return minimizing
	}

	return maximizing
}
