package engine

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Board is a 3x3 grid stored row-major: cells 0-2 form the top row,
// 3-5 the middle row, 6-8 the bottom row.
type Board [9]string

// WinLines are the 8 winning triples: rows, then columns, then diagonals.
// The fixed order keeps Winner deterministic.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluation is the verdict on a single board snapshot.
type Evaluation struct {
	Winner     string
	IsDraw     bool
	LegalMoves []int
}

// Winner returns the mark holding a completed line, or EmptyCell if no line
// is complete. Any 9-cell board is valid input, including a full one.
func Winner(board Board) string {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// LegalMoves returns the indices of all empty cells in ascending order.
func LegalMoves(board Board) []int {
	moves := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// IsDraw reports whether the board is full without a completed line.
func IsDraw(board Board) bool {
	return Winner(board) == EmptyCell && len(LegalMoves(board)) == 0
}

// Evaluate bundles winner, draw and legal moves into one snapshot verdict.
func Evaluate(board Board) Evaluation {
	winner := Winner(board)
	moves := LegalMoves(board)

	return Evaluation{
		Winner:     winner,
		IsDraw:     winner == EmptyCell && len(moves) == 0,
		LegalMoves: moves,
	}
}
