package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	colorX     = "1" // red
	colorO     = "4" // blue
	rowDivider = "---+---+---"
)

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Server) render() {
	board := that.gamePlay.Game().Board

	var sb strings.Builder
	sb.WriteByte('\n')

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(" " + that.renderCell(board, row*3+col) + " ")
			if col < 2 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')

		if row < 2 {
			sb.WriteString(rowDivider + "\n")
		}
	}

	sb.WriteByte('\n')
	that.printf("%s", sb.String())
}

// renderCell colors the marks and shows a faint cell number on empty cells,
// matching the numbers the prompt accepts.
func (that *Server) renderCell(board engine.Board, cell int) string {
	switch board[cell] {
	case engine.PlayerX:
		return that.out.String(engine.PlayerX).Foreground(that.out.Color(colorX)).Bold().String()
	case engine.PlayerO:
		return that.out.String(engine.PlayerO).Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return that.out.String(strconv.Itoa(cell)).Faint().String()
	}
}

func (that *Server) prompt() {
	game := that.gamePlay.Game()
	if game == nil || !game.IsOngoing() {
		that.printf("> ")
		return
	}

	that.printf("%s to move (0-8) > ", game.Turn)
}

func (that *Server) printScore() {
	scores := that.gamePlay.Scores()
	that.printf("score: X %d, O %d, ties %d\n", scores.XWins, scores.OWins, scores.Ties)
}

func (that *Server) printWelcome() {
	that.printf("tic-tac-toe\n")
	that.printHelp()
}

func (that *Server) printHelp() {
	that.printf("enter a cell number 0-8 to play, or a command:\n")
	that.printf("  new            start the round over\n")
	that.printf("  mode %s|%s  play the computer or a friend\n", entity.WithBotMode, entity.WithFriendMode)
	that.printf("  score          show the session score\n")
	that.printf("  help           show this message\n")
	that.printf("  quit           leave the game\n")
}

func (that *Server) printGoodbye() {
	that.printf("bye\n")
}
