// Package validate resolves a parsed Command against a board into either a
// single concrete legal move or a rejection. It never mutates the board it
// is given — candidate enumeration reads the full legal-move set exposed by
// engine.BoardView rather than re-deriving piece-movement rules itself.
package validate

import (
	"github.com/NeemaB/speechchess-core/internal/board"
	"github.com/NeemaB/speechchess-core/internal/engine"
	"github.com/NeemaB/speechchess-core/internal/parser"
)

// Resolve reports whether cmd names exactly one legal move against view,
// and if so returns it. Resign and Promote resolve with board.NoMove, since
// neither names a move to execute.
func Resolve(cmd parser.Command, view engine.BoardView) (board.Move, bool) {
	switch cmd.Action {
	case parser.Resign:
		return board.NoMove, true

	case parser.ShortCastle:
		return resolveCastle(view, true)

	case parser.LongCastle:
		return resolveCastle(view, false)

	case parser.Move, parser.Capture:
		return resolveMove(cmd, view)

	case parser.Promote:
		return resolvePromote(view)

	default:
		return board.NoMove, false
	}
}

func resolveCastle(view engine.BoardView, kingSide bool) (board.Move, bool) {
	color := view.SideToMove()
	var kingStart board.Square
	if color == board.White {
		kingStart = board.E1
	} else {
		kingStart = board.E8
	}

	for _, m := range view.LegalMovesFrom(kingStart) {
		if m.Kind != board.King {
			continue
		}
		isKingSide := m.To.File() > m.From.File()
		if isKingSide == kingSide && fileDistance(m.From, m.To) == 2 {
			return m, true
		}
	}
	return board.NoMove, false
}

func fileDistance(a, b board.Square) int {
	d := a.File() - b.File()
	if d < 0 {
		return -d
	}
	return d
}

// resolvePromote treats Promote as valid whenever the side to move has any
// pawn able to make a legal move onto the back rank; the promotion itself
// is auto-queen on the pawn's move, there is no target-selection grammar.
func resolvePromote(view engine.BoardView) (board.Move, bool) {
	color := view.SideToMove()
	backRank := 7
	if color == board.Black {
		backRank = 0
	}
	for _, sq := range view.FindPieces(board.Pawn, color) {
		for _, m := range view.LegalMovesFrom(sq) {
			if m.To.Rank() == backRank {
				return board.NoMove, true
			}
		}
	}
	return board.NoMove, false
}

func resolveMove(cmd parser.Command, view engine.BoardView) (board.Move, bool) {
	starts := candidateStarts(cmd.Start, view)

	var matches []board.Move
	for _, start := range starts {
		for _, m := range view.LegalMovesFrom(start) {
			if !endMatches(cmd.End, m.To, view) {
				continue
			}
			if !actionMatches(cmd.Action, m, view) {
				continue
			}
			matches = append(matches, m)
		}
	}

	if len(matches) != 1 {
		return board.NoMove, false
	}
	return matches[0], true
}

// candidateStarts resolves startInfo into every square worth trying as a
// move's origin: absent means every side-to-move-occupied square.
func candidateStarts(info parser.CommandInfo, view engine.BoardView) []board.Square {
	color := view.SideToMove()

	switch info.Kind {
	case parser.InfoSquare:
		if piece, ok := view.PieceAt(info.Square); ok && piece.Color() == color {
			return []board.Square{info.Square}
		}
		return nil

	case parser.InfoFile:
		var squares []board.Square
		for rank := 0; rank < 8; rank++ {
			sq := board.NewSquare(info.File, rank)
			if piece, ok := view.PieceAt(sq); ok && piece.Color() == color {
				squares = append(squares, sq)
			}
		}
		return squares

	case parser.InfoPieceKind:
		return view.FindPieces(info.PieceKind, color)

	default: // InfoNone
		var squares []board.Square
		for kind := board.Pawn; kind <= board.King; kind++ {
			squares = append(squares, view.FindPieces(kind, color)...)
		}
		return squares
	}
}

// endMatches reports whether destination to is consistent with endInfo.
func endMatches(info parser.CommandInfo, to board.Square, view engine.BoardView) bool {
	opponent := view.SideToMove().Other()

	switch info.Kind {
	case parser.InfoSquare:
		return to == info.Square

	case parser.InfoFile:
		return to.File() == info.File

	case parser.InfoPieceKind:
		piece, ok := view.PieceAt(to)
		return ok && piece.Color() == opponent && piece.Kind() == info.PieceKind

	default: // InfoNone
		return true
	}
}

// actionMatches enforces the Capture/Move distinction on the destination
// square: Capture requires an opposing piece, or a pawn's diagonal move
// onto the en-passant target; Move accepts either an empty square or a
// capturable opponent square.
func actionMatches(action parser.Action, m board.Move, view engine.BoardView) bool {
	piece, occupied := view.PieceAt(m.To)

	if action == parser.Capture {
		if occupied && piece.Color() != view.SideToMove() {
			return true
		}
		if ep, ok := view.EnPassantTarget(); ok && m.To == ep &&
			m.Kind == board.Pawn && m.From.File() != m.To.File() {
			return true
		}
		return false
	}

	// Move: anything a legal move can land on is already either empty or
	// a capturable opponent piece, since LegalMovesFrom never offers
	// landing on a friendly-occupied square.
	return true
}
