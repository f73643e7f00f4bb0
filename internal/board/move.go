package board

import "fmt"

// Move is a fully-specified chess move: the kind and color of the piece
// making the move, and its start and end squares. Promotion is not part
// of the move record — a pawn landing on the back rank is auto-queened
// by the engine (see Position.MakeMove).
type Move struct {
	Kind  PieceKind
	Color Color
	From  Square
	To    Square
}

// NoMove is a sentinel built from NoPieceKind, NoColor and NoSquare; it is
// never a move a position can produce (and is not Move's zero value).
var NoMove = Move{Kind: NoPieceKind, Color: NoColor, From: NoSquare, To: NoSquare}

// String returns the move in coordinate form (e.g. "e2e4").
func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// MoveList is a growable list of moves. It exists as a named type, rather
// than a bare []Move, so generator helpers share one appending convention.
type MoveList []Move
