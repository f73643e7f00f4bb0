// Package engine wraps the pure chess mechanics in internal/board with the
// public contract a caller (a command validator, a REPL, a session logger)
// actually wants: construction, querying, move execution, cloning, and
// terminal-state detection, backed by a lazily rebuilt per-square legal-move
// cache.
package engine

import "github.com/NeemaB/speechchess-core/internal/board"

// TerminalState classifies whether a position is still being played.
type TerminalState int

const (
	Running TerminalState = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawInsufficientMaterial
)

// String names the terminal state, for logging.
func (t TerminalState) String() string {
	switch t {
	case Running:
		return "running"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw (fifty-move rule)"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	default:
		return "unknown"
	}
}

// BoardView is the read-only query surface a validator or other outside
// caller borrows, so the mutable Board never needs to be shared by
// reference beyond the single owner that calls ExecuteMove.
type BoardView interface {
	PieceAt(sq board.Square) (board.Piece, bool)
	SideToMove() board.Color
	CastlingRights() board.CastlingRights
	EnPassantTarget() (board.Square, bool)
	FindPieces(kind board.PieceKind, color board.Color) []board.Square
	LegalMovesFrom(sq board.Square) board.MoveList
	AllLegalMoves() board.MoveList
	TargetSquaresFrom(sq board.Square) []board.Square
	IsInCheck() bool
}

// Board owns a mutable position and the derived legal-move cache built on
// top of it. It is the sole entry point for mutation; every query either
// reads straight through to the underlying Position or consults the cache.
type Board struct {
	pos   *board.Position
	cache map[board.Square]board.MoveList
	dirty bool
}

// NewBoard returns a Board at the standard initial position.
func NewBoard() *Board {
	return wrap(board.NewPosition())
}

// FromSerialized constructs a Board from a six-field FEN-style position
// description. A malformed string is a hard error.
func FromSerialized(s string) (*Board, error) {
	pos, err := board.ParseFEN(s)
	if err != nil {
		return nil, err
	}
	return wrap(pos), nil
}

func wrap(pos *board.Position) *Board {
	return &Board{pos: pos, dirty: true}
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq board.Square) (board.Piece, bool) {
	return b.pos.PieceAt(sq)
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() board.Color {
	return b.pos.SideToMove()
}

// CastlingRights returns the current castling availabilities.
func (b *Board) CastlingRights() board.CastlingRights {
	return b.pos.CastlingRights()
}

// EnPassantTarget returns the en-passant target square, if any.
func (b *Board) EnPassantTarget() (board.Square, bool) {
	return b.pos.EnPassantTarget()
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.pos.HalfmoveClock()
}

// FullmoveNumber returns the current fullmove number.
func (b *Board) FullmoveNumber() int {
	return b.pos.FullmoveNumber()
}

// FindPieces returns every square holding a piece of the given kind and color.
func (b *Board) FindPieces(kind board.PieceKind, color board.Color) []board.Square {
	return b.pos.FindPieces(kind, color)
}

// IsInCheck reports whether the side to move is currently in check.
func (b *Board) IsInCheck() bool {
	return b.pos.IsInCheck()
}

// rebuildCache regenerates the per-square legal-move map from scratch and
// clears the dirty flag. Called at most once per mutation, on first query.
func (b *Board) rebuildCache() {
	b.cache = make(map[board.Square]board.MoveList)
	for _, m := range b.pos.LegalMoves() {
		b.cache[m.From] = append(b.cache[m.From], m)
	}
	b.dirty = false
}

// LegalMovesFrom returns every legal move starting at sq; empty if sq is
// empty, holds the wrong color's piece, or the piece there has no legal move.
func (b *Board) LegalMovesFrom(sq board.Square) board.MoveList {
	if b.dirty {
		b.rebuildCache()
	}
	return b.cache[sq]
}

// AllLegalMoves returns every legal move for the side to move.
func (b *Board) AllLegalMoves() board.MoveList {
	if b.dirty {
		b.rebuildCache()
	}
	all := make(board.MoveList, 0, len(b.cache)*2)
	for _, moves := range b.cache {
		all = append(all, moves...)
	}
	return all
}

// TargetSquaresFrom projects LegalMovesFrom onto destination squares.
func (b *Board) TargetSquaresFrom(sq board.Square) []board.Square {
	moves := b.LegalMovesFrom(sq)
	targets := make([]board.Square, len(moves))
	for i, m := range moves {
		targets[i] = m.To
	}
	return targets
}

// TerminalState classifies the current position per the terminal-state
// algorithm: no legal moves first (checkmate or stalemate), then the
// fifty-move rule, then insufficient material, else running.
func (b *Board) TerminalState() TerminalState {
	if len(b.AllLegalMoves()) == 0 {
		if b.pos.IsInCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if b.pos.IsFiftyMoveDraw() {
		return DrawFiftyMove
	}
	if b.pos.IsInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return Running
}

// ExecuteMove applies m if and only if it is a legal move in the current
// position and its (kind, color) fields agree with whatever actually sits
// on its start square. On rejection the board is left completely unchanged.
func (b *Board) ExecuteMove(m board.Move) bool {
	if !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	piece, ok := b.pos.PieceAt(m.From)
	if !ok || piece.Kind() != m.Kind || piece.Color() != m.Color {
		return false
	}
	if !b.pos.IsLegal(m) {
		return false
	}

	b.pos.MakeMove(m)
	b.dirty = true
	return true
}

// Clone returns an independent Board; the underlying position is
// deep-copied and the cache is rebuilt from scratch rather than shared,
// so mutating the clone never affects the original.
func (b *Board) Clone() *Board {
	return wrap(b.pos.Clone())
}

// Serialize renders the position in the standard six-field format.
func (b *Board) Serialize() string {
	return b.pos.Serialize()
}
