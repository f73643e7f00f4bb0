// Package parser turns a free-form natural-language utterance into a
// structured Command. It never touches board state — it is pure text in,
// tagged-union Command out — so it stays trivially unit-testable and
// side-effect free, the same boundary internal/board draws around itself.
package parser

import "github.com/NeemaB/speechchess-core/internal/board"

// InfoKind distinguishes which field of a CommandInfo actually holds a value.
type InfoKind int

const (
	InfoNone InfoKind = iota
	InfoPieceKind
	InfoFile
	InfoSquare
)

// CommandInfo is a closed tagged union: at most one of PieceKind, File, or
// Square is meaningful, selected by Kind.
type CommandInfo struct {
	Kind      InfoKind
	PieceKind board.PieceKind
	File      int
	Square    board.Square
}

func noInfo() CommandInfo { return CommandInfo{Kind: InfoNone} }

func pieceInfo(pk board.PieceKind) CommandInfo {
	return CommandInfo{Kind: InfoPieceKind, PieceKind: pk}
}

func fileInfo(f int) CommandInfo {
	return CommandInfo{Kind: InfoFile, File: f}
}

func squareInfo(sq board.Square) CommandInfo {
	return CommandInfo{Kind: InfoSquare, Square: sq}
}

// Action names the kind of move the Command describes.
type Action int

const (
	NoAction Action = iota
	Move
	Capture
	Resign
	Promote
	ShortCastle
	LongCastle
)

// Command is the parser's output: an optional start descriptor, an action,
// and an optional end descriptor.
type Command struct {
	Start  CommandInfo
	Action Action
	End    CommandInfo
}

// degenerateCommand is what a benign (non-erroring) parser returns on
// input it cannot make sense of: Move with neither descriptor set. The
// validator rejects it the same way it rejects any other unresolvable
// command — Parse itself additionally returns an error so callers that
// want a hard failure can have one.
func degenerateCommand() Command {
	return Command{Action: Move}
}
