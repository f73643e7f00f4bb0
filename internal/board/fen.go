package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the position-description string for the standard initial setup.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field position-description string into a
// Position. Trailing halfmove-clock and fullmove-number fields may be
// omitted and default to 0 and 1 respectively; a malformed string is
// reported as an error rather than partially applied.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("board: malformed position %q: need at least 4 fields, got %d", fen, len(parts))
	}

	pos := emptyPosition()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fmt.Errorf("board: malformed position %q: invalid side to move %q", fen, parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: malformed position %q: invalid en passant square %q", fen, parts[3])
		}
		pos.enPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fmt.Errorf("board: malformed position %q: invalid halfmove clock %q", fen, parts[4])
		}
		pos.halfmoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("board: malformed position %q: invalid fullmove number %q", fen, parts[5])
		}
		pos.fullmoveNumber = fmn
	}

	if pos.kingSquare[White] == NoSquare || pos.kingSquare[Black] == NoSquare {
		return nil, fmt.Errorf("board: malformed position %q: each side needs exactly one king", fen)
	}

	return pos, nil
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: malformed piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: malformed piece placement %q: too many squares on rank %d", placement, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("board: malformed piece placement %q: invalid piece character %q", placement, c)
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("board: malformed piece placement %q: rank %d has %d squares, want 8", placement, rank+1, file)
		}
	}

	return nil
}

func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.castlingRights = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.castlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.castlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.castlingRights |= BlackKingSideCastle
		case 'q':
			pos.castlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("board: malformed castling availability %q: invalid character %q", castling, c)
		}
	}

	return nil
}

// Serialize renders the position back into the six-field format. It always
// emits all six fields, even when the source FEN this position was parsed
// from omitted the trailing clocks.
func (p *Position) Serialize() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}
