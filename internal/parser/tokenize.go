package parser

import (
	"strings"

	"github.com/NeemaB/speechchess-core/internal/board"
)

var pieceWords = map[string]board.PieceKind{
	"king":   board.King,
	"queen":  board.Queen,
	"rook":   board.Rook,
	"bishop": board.Bishop,
	"knight": board.Knight,
	"night":  board.Knight, // common mishearing of "knight"
	"pawn":   board.Pawn,
}

var captureWords = map[string]bool{
	"takes": true, "captures": true, "capture": true, "x": true,
}

var moveWords = map[string]bool{
	"to": true, "moves": true, "move": true,
}

type tokenKind int

const (
	tokPiece tokenKind = iota
	tokAction
	tokSquare
	tokFile
)

type token struct {
	kind   tokenKind
	piece  board.PieceKind
	action Action
	file   int
	square board.Square
}

// tokenize splits the preprocessed string on whitespace and classifies
// each word by the first matching rule: piece word, capture keyword, move
// keyword, square, file letter. A length-3 word whose first character is
// a file letter and whose last two characters spell a valid square
// expands into two tokens (File, then Square) rather than one.
// Unrecognized words are discarded.
func tokenize(s string) []token {
	var tokens []token
	for _, word := range strings.Fields(s) {
		if pk, ok := pieceWords[word]; ok {
			tokens = append(tokens, token{kind: tokPiece, piece: pk})
			continue
		}
		if captureWords[word] {
			tokens = append(tokens, token{kind: tokAction, action: Capture})
			continue
		}
		if moveWords[word] {
			tokens = append(tokens, token{kind: tokAction, action: Move})
			continue
		}
		if len(word) == 2 {
			if sq, err := board.ParseSquare(word); err == nil {
				tokens = append(tokens, token{kind: tokSquare, square: sq})
				continue
			}
		}
		if len(word) == 1 && isFileLetter(word[0]) {
			tokens = append(tokens, token{kind: tokFile, file: int(word[0] - 'a')})
			continue
		}
		if len(word) == 3 && isFileLetter(word[0]) {
			if sq, err := board.ParseSquare(word[1:]); err == nil {
				tokens = append(tokens, token{kind: tokFile, file: int(word[0] - 'a')})
				tokens = append(tokens, token{kind: tokSquare, square: sq})
				continue
			}
		}
		// else: discard
	}
	return tokens
}

func isFileLetter(c byte) bool {
	return c >= 'a' && c <= 'h'
}
