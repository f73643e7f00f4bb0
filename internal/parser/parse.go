package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var castlePattern = regexp.MustCompile(`castl(e|es|ing)?`)

var longCastleMarkers = []string{"long", "queenside", "queen side", "queen-side"}

// Parse converts a single transcribed utterance into a Command. Empty or
// wholly unintelligible input returns a non-nil error; callers that would
// rather treat parse failure as a benign, always-rejected Command can
// ignore the error and still get one back (see degenerateCommand).
func Parse(raw string) (Command, error) {
	s := preprocess(raw)

	if s == "" {
		return degenerateCommand(), fmt.Errorf("parser: empty command")
	}

	if castlePattern.MatchString(s) {
		action := ShortCastle
		for _, marker := range longCastleMarkers {
			if strings.Contains(s, marker) {
				action = LongCastle
				break
			}
		}
		return Command{Action: action}, nil
	}

	if s == "resign" || s == "i resign" {
		return Command{Action: Resign}, nil
	}

	if s == "promote" || s == "pawn promote" || s == "promote pawn" {
		return Command{Action: Promote}, nil
	}

	tokens := tokenize(s)
	if len(tokens) == 0 {
		return degenerateCommand(), fmt.Errorf("parser: no recognizable tokens in %q", raw)
	}

	return assemble(tokens), nil
}

// assemble builds a Command from a token stream: split at the first
// action token if one exists, otherwise fall back to one of the fixed
// implicit-move shapes.
func assemble(tokens []token) Command {
	for i, tok := range tokens {
		if tok.kind == tokAction {
			return Command{
				Start:  extractInfo(tokens[:i]),
				Action: tok.action,
				End:    extractInfo(tokens[i+1:]),
			}
		}
	}

	return assembleImplicitMove(tokens)
}

func assembleImplicitMove(tokens []token) Command {
	switch len(tokens) {
	case 1:
		return Command{Action: Move, End: extractInfo(tokens)}
	case 2:
		if tokens[0].kind == tokFile || tokens[0].kind == tokPiece {
			return Command{Action: Move, Start: extractInfo(tokens[:1]), End: extractInfo(tokens[1:])}
		}
		if tokens[0].kind == tokSquare && tokens[1].kind == tokSquare {
			return Command{Action: Move, Start: extractInfo(tokens[:1]), End: extractInfo(tokens[1:])}
		}
	}

	// Fallback: the last token is the destination, everything before it
	// is condensed into a single start descriptor.
	if len(tokens) == 0 {
		return degenerateCommand()
	}
	last := tokens[len(tokens)-1]
	return Command{
		Action: Move,
		Start:  extractInfo(tokens[:len(tokens)-1]),
		End:    extractInfo([]token{last}),
	}
}

// extractInfo reduces a token group to at most one CommandInfo, preferring
// a piece over a square over a file when more than one is present.
func extractInfo(tokens []token) CommandInfo {
	var sawSquare, sawFile bool
	var square CommandInfo
	var file CommandInfo

	for _, tok := range tokens {
		switch tok.kind {
		case tokPiece:
			return pieceInfo(tok.piece)
		case tokSquare:
			if !sawSquare {
				square = squareInfo(tok.square)
				sawSquare = true
			}
		case tokFile:
			if !sawFile {
				file = fileInfo(tok.file)
				sawFile = true
			}
		}
	}

	if sawSquare {
		return square
	}
	if sawFile {
		return file
	}
	return noInfo()
}
