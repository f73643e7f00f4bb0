// Command speechchess-repl is a minimal line-oriented harness for the
// rules-and-command core: it reads one voice-transcript line per prompt,
// the way the upstream websocket layer would hand the core a {text: string}
// message, and prints the resulting position or the rejection reason.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/NeemaB/speechchess-core/internal/engine"
	"github.com/NeemaB/speechchess-core/internal/parser"
	"github.com/NeemaB/speechchess-core/internal/session"
	"github.com/NeemaB/speechchess-core/internal/validate"
)

func main() {
	sessionDir := flag.String("session-dir", os.Getenv("SPEECHCHESS_SESSION_DIR"), "directory for the badger-backed command log (empty disables logging)")
	gameID := flag.String("game-id", "repl", "identifier this session's command log is appended under")
	startFEN := flag.String("fen", "", "starting position (default: standard initial setup)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var store *session.Store
	if *sessionDir != "" {
		s, err := session.Open(*sessionDir, log)
		if err != nil {
			log.WithError(err).Fatal("failed to open session store")
		}
		defer s.Close()
		store = s
	}

	var b *engine.Board
	if *startFEN != "" {
		board, err := engine.FromSerialized(*startFEN)
		if err != nil {
			log.WithError(err).Fatal("invalid starting position")
		}
		b = board
	} else {
		b = engine.NewBoard()
	}

	fmt.Println(b.Serialize())
	runREPL(b, store, *gameID, log)
}

func runREPL(b *engine.Board, store *session.Store, gameID string, log *logrus.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd, parseErr := parser.Parse(line)
		if parseErr != nil {
			fmt.Println("could not understand:", parseErr)
			continue
		}

		move, ok := validate.Resolve(cmd, b)
		if !ok {
			fmt.Println("no unique legal move matches that command")
			continue
		}

		if cmd.Action == parser.Resign {
			fmt.Println("game over: resignation")
			return
		}

		if cmd.Action == parser.Promote {
			fmt.Println("a pawn can promote (auto-queen happens on its move)")
			continue
		}

		applied := b.ExecuteMove(move)
		if !applied {
			fmt.Println("rejected: not a legal move in the current position")
			continue
		}

		fen := b.Serialize()
		fmt.Println(fen)

		if store != nil {
			entry := session.Entry{
				Utterance: line,
				Command:   fmt.Sprintf("%+v", cmd),
				Move:      move.String(),
				FEN:       fen,
			}
			if err := store.Append(gameID, entry); err != nil {
				log.WithError(err).Warn("failed to persist command to session log")
			}
		}

		switch b.TerminalState() {
		case engine.Checkmate:
			fmt.Println("checkmate")
			return
		case engine.Stalemate:
			fmt.Println("stalemate")
			return
		case engine.DrawFiftyMove, engine.DrawInsufficientMaterial:
			fmt.Println(b.TerminalState())
			return
		}
	}
}
