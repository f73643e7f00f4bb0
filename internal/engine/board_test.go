package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NeemaB/speechchess-core/internal/board"
)

func TestOpeningDoublePush(t *testing.T) {
	b := NewBoard()

	ok := b.ExecuteMove(board.Move{Kind: board.Pawn, Color: board.White, From: board.E2, To: board.E4})
	if !ok {
		t.Fatal("expected e2e4 to be accepted")
	}

	if piece, present := b.PieceAt(board.E4); !present || piece.Kind() != board.Pawn {
		t.Errorf("expected a pawn on e4, got %v present=%v", piece, present)
	}
	if _, present := b.PieceAt(board.E2); present {
		t.Error("expected e2 to be empty")
	}

	ep, hasEP := b.EnPassantTarget()
	if !hasEP || ep != board.E3 {
		t.Errorf("expected en-passant target e3, got %v (hasEP=%v)", ep, hasEP)
	}

	if b.SideToMove() != board.Black {
		t.Errorf("expected Black to move, got %v", b.SideToMove())
	}
}

func TestEnPassantCapture(t *testing.T) {
	b, err := FromSerialized("8/8/8/3Pp3/8/8/8/4K2k w - e6 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ok := b.ExecuteMove(board.Move{Kind: board.Pawn, Color: board.White, From: board.D5, To: board.E6})
	if !ok {
		t.Fatal("expected the en-passant capture to be accepted")
	}

	if piece, present := b.PieceAt(board.E6); !present || piece.Kind() != board.Pawn {
		t.Errorf("expected a pawn on e6, got %v present=%v", piece, present)
	}
	if _, present := b.PieceAt(board.E5); present {
		t.Error("expected the captured pawn's square e5 to be empty")
	}
}

func TestCastlingKingside(t *testing.T) {
	b, err := FromSerialized("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ok := b.ExecuteMove(board.Move{Kind: board.King, Color: board.White, From: board.E1, To: board.G1})
	if !ok {
		t.Fatal("expected kingside castle to be accepted")
	}

	if piece, present := b.PieceAt(board.G1); !present || piece.Kind() != board.King {
		t.Error("expected the king on g1")
	}
	if piece, present := b.PieceAt(board.F1); !present || piece.Kind() != board.Rook {
		t.Error("expected the rook on f1")
	}
	if _, present := b.PieceAt(board.E1); present {
		t.Error("expected e1 to be empty")
	}
	if _, present := b.PieceAt(board.H1); present {
		t.Error("expected h1 to be empty")
	}

	rights := b.CastlingRights()
	if rights.CanCastle(board.White, true) || rights.CanCastle(board.White, false) {
		t.Error("expected White's castling rights to be fully cleared")
	}
}

func TestNoCastlingThroughCheck(t *testing.T) {
	b, err := FromSerialized("r3k2r/pppp1ppp/8/4r3/8/8/PPPP1PPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	targets := b.TargetSquaresFrom(board.E1)
	for _, sq := range targets {
		if sq == board.G1 || sq == board.C1 {
			t.Errorf("castling destination %v should not be reachable while passing through check", sq)
		}
	}
}

func TestPinPreventsMove(t *testing.T) {
	// Black rook d8, white bishop d4, white king d1: the bishop is pinned
	// on the d-file, so every diagonal move would expose the king.
	b, err := FromSerialized("3r4/8/8/8/3B4/8/8/3K3k w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if moves := b.LegalMovesFrom(board.D4); len(moves) != 0 {
		t.Errorf("expected the pinned bishop to have no legal moves, got %v", moves)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	b, err := FromSerialized("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if got := b.TerminalState(); got != DrawInsufficientMaterial {
		t.Errorf("TerminalState() = %v, want %v", got, DrawInsufficientMaterial)
	}
}

func TestExecuteMoveRejectsMismatchedPiece(t *testing.T) {
	b := NewBoard()

	// There is no knight on e2; the board must reject rather than mutate.
	before := b.Serialize()
	ok := b.ExecuteMove(board.Move{Kind: board.Knight, Color: board.White, From: board.E2, To: board.E4})
	if ok {
		t.Fatal("expected mismatched-piece move to be rejected")
	}
	if after := b.Serialize(); after != before {
		t.Errorf("rejected move mutated the board: before=%q after=%q", before, after)
	}
}

func TestLegalMoveFieldsMatchOrigin(t *testing.T) {
	b, err := FromSerialized("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		for _, m := range b.LegalMovesFrom(sq) {
			if m.From != sq {
				t.Errorf("move %v listed under square %v", m, sq)
			}
			piece, ok := b.PieceAt(sq)
			if !ok || piece.Kind() != m.Kind {
				t.Errorf("move %v disagrees with the piece on %v (%v)", m, sq, piece)
			}
			if m.Color != b.SideToMove() {
				t.Errorf("move %v is not for the side to move (%v)", m, b.SideToMove())
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	clone := b.Clone()

	clone.ExecuteMove(board.Move{Kind: board.Pawn, Color: board.White, From: board.E2, To: board.E4})

	if diff := cmp.Diff(b.Serialize(), board.StartFEN); diff != "" {
		t.Errorf("original board mutated after cloning (-got +want):\n%s", diff)
	}
	if clone.Serialize() == b.Serialize() {
		t.Error("expected clone to diverge from the original after mutation")
	}
}
