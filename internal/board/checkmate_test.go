package board

import "testing"

func TestCheckmate(t *testing.T) {
	// Back-rank mate: White Ra8, Ka1; Black Kh8 boxed in by its own pawns.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Checkmate position:")
	t.Log(pos)
	t.Log("InCheck:", pos.IsInCheck())

	blackMoves := pos.LegalMoves()
	t.Log("Black legal moves:", len(blackMoves))
	for _, m := range blackMoves {
		t.Log("  Move:", m)
	}

	t.Log("HasLegalMoves:", pos.HasLegalMoves())
	t.Log("IsCheckmate:", pos.IsCheckmate())
	t.Log("IsStalemate:", pos.IsStalemate())

	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Black king on h8 can simply capture the checking rook on g8.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Not checkmate position (king can capture rook):")
	t.Log(pos)
	t.Log("InCheck:", pos.IsInCheck())

	blackMoves := pos.LegalMoves()
	t.Log("Black legal moves:", len(blackMoves))
	for _, m := range blackMoves {
		t.Log("  Move:", m)
	}

	t.Log("IsCheckmate:", pos.IsCheckmate())

	if pos.IsCheckmate() {
		t.Error("Expected NOT checkmate but got true")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: Black king on h8 has no legal move and is not in check.
	pos, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.IsInCheck() {
		t.Fatal("expected black king not in check")
	}
	if !pos.IsStalemate() {
		t.Error("Expected stalemate but got false")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate position incorrectly reported as checkmate")
	}
}
