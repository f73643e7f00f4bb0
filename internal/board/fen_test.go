package board

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/8/8/3Pp3/8/8/8/4K2k w - e6 0 1",
		"3Q4/8/8/8/3Q4/8/8/4K2k w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 12 40",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.Serialize(); got != fen {
			t.Errorf("round trip of %q produced %q", fen, got)
		}
	}
}

func TestFENMissingClockFieldsDefault(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}

	if pos.HalfmoveClock() != 0 {
		t.Errorf("HalfmoveClock() = %d, want 0", pos.HalfmoveClock())
	}
	if pos.FullmoveNumber() != 1 {
		t.Errorf("FullmoveNumber() = %d, want 1", pos.FullmoveNumber())
	}

	// The emitter always produces all six fields.
	want := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	if got := pos.Serialize(); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",               // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // seven ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // rank overflow
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",  // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad en passant
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", // bad halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",  // bad fullmove
		"8/8/8/8/8/8/8/K7 w - - 0 1",                                // missing black king
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}
}

func TestParseFENReadsState(t *testing.T) {
	pos, err := ParseFEN("8/8/8/3Pp3/8/8/8/4K2k w - e6 0 1")
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}

	if pos.SideToMove() != White {
		t.Errorf("SideToMove() = %v, want White", pos.SideToMove())
	}
	if pos.CastlingRights() != NoCastling {
		t.Errorf("CastlingRights() = %v, want none", pos.CastlingRights())
	}
	ep, hasEP := pos.EnPassantTarget()
	if !hasEP || ep != E6 {
		t.Errorf("EnPassantTarget() = %v (hasEP=%v), want e6", ep, hasEP)
	}
	if piece, ok := pos.PieceAt(D5); !ok || piece != WhitePawn {
		t.Errorf("PieceAt(d5) = %v, want white pawn", piece)
	}
	if pos.KingSquare(Black) != H1 {
		t.Errorf("KingSquare(Black) = %v, want h1", pos.KingSquare(Black))
	}
}
