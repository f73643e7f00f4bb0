package board

// UndoInfo carries everything MakeMove destroys, so UnmakeMove can restore
// the position exactly. The legality filter relies on this to apply a
// candidate move, probe for check, then revert.
type UndoInfo struct {
	CapturedPiece  Piece
	CapturedSquare Square
	PrevCastling   CastlingRights
	PrevEnPassant  Square
	PrevHalfmove   int
	WasEnPassant   bool
	WasCastle      bool
	RookFrom       Square
	RookTo         Square
	WasPromotion   bool
}

// GeneratePseudoMoves returns every move that obeys piece-movement rules
// and board occupancy, without checking whether it leaves the mover's own
// king in check. Castling candidates are included; their legality (empty
// path, no square passed through under attack) is checked here since it
// is cheap and otherwise indistinguishable from "pseudo-legal".
func (p *Position) GeneratePseudoMoves() MoveList {
	moves := make(MoveList, 0, 48)
	c := p.sideToMove

	moves = p.generatePawnMoves(moves, c)
	moves = p.generatePieceMoves(moves, c, Knight)
	moves = p.generatePieceMoves(moves, c, Bishop)
	moves = p.generatePieceMoves(moves, c, Rook)
	moves = p.generatePieceMoves(moves, c, Queen)
	moves = p.generatePieceMoves(moves, c, King)
	moves = p.generateCastlingMoves(moves, c)

	return moves
}

func (p *Position) generatePawnMoves(moves MoveList, c Color) MoveList {
	own := p.occupied[c]
	enemy := p.occupied[c.Other()]

	var forward func(Bitboard) Bitboard
	var startRank Bitboard
	if c == White {
		forward = Bitboard.North
		startRank = Rank2
	} else {
		forward = Bitboard.South
		startRank = Rank7
	}

	p.pieces[c][Pawn].ForEach(func(from Square) {
		fromBB := SquareBB(from)

		one := forward(fromBB) &^ (own | enemy)
		if one != 0 {
			to := one.LSB()
			moves = append(moves, Move{Kind: Pawn, Color: c, From: from, To: to})

			if fromBB&startRank != 0 {
				two := forward(one) &^ (own | enemy)
				if two != 0 {
					moves = append(moves, Move{Kind: Pawn, Color: c, From: from, To: two.LSB()})
				}
			}
		}

		attacks := PawnAttacks(from, c)
		targets := attacks & enemy
		if ep, hasEP := p.EnPassantTarget(); hasEP && attacks.IsSet(ep) {
			targets |= SquareBB(ep)
		}
		targets.ForEach(func(to Square) {
			moves = append(moves, Move{Kind: Pawn, Color: c, From: from, To: to})
		})
	})

	return moves
}

func (p *Position) generatePieceMoves(moves MoveList, c Color, kind PieceKind) MoveList {
	own := p.occupied[c]
	occ := p.all

	p.pieces[c][kind].ForEach(func(from Square) {
		var targets Bitboard
		switch kind {
		case Knight:
			targets = KnightAttacks(from)
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		case King:
			targets = KingAttacks(from)
		}
		targets &^= own

		targets.ForEach(func(to Square) {
			moves = append(moves, Move{Kind: kind, Color: c, From: from, To: to})
		})
	})

	return moves
}

func (p *Position) generateCastlingMoves(moves MoveList, c Color) MoveList {
	if p.IsInCheck() {
		return moves
	}

	opponent := c.Other()
	var kingStart, kingSideEnd, queenSideEnd Square
	var kingSideBetween, queenSideBetween Bitboard

	if c == White {
		kingStart = E1
		kingSideEnd = G1
		queenSideEnd = C1
		kingSideBetween = SquareBB(F1) | SquareBB(G1)
		queenSideBetween = SquareBB(B1) | SquareBB(C1) | SquareBB(D1)
	} else {
		kingStart = E8
		kingSideEnd = G8
		queenSideEnd = C8
		kingSideBetween = SquareBB(F8) | SquareBB(G8)
		queenSideBetween = SquareBB(B8) | SquareBB(C8) | SquareBB(D8)
	}

	if p.castlingRights.CanCastle(c, true) && p.all&kingSideBetween == 0 {
		passThrough := [2]Square{kingStart, kingStart + 1}
		if !p.IsAttacked(passThrough[0], opponent) && !p.IsAttacked(passThrough[1], opponent) && !p.IsAttacked(kingSideEnd, opponent) {
			moves = append(moves, Move{Kind: King, Color: c, From: kingStart, To: kingSideEnd})
		}
	}

	if p.castlingRights.CanCastle(c, false) && p.all&queenSideBetween == 0 {
		passThrough := [2]Square{kingStart, kingStart - 1}
		if !p.IsAttacked(passThrough[0], opponent) && !p.IsAttacked(passThrough[1], opponent) && !p.IsAttacked(queenSideEnd, opponent) {
			moves = append(moves, Move{Kind: King, Color: c, From: kingStart, To: queenSideEnd})
		}
	}

	return moves
}

// LegalMoves returns every pseudo-legal move that does not leave the
// mover's own king in check, by making and unmaking each candidate.
func (p *Position) LegalMoves() MoveList {
	candidates := p.GeneratePseudoMoves()
	legal := make(MoveList, 0, len(candidates))

	mover := p.sideToMove
	for _, m := range candidates {
		undo := p.MakeMove(m)
		if !p.IsAttacked(p.kingSquare[mover], mover.Other()) {
			legal = append(legal, m)
		}
		p.UnmakeMove(m, undo)
	}

	return legal
}

// IsLegal reports whether m names an actual pseudo-legal move the position
// could produce and does not leave the mover's king in check.
func (p *Position) IsLegal(m Move) bool {
	for _, candidate := range p.GeneratePseudoMoves() {
		if candidate == m {
			mover := p.sideToMove
			undo := p.MakeMove(m)
			inCheck := p.IsAttacked(p.kingSquare[mover], mover.Other())
			p.UnmakeMove(m, undo)
			return !inCheck
		}
	}
	return false
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	candidates := p.GeneratePseudoMoves()
	mover := p.sideToMove
	for _, m := range candidates {
		undo := p.MakeMove(m)
		stillLegal := !p.IsAttacked(p.kingSquare[mover], mover.Other())
		p.UnmakeMove(m, undo)
		if stillLegal {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (p *Position) IsCheckmate() bool {
	return p.IsInCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has no legal moves.
func (p *Position) IsStalemate() bool {
	return !p.IsInCheck() && !p.HasLegalMoves()
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move-rule threshold of 100 plies.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfmoveClock >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves: king-only vs.
// king-only, king+minor vs. king-only, or king+bishop vs. king+bishop
// with both bishops on the same square color. Any pawn, rook, or queen
// on the board, or two or more minors on one side outside the
// single-bishop-each case, rules out the draw.
func (p *Position) IsInsufficientMaterial() bool {
	for _, c := range [2]Color{White, Black} {
		if p.pieces[c][Pawn] != 0 || p.pieces[c][Rook] != 0 || p.pieces[c][Queen] != 0 {
			return false
		}
	}

	whiteMinors := p.pieces[White][Bishop].PopCount() + p.pieces[White][Knight].PopCount()
	blackMinors := p.pieces[Black][Bishop].PopCount() + p.pieces[Black][Knight].PopCount()

	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 1 &&
		p.pieces[White][Knight] == 0 && p.pieces[Black][Knight] == 0 {
		whiteBishopSq := p.pieces[White][Bishop].LSB()
		blackBishopSq := p.pieces[Black][Bishop].LSB()
		return squareColor(whiteBishopSq) == squareColor(blackBishopSq)
	}

	return false
}

func squareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) % 2
}

// MakeMove applies m to the position, following the ten-step execute-move
// sequence: remove any en-passant victim, relocate a castling rook, remove
// any normally-captured piece, relocate the mover (auto-queening a pawn
// that lands on the back rank), update the en-passant target, update
// castling rights, update the halfmove clock, advance the fullmove number
// after Black moves, and swap the side to move. It returns the information
// UnmakeMove needs to reverse all of it.
func (p *Position) MakeMove(m Move) UndoInfo {
	var undo UndoInfo
	undo.PrevCastling = p.castlingRights
	undo.PrevEnPassant = p.enPassant
	undo.PrevHalfmove = p.halfmoveClock
	undo.CapturedSquare = NoSquare
	undo.CapturedPiece = NoPiece

	isEnPassant := m.Kind == Pawn && m.To == p.enPassant && p.IsEmpty(m.To) && m.From.File() != m.To.File()
	if isEnPassant {
		undo.WasEnPassant = true
		capSq := NewSquare(int(m.To.File()), int(m.From.Rank()))
		undo.CapturedSquare = capSq
		undo.CapturedPiece = p.removePiece(capSq)
	}

	isCastle := m.Kind == King && fileDelta(m.From, m.To) == 2
	if isCastle {
		undo.WasCastle = true
		rank := m.From.Rank()
		if m.To.File() > m.From.File() {
			undo.RookFrom = NewSquare(7, rank)
			undo.RookTo = NewSquare(5, rank)
		} else {
			undo.RookFrom = NewSquare(0, rank)
			undo.RookTo = NewSquare(3, rank)
		}
		p.movePiece(undo.RookFrom, undo.RookTo)
	}

	if !isEnPassant {
		if captured, ok := p.PieceAt(m.To); ok {
			undo.CapturedSquare = m.To
			undo.CapturedPiece = captured
			p.removePiece(m.To)
		}
	}

	p.movePiece(m.From, m.To)

	backRank := (m.Color == White && m.To.Rank() == 7) || (m.Color == Black && m.To.Rank() == 0)
	if m.Kind == Pawn && backRank {
		undo.WasPromotion = true
		p.removePiece(m.To)
		p.setPiece(NewPiece(Queen, m.Color), m.To)
	}

	p.enPassant = NoSquare
	if m.Kind == Pawn && absInt(int(m.To.Rank())-int(m.From.Rank())) == 2 {
		p.enPassant = NewSquare(int(m.From.File()), (int(m.From.Rank())+int(m.To.Rank()))/2)
	}

	p.updateCastlingRights(m)

	if m.Kind == Pawn || undo.CapturedPiece != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if p.sideToMove == Black {
		p.fullmoveNumber++
	}

	p.sideToMove = p.sideToMove.Other()

	return undo
}

// UnmakeMove reverses the effect of MakeMove(m), restoring the position
// to exactly what it was before, using the UndoInfo MakeMove produced.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	p.sideToMove = p.sideToMove.Other()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}

	p.castlingRights = undo.PrevCastling
	p.enPassant = undo.PrevEnPassant
	p.halfmoveClock = undo.PrevHalfmove

	if undo.WasPromotion {
		p.removePiece(m.To)
		p.setPiece(NewPiece(Pawn, m.Color), m.To)
		p.movePiece(m.To, m.From)
	} else {
		p.movePiece(m.To, m.From)
	}

	if undo.WasCastle {
		p.movePiece(undo.RookTo, undo.RookFrom)
	}

	if undo.CapturedPiece != NoPiece {
		p.setPiece(undo.CapturedPiece, undo.CapturedSquare)
	}
}

func (p *Position) updateCastlingRights(m Move) {
	clearIfTouched := func(sq Square, right CastlingRights) {
		if m.From == sq || m.To == sq {
			p.castlingRights &^= right
		}
	}

	if m.Kind == King {
		if m.Color == White {
			p.castlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.castlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	clearIfTouched(A1, WhiteQueenSideCastle)
	clearIfTouched(H1, WhiteKingSideCastle)
	clearIfTouched(A8, BlackQueenSideCastle)
	clearIfTouched(H8, BlackKingSideCastle)
}

func fileDelta(from, to Square) int {
	return absInt(int(to.File()) - int(from.File()))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
