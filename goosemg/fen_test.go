package goosemg

import "testing"

func TestParseFENStartPos(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN(start) error: %v", err)
	}
	counts := map[PieceType]int{Pawn: 8, Knight: 2, Bishop: 2, Rook: 2, Queen: 1, King: 1}
	for pt, want := range counts {
		for _, c := range [2]Color{White, Black} {
			if got := pos.PieceCount(c, pt); got != want {
				t.Errorf("PieceCount(%v,%v) = %d, want %d", c, pt, got, want)
			}
		}
	}
	if pos.InCheck() {
		t.Errorf("start position should not be in check")
	}
	if pos.CastleRights() != AnyCastling {
		t.Errorf("start position should have all castling rights, got %b", pos.CastleRights())
	}
	if pos.EPSquare() != NoSquare {
		t.Errorf("start position should have no ep square")
	}
}

func TestEmitFENRoundTrip(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	emitted := EmitFEN(pos)
	if emitted != FENStartPos {
		t.Fatalf("EmitFEN(start) = %q, want %q", emitted, FENStartPos)
	}

	pos2, err := ParseFEN(emitted)
	if err != nil {
		t.Fatalf("re-ParseFEN error: %v", err)
	}
	emitted2 := EmitFEN(pos2)
	if emitted != emitted2 {
		t.Fatalf("emit is not idempotent: %q != %q", emitted, emitted2)
	}
}

func TestParseFENEnPassantAfterE2E4(t *testing.T) {
	// e2e4 played: the FEN names e3 as the ep square, but no black pawn stands on
	// d4 or f4 to capture onto it, so the parser's standardization clears it.
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if pos.EPSquare() != NoSquare {
		t.Fatalf("ep square should be cleared: no black pawn can capture onto e3 from this placement, got %v", pos.EPSquare())
	}
}

func TestParseFENKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(kiwipete) error: %v", err)
	}
	if pos.CastleRights() != AnyCastling {
		t.Fatalf("kiwipete should have all four castling rights, got %b", pos.CastleRights())
	}
	if pos.KingSquare(White) != MakeSquare(4, 0) {
		t.Fatalf("white king should be on e1, got %v", pos.KingSquare(White))
	}
	if got := EmitFEN(pos); got != fen {
		t.Fatalf("EmitFEN(kiwipete) = %q, want %q", got, fen)
	}
}

func TestParseFENChess960Shredder(t *testing.T) {
	// A Chess960-style back rank with rooks on b1/g1 and king on e1.
	fen := "nrbqkbrn/pppppppp/8/8/8/8/PPPPPPPP/NRBQKBRN w BGbg - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(960) error: %v", err)
	}
	if !pos.Chess960() {
		t.Fatalf("Shredder castling letters should set chess960")
	}
	if pos.CastleRights() != AnyCastling {
		t.Fatalf("expected all rights from BGbg, got %b", pos.CastleRights())
	}
	kingSideRook := pos.CastleRookSquare(White, KingSide)
	if kingSideRook != MakeSquare(6, 0) {
		t.Fatalf("white king-side rook should start on g1, got %v", kingSideRook)
	}
}
