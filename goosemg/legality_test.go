package goosemg

import "testing"

func TestAttackersToStartPosition(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	e3 := MakeSquare(4, 2)
	att := AttackersTo(pos, e3)
	want := SquareBB(MakeSquare(3, 1)) | SquareBB(MakeSquare(5, 1))
	if att&pos.PiecesOfColor(White) != want {
		t.Fatalf("e3 should be attacked by exactly the white pawns on d2 and f2 in the start position, got %x", att&pos.PiecesOfColor(White))
	}
}

func TestLegalMoveCountStartPosition(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	moves := GenerateLegalMoves(pos, nil)
	if len(moves) != 20 {
		t.Fatalf("start position should have 20 legal moves, got %d", len(moves))
	}
}

func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	// White king e1, white bishop e2, black rook e8: bishop is pinned on the e-file.
	fen := "4r3/8/8/8/8/8/4B3/4K3 w - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	pinned := PinnedPieces(pos, White)
	e2 := MakeSquare(4, 1)
	if pinned&SquareBB(e2) == 0 {
		t.Fatalf("bishop on e2 should be pinned by the rook on e8")
	}
	m := NewMove(e2, MakeSquare(1, 4), Normal) // e2-b5, off the pin line
	if legal(pos, m, pinned) {
		t.Fatalf("moving the pinned bishop off the e-file should be illegal")
	}
	m2 := NewMove(e2, MakeSquare(4, 4), Normal) // e2-e5, stays on the pin line
	if !legal(pos, m2, pinned) {
		t.Fatalf("moving the pinned bishop along the pin line should be legal")
	}
}

func TestMovesGivesCheckDirect(t *testing.T) {
	// White rook a1, black king a8: Ra1-a7 gives check.
	fen := "k7/8/8/8/8/8/8/R3K3 w - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	ci := NewCheckInfo(pos)
	m := NewMove(MakeSquare(0, 0), MakeSquare(0, 6), Normal)
	if !movesGivesCheck(pos, m, ci) {
		t.Fatalf("Ra1-a7 should give check to the king on a8")
	}
}
