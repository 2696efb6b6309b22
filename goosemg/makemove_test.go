package goosemg

import "testing"

func playMove(t *testing.T, pos *Position, from, to Square, kind MoveKind) (Move, *StateInfo) {
	t.Helper()
	m := NewMove(from, to, kind)
	ci := NewCheckInfo(pos)
	gc := movesGivesCheck(pos, m, ci)
	st := &StateInfo{}
	doMove(pos, m, st, ci, gc)
	return m, st
}

func TestDoUndoMoveRestoresState(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	before := *pos.st
	beforeSide := pos.sideToMove

	m, _ := playMove(t, pos, MakeSquare(4, 1), MakeSquare(4, 3), Normal) // e2-e4
	if pos.EPSquare() != MakeSquare(4, 2) {
		t.Fatalf("e2e4 should set ep square to e3, got %v", pos.EPSquare())
	}
	if pos.Rule50() != 0 {
		t.Fatalf("pawn move should reset rule50")
	}

	undoMove(pos, m)

	if pos.sideToMove != beforeSide {
		t.Fatalf("undo did not restore side to move")
	}
	if pos.st.Key != before.Key {
		t.Fatalf("undo did not restore key: got %d, want %d", pos.st.Key, before.Key)
	}
	if pos.st.PSQScore != before.PSQScore {
		t.Fatalf("undo did not restore psqScore")
	}
	if pos.PieceOn(MakeSquare(4, 1)) != WhitePawn {
		t.Fatalf("undo did not restore the pawn to e2")
	}
	if pos.PieceOn(MakeSquare(4, 3)) != NoPiece {
		t.Fatalf("undo did not vacate e4")
	}
	if f := Audit(pos); f != nil {
		t.Fatalf("audit failed after undo at step %d: %v", f.Step, f.Msg)
	}
}

func TestTwoPlyRoundTrip(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	before := *pos.st

	m1, _ := playMove(t, pos, MakeSquare(4, 1), MakeSquare(4, 3), Normal) // e2e4
	m2, _ := playMove(t, pos, MakeSquare(2, 6), MakeSquare(2, 4), Normal) // c7c5

	undoMove(pos, m2)
	undoMove(pos, m1)

	if pos.st.Key != before.Key {
		t.Fatalf("two-ply round trip did not restore key")
	}
	if pos.sideToMove != White {
		t.Fatalf("two-ply round trip did not restore side to move")
	}
}

func TestKiwipeteCastleAndUndo(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(kiwipete) error: %v", err)
	}
	before := *pos.st
	beforeRights := pos.CastleRights()

	e1 := MakeSquare(4, 0)
	h1 := MakeSquare(7, 0)
	m, _ := playMove(t, pos, e1, h1, Castle)

	if pos.KingSquare(White) != MakeSquare(6, 0) {
		t.Fatalf("castled king should be on g1, got %v", pos.KingSquare(White))
	}
	if pos.PieceOn(MakeSquare(5, 0)) != WhiteRook {
		t.Fatalf("castled rook should be on f1")
	}
	if pos.CanCastle(WhiteKingSide) || pos.CanCastle(WhiteQueenSide) {
		t.Fatalf("white castling rights should be cleared after castling")
	}

	undoMove(pos, m)

	if pos.st.Key != before.Key {
		t.Fatalf("castle undo did not restore key: got %d, want %d", pos.st.Key, before.Key)
	}
	if pos.st.PSQScore != before.PSQScore {
		t.Fatalf("castle undo did not restore psqScore")
	}
	if pos.CastleRights() != beforeRights {
		t.Fatalf("castle undo did not restore castling rights")
	}
	if pos.KingSquare(White) != e1 {
		t.Fatalf("castle undo did not restore king to e1")
	}
	if pos.PieceOn(h1) != WhiteRook {
		t.Fatalf("castle undo did not restore rook to h1")
	}
	if f := Audit(pos); f != nil {
		t.Fatalf("audit failed after castle undo at step %d: %v", f.Step, f.Msg)
	}
}

func TestDoNullMoveUndoNullMove(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	before := *pos.st
	beforeSide := pos.sideToMove

	var st StateInfo
	doNullMove(pos, &st)
	if pos.sideToMove == beforeSide {
		t.Fatalf("doNullMove should flip side to move")
	}
	if pos.EPSquare() != NoSquare {
		t.Fatalf("doNullMove should clear ep square")
	}

	undoNullMove(pos)
	if pos.sideToMove != beforeSide {
		t.Fatalf("undoNullMove should restore side to move")
	}
	if pos.st.Key != before.Key {
		t.Fatalf("undoNullMove should restore the previous key")
	}
}
