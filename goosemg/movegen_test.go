package goosemg

import "testing"

func TestPerftDepth1StartPosition(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got := Perft(pos, 1); got != 20 {
		t.Fatalf("Perft(start, 1) = %d, want 20", got)
	}
}

func TestPerftDepth2StartPosition(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got := Perft(pos, 2); got != 400 {
		t.Fatalf("Perft(start, 2) = %d, want 400", got)
	}
}

func TestPerftDepth3StartPosition(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got := Perft(pos, 3); got != 8902 {
		t.Fatalf("Perft(start, 3) = %d, want 8902", got)
	}
}

// TestPerftDepth5StartPosition exercises spec.md §8 scenario 6. It is slow
// (~4.8M leaf nodes) and is skipped under -short.
func TestPerftDepth5StartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft depth 5 in -short mode")
	}
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if got := Perft(pos, 5); got != 4865609 {
		t.Fatalf("Perft(start, 5) = %d, want 4865609", got)
	}
}

func TestPerftKiwipeteDepth1(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(kiwipete) error: %v", err)
	}
	if got := Perft(pos, 1); got != 48 {
		t.Fatalf("Perft(kiwipete, 1) = %d, want 48", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	div := PerftDivide(pos, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	want := Perft(pos, 3)
	if sum != want {
		t.Fatalf("PerftDivide(start, 3) sums to %d, want %d", sum, want)
	}
}
