package goosemg

import "testing"

func TestCastleKeysXORComposable(t *testing.T) {
	for a := 0; a < 16; a++ {
		for b := 0; b < 16; b++ {
			got := zobrist.castle[a] ^ zobrist.castle[b]
			want := zobrist.castle[a^b]
			if got != want {
				t.Fatalf("castle[%d]^castle[%d] = %d, want castle[%d] = %d", a, b, got, a^b, want)
			}
		}
	}
}

func TestZobristTablesDeterministic(t *testing.T) {
	k1 := psqKey(White, Pawn, 12)
	initZobrist()
	k2 := psqKey(White, Pawn, 12)
	if k1 != k2 {
		t.Fatalf("zobrist tables are not deterministic across re-init: %d != %d", k1, k2)
	}
}

func TestZobristPSQAllDistinctForSamples(t *testing.T) {
	seen := map[Key]bool{}
	for c := Color(White); c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			k := psqKey(c, pt, 0)
			if seen[k] {
				t.Fatalf("duplicate zobrist key at square 0 for (color=%v, type=%v)", c, pt)
			}
			seen[k] = true
		}
	}
}
