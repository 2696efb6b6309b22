package goosemg

import "math/rand"

// Zobrist is the process-wide, read-only hash schedule (component B). It is
// built once from a deterministic PRNG so that hash values are stable across
// processes, grounded on the teacher's goosemg/zobrist.go initZobrist.
var zobrist struct {
	psq       [2][pieceTypeNB][64]Key // indexed [color][type][square]; type 0 (AllPieces) unused
	enpassant [8]Key
	castle    [16]Key
	side      Key
	exclusion Key
}

func init() {
	initZobrist()
}

// initZobrist fills every table from a fixed-seed PRNG. The castle table is
// built from four independent base keys (one per CastlingRights bit) so that
// castle[a]^castle[b] == castle[a^b] for any two masks a, b, per spec.
func initZobrist() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := Color(White); c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobrist.psq[c][pt][sq] = rnd.Uint64()
			}
		}
	}

	for f := 0; f < 8; f++ {
		zobrist.enpassant[f] = rnd.Uint64()
	}

	var base [4]Key
	for i := range base {
		base[i] = rnd.Uint64()
	}
	for mask := 0; mask < 16; mask++ {
		var k Key
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) != 0 {
				k ^= base[bit]
			}
		}
		zobrist.castle[mask] = k
	}

	zobrist.side = rnd.Uint64()
	zobrist.exclusion = rnd.Uint64()
}

func psqKey(c Color, pt PieceType, s Square) Key { return zobrist.psq[c][pt][s] }
