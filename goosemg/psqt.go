package goosemg

// Piece-square tables and material values. This is deliberately not an
// evaluation function (that stays out of scope per spec.md §1) — it exists
// solely to give psqScore/npMaterial something concrete to maintain
// incrementally. Values are grounded on the shape of the teacher's
// engine/init.go setPieceValues (a small, fixed per-type midgame/endgame
// value table) but sized down to a single generation, not a tunable set.

// PieceValue holds the midgame/endgame material value of one piece type.
var PieceValue = [pieceTypeNB]Score{
	NoPieceType: {0, 0},
	Pawn:        {126, 208},
	Knight:      {781, 854},
	Bishop:      {825, 915},
	Rook:        {1276, 1380},
	Queen:       {2538, 2682},
	King:        {0, 0},
}

// psqt[type][square] holds the White-relative piece-square bonus; Black's
// bonus at a square is White's bonus at the vertically mirrored square,
// negated (RelativeSquare handles the mirroring in psqBonus below).
var psqt [pieceTypeNB][64]Score

func init() {
	initPsqt()
}

// initPsqt derives a modest table from a handful of per-type/per-rank-and-
// centrality terms rather than hand-writing 64 entries per piece — enough to
// exercise incremental psqScore maintenance without pretending to be a real
// evaluation function.
func initPsqt() {
	centrality := func(s Square) int16 {
		f, r := int(s.File()), int(s.Rank())
		df, dr := f, r
		if df > 7-f {
			df = 7 - f
		}
		if dr > 7-r {
			dr = 7 - r
		}
		return int16(df + dr)
	}
	for pt := Pawn; pt <= King; pt++ {
		for sq := 0; sq < 64; sq++ {
			s := Square(sq)
			c := centrality(s)
			switch pt {
			case Pawn:
				adv := int16(s.Rank())
				psqt[pt][sq] = Score{4 * adv, 6 * adv}
			case Knight, Bishop:
				psqt[pt][sq] = Score{4 * c, 3 * c}
			case Rook:
				psqt[pt][sq] = Score{2 * c, 2 * c}
			case Queen:
				psqt[pt][sq] = Score{2 * c, 3 * c}
			case King:
				psqt[pt][sq] = Score{-4 * c, 4 * c}
			}
		}
	}
}

// psqBonus returns the incremental piece-square contribution of piece p sitting on s,
// signed so that White's bonus is positive and Black's is negative.
func psqBonus(p Piece, s Square) Score {
	rel := RelativeSquare(p.Color(), s)
	b := psqt[p.Type()][rel]
	if p.Color() == Black {
		return b.Negate()
	}
	return b
}

// materialValue returns the signed material value (White positive) of piece p.
func materialValue(p Piece) Score {
	v := PieceValue[p.Type()]
	if p.Color() == Black {
		return v.Negate()
	}
	return v
}
