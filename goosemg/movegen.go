package goosemg

// Component I (expansion): reference move generator. Not part of the
// invariant-bearing core — spec.md treats move generation as an external
// pure function over a Position. Grounded on the teacher's
// goosemg/movegen.go (generateMovesFilteredInto family, Perft/PerftDivide),
// rewritten to sit on top of the component-E legality primitives rather than
// duplicating its own check/pin computation.

// GenerateLegalMoves appends every legal move in pos to dst and returns the
// extended slice.
func GenerateLegalMoves(pos *Position, dst []Move) []Move {
	us := pos.sideToMove
	pinned := PinnedPieces(pos, us)

	dst = generatePseudoLegal(pos, dst)
	n := 0
	for _, m := range dst {
		if legal(pos, m, pinned) {
			dst[n] = m
			n++
		}
	}
	return dst[:n]
}

// generatePseudoLegal appends every pseudo-legal move, including castles.
func generatePseudoLegal(pos *Position, dst []Move) []Move {
	us := pos.sideToMove
	occ := pos.Pieces()
	friendly := pos.PiecesOfColor(us)

	for bb := pos.PiecesColorType(us, Pawn); bb != 0; {
		from := PopLsb(&bb)
		dst = genPawnMoves(pos, us, from, dst)
	}
	for pt := Knight; pt <= King; pt++ {
		for bb := pos.PiecesColorType(us, pt); bb != 0; {
			from := PopLsb(&bb)
			targets := AttacksBB(pt, from, occ) &^ friendly
			for t := targets; t != 0; {
				to := PopLsb(&t)
				m := NewMove(from, to, Normal)
				if pseudoLegal(pos, m) {
					dst = append(dst, m)
				}
			}
		}
	}
	dst = genCastles(pos, us, dst)
	return dst
}

func genPawnMoves(pos *Position, us Color, from Square, dst []Move) []Move {
	them := us.Opposite()
	push := pawnPush(us)
	promoRank := RelativeRank(us, 7)

	addMove := func(to Square, kind MoveKind) {
		if kind == Normal && to.Rank() == promoRank {
			for pt := Knight; pt <= Queen; pt++ {
				m := NewPromotionMove(from, to, pt)
				if pseudoLegal(pos, m) {
					dst = append(dst, m)
				}
			}
			return
		}
		m := NewMove(from, to, kind)
		if pseudoLegal(pos, m) {
			dst = append(dst, m)
		}
	}

	one := from + Square(push)
	if one >= 0 && one < 64 && pos.PieceOn(one) == NoPiece {
		addMove(one, Normal)
		startRank := Rank(1)
		if us == Black {
			startRank = 6
		}
		if from.Rank() == startRank {
			two := from + Square(2*push)
			if pos.PieceOn(two) == NoPiece {
				addMove(two, Normal)
			}
		}
	}

	for t := PawnAttacksFrom(us, from); t != 0; {
		to := PopLsb(&t)
		target := pos.PieceOn(to)
		if target != NoPiece && target.Color() == them {
			addMove(to, Normal)
		} else if to == pos.st.EPSquare {
			addMove(to, EnPassant)
		}
	}
	return dst
}

func genCastles(pos *Position, us Color, dst []Move) []Move {
	if pos.InCheck() {
		return dst
	}
	kingFrom := pos.KingSquare(us)
	them := us.Opposite()

	for _, side := range [2]CastlingSide{KingSide, QueenSide} {
		if !pos.CanCastle(rightsFor(us, side)) {
			continue
		}
		if pos.CastlingImpeded(us, side) {
			continue
		}
		rookFrom := pos.castleRookSquare[us][side]
		kingTo := relativeCastleSquare(us, side, true)

		blocked := false
		path := squaresBetweenInclusive(kingFrom, kingTo) &^ SquareBB(kingFrom)
		for p := path; p != 0; {
			sq := PopLsb(&p)
			occWithoutKingRook := (pos.Pieces() &^ SquareBB(kingFrom) &^ SquareBB(rookFrom))
			if attackersTo(pos, sq, occWithoutKingRook)&pos.PiecesOfColor(them) != 0 {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		dst = append(dst, NewMove(kingFrom, rookFrom, Castle))
	}
	return dst
}

// Perft counts leaf nodes at depth by recursively applying every legal move.
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(pos, make([]Move, 0, 64))
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	var st StateInfo
	for _, m := range moves {
		ci := NewCheckInfo(pos)
		gc := movesGivesCheck(pos, m, ci)
		doMove(pos, m, &st, ci, gc)
		nodes += Perft(pos, depth-1)
		undoMove(pos, m)
	}
	return nodes
}

// PerftDivide returns per-root-move leaf counts at depth, for debugging
// generator/make-unmake discrepancies against a reference engine.
func PerftDivide(pos *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	moves := GenerateLegalMoves(pos, make([]Move, 0, 64))
	var st StateInfo
	for _, m := range moves {
		ci := NewCheckInfo(pos)
		gc := movesGivesCheck(pos, m, ci)
		doMove(pos, m, &st, ci, gc)
		if depth <= 1 {
			result[m] = 1
		} else {
			result[m] = Perft(pos, depth-1)
		}
		undoMove(pos, m)
	}
	return result
}
