package goosemg

// Component F: make/unmake. Grounded on the teacher's goosemg/makemove.go
// (capture-branch dispatch, castling rook-move tables, double-push detection)
// generalized from Board to Position/StateInfo, and with one deliberate
// departure: the teacher's MakeMove re-checks king safety after applying a
// move and rolls back via UnmakeMove if illegal. spec.md §4.F/§5 assume the
// caller has already established legality via pseudoLegal/legal before
// calling doMove, so that try-then-rollback style is not carried forward —
// doMove here has no failure path.

// doMove applies m to pos, pushing newSt as the new top of the StateInfo
// stack. ci must be the CheckInfo computed before the move was made;
// givesCheck must be the result of movesGivesCheck(pos, m, ci). The caller
// must have already established m is legal.
func doMove(pos *Position, m Move, newSt *StateInfo, ci CheckInfo, givesCheck bool) {
	pos.nodes++

	prev := pos.st
	newSt.StateInfoLite = prev.StateInfoLite
	newSt.Previous = prev
	pos.st = newSt
	st := pos.st

	st.Key = prev.Key ^ zobrist.side
	st.Rule50++
	st.PliesFromNull++

	us := pos.sideToMove
	them := us.Opposite()

	if m.Kind() == Castle {
		doCastle(pos, us, m, true)
		st.CapturedType = NoPieceType
		pos.sideToMove = them
		return
	}

	from, to := m.From(), m.To()
	piece := pos.PieceOn(from)
	pt := piece.Type()

	capture := NoPieceType
	var capsq Square
	if m.Kind() == EnPassant {
		capture = Pawn
		capsq = to + Square(pawnPush(them))
	} else if occ := pos.PieceOn(to); occ != NoPiece {
		capture = occ.Type()
		capsq = to
	}

	if capture != NoPieceType {
		capturedPiece := MakePiece(them, capture)
		if capture == Pawn {
			st.PawnKey ^= psqKey(them, Pawn, capsq)
		}
		newCount := pos.pieceCount[them][capture] - 1
		pos.removePiece(capsq)
		st.Key ^= psqKey(them, capture, capsq)
		st.MaterialKey ^= zobrist.psq[them][capture][newCount]
		st.PSQScore = st.PSQScore.Sub(psqBonus(capturedPiece, capsq))
		st.Rule50 = 0
		if capture != Pawn {
			st.NPMaterial[them] = absNPMaterial(pos, them)
		}
	}

	st.Key ^= psqKey(us, pt, from) ^ psqKey(us, pt, to)
	if st.EPSquare != NoSquare {
		st.Key ^= zobrist.enpassant[st.EPSquare.File()]
		st.EPSquare = NoSquare
	}

	cr := pos.castleRightsMask[from] | pos.castleRightsMask[to]
	if cr != NoCastling {
		st.Key ^= zobrist.castle[st.CastleRights&cr]
		st.CastleRights &^= cr
	}

	prefetch(pos, st.Key)

	pos.movePiece(from, to)

	if pt == Pawn {
		if to == from+Square(2*pawnPush(us)) {
			mid := from + Square(pawnPush(us))
			for _, df := range [2]int{-1, 1} {
				f := int(to.File()) + df
				if f < 0 || f > 7 {
					continue
				}
				adj := MakeSquare(File(f), to.Rank())
				if neighbor := pos.PieceOn(adj); neighbor != NoPiece && neighbor.Color() == them && neighbor.Type() == Pawn {
					st.EPSquare = mid
					st.Key ^= zobrist.enpassant[mid.File()]
					break
				}
			}
		}
		if m.Kind() == Promotion {
			promo := m.PromotionType()
			pos.byType[Pawn] &^= SquareBB(to)
			pos.byColor[us] &^= SquareBB(to)
			pos.board[to] = NoPiece
			pos.removeFromListOnly(us, Pawn, to)
			pos.putPiece(MakePiece(us, promo), to)

			st.Key ^= psqKey(us, Pawn, to) ^ psqKey(us, promo, to)
			st.PawnKey ^= psqKey(us, Pawn, to)
			st.MaterialKey ^= zobrist.psq[us][Pawn][pos.pieceCount[us][Pawn]]
			st.MaterialKey ^= zobrist.psq[us][promo][pos.pieceCount[us][promo]-1]
			st.PSQScore = st.PSQScore.Sub(psqBonus(MakePiece(us, Pawn), to)).Add(psqBonus(MakePiece(us, promo), to))
			st.NPMaterial[us] += int32(PieceValue[promo].MG)
		}
		st.PawnKey ^= psqKey(us, Pawn, from) ^ psqKey(us, Pawn, to)
		st.Rule50 = 0
	}

	prefetch(pos, st.PawnKey)
	prefetch(pos, st.MaterialKey)

	st.PSQScore = st.PSQScore.Add(psqBonus(piece, to)).Sub(psqBonus(piece, from))
	st.CapturedType = capture

	recomputeCheckers(pos, ci, givesCheck, m)
	pos.sideToMove = them
}

// recomputeCheckers fills st.CheckersBB following spec.md §4.F step 12.
func recomputeCheckers(pos *Position, ci CheckInfo, givesCheck bool, m Move) {
	st := pos.st
	if !givesCheck {
		st.CheckersBB = 0
		return
	}
	if m.Kind() != Normal {
		st.CheckersBB = attackersTo(pos, ci.KingSquare, pos.Pieces()) & pos.PiecesOfColor(pos.PieceOn(m.To()).Color())
		return
	}
	from, to := m.From(), m.To()
	piece := pos.PieceOn(to)
	pt := piece.Type()

	var checkers Bitboard
	if ci.CheckSq[pt]&SquareBB(to) != 0 {
		checkers |= SquareBB(to)
	}
	if ci.DcCandidates&SquareBB(from) != 0 {
		occ := pos.Pieces()
		checkers |= RookAttacks(ci.KingSquare, occ) & (pos.PiecesOfType(Rook) | pos.PiecesOfType(Queen)) & pos.PiecesOfColor(piece.Color())
		checkers |= BishopAttacks(ci.KingSquare, occ) & (pos.PiecesOfType(Bishop) | pos.PiecesOfType(Queen)) & pos.PiecesOfColor(piece.Color())
	}
	st.CheckersBB = checkers
}

// absNPMaterial recomputes c's non-pawn material from scratch; used after a
// non-pawn capture so the running total stays exact without needing a
// signed per-capture delta.
func absNPMaterial(pos *Position, c Color) int32 {
	var total int32
	for pt := Knight; pt <= Queen; pt++ {
		total += int32(pos.pieceCount[c][pt]) * int32(PieceValue[pt].MG)
	}
	return total
}

// removeFromListOnly performs the pieceList/index bookkeeping half of
// removePiece without touching the bitboards/board (the promotion branch of
// doMove has already cleared those itself, matching the teacher's ordering).
func (pos *Position) removeFromListOnly(c Color, pt PieceType, s Square) {
	lastIdx := pos.pieceCount[c][pt] - 1
	removedIdx := pos.index[s]
	lastSquare := pos.pieceList[c][pt][lastIdx]
	pos.pieceList[c][pt][removedIdx] = lastSquare
	pos.index[lastSquare] = removedIdx
	pos.pieceList[c][pt][lastIdx] = NoSquare
	pos.pieceCount[c][pt] = lastIdx
}

// undoMove reverses m step-for-step, restoring board/bitboards/piece-lists.
// Key/score/material need no recomputation: they are simply discarded along
// with the popped StateInfo.
func undoMove(pos *Position, m Move) {
	pos.sideToMove = pos.sideToMove.Opposite()
	us := pos.sideToMove
	them := us.Opposite()
	st := pos.st

	if m.Kind() == Castle {
		doCastle(pos, us, m, false)
		pos.st = st.Previous
		return
	}

	from, to := m.From(), m.To()

	if m.Kind() == Promotion {
		promo := pos.PieceOn(to).Type()
		pos.byType[promo] &^= SquareBB(to)
		pos.byColor[us] &^= SquareBB(to)
		pos.board[to] = NoPiece
		pos.removeFromListOnly(us, promo, to)
		pos.putPiece(MakePiece(us, Pawn), to)
	}

	pos.movePiece(to, from)

	if st.CapturedType != NoPieceType {
		capsq := to
		if m.Kind() == EnPassant {
			capsq = to + Square(pawnPush(them))
		}
		pos.putPiece(MakePiece(them, st.CapturedType), capsq)
	}

	pos.st = st.Previous
}

// doCastle applies or reverses a castle move, encoded as king-captures-own-
// rook: m.To() holds the rook's origin square. On do=true it updates key,
// clears epSquare/castle rights and recomputes checkers (doMove flips the
// side afterwards); on do=false it only restores piece placement.
func doCastle(pos *Position, us Color, m Move, do bool) {
	kingFrom := m.From()
	rookFrom := m.To()
	side := castleSideOf(pos, us, rookFrom)
	kingTo := relativeCastleSquare(us, side, true)
	rookTo := relativeCastleSquare(us, side, false)

	st := pos.st

	if do {
		// Chess960 kto==rfrom: save the rook's list index before the king
		// overwrites its square, per spec.md's Open Question on this case.
		rookIdx := pos.index[rookFrom]

		pos.board[kingFrom] = NoPiece
		pos.board[rookFrom] = NoPiece
		pos.byType[King] &^= SquareBB(kingFrom)
		pos.byType[Rook] &^= SquareBB(rookFrom)
		pos.byColor[us] &^= SquareBB(kingFrom) | SquareBB(rookFrom)
		pos.byType[AllPieces] &^= SquareBB(kingFrom) | SquareBB(rookFrom)

		pos.board[kingTo] = MakePiece(us, King)
		pos.board[rookTo] = MakePiece(us, Rook)
		pos.byType[King] |= SquareBB(kingTo)
		pos.byType[Rook] |= SquareBB(rookTo)
		pos.byColor[us] |= SquareBB(kingTo) | SquareBB(rookTo)
		pos.byType[AllPieces] |= SquareBB(kingTo) | SquareBB(rookTo)

		pos.pieceList[us][King][pos.index[kingFrom]] = kingTo
		pos.index[kingTo] = pos.index[kingFrom]
		pos.pieceList[us][Rook][rookIdx] = rookTo
		pos.index[rookTo] = rookIdx

		st.Key ^= psqKey(us, King, kingFrom) ^ psqKey(us, King, kingTo)
		st.Key ^= psqKey(us, Rook, rookFrom) ^ psqKey(us, Rook, rookTo)
		if st.EPSquare != NoSquare {
			st.Key ^= zobrist.enpassant[st.EPSquare.File()]
			st.EPSquare = NoSquare
		}
		cr := pos.castleRightsMask[kingFrom] | pos.castleRightsMask[rookFrom]
		st.Key ^= zobrist.castle[st.CastleRights&cr]
		st.CastleRights &^= cr

		st.PSQScore = st.PSQScore.
			Sub(psqBonus(MakePiece(us, King), kingFrom)).Add(psqBonus(MakePiece(us, King), kingTo)).
			Sub(psqBonus(MakePiece(us, Rook), rookFrom)).Add(psqBonus(MakePiece(us, Rook), rookTo))

		enemyKing := pos.KingSquare(us.Opposite())
		st.CheckersBB = attackersTo(pos, enemyKing, pos.Pieces()) & pos.byColor[us]
		return
	}

	rookIdx := pos.index[rookTo]

	pos.board[kingTo] = NoPiece
	pos.board[rookTo] = NoPiece
	pos.byType[King] &^= SquareBB(kingTo)
	pos.byType[Rook] &^= SquareBB(rookTo)
	pos.byColor[us] &^= SquareBB(kingTo) | SquareBB(rookTo)
	pos.byType[AllPieces] &^= SquareBB(kingTo) | SquareBB(rookTo)

	pos.board[kingFrom] = MakePiece(us, King)
	pos.board[rookFrom] = MakePiece(us, Rook)
	pos.byType[King] |= SquareBB(kingFrom)
	pos.byType[Rook] |= SquareBB(rookFrom)
	pos.byColor[us] |= SquareBB(kingFrom) | SquareBB(rookFrom)
	pos.byType[AllPieces] |= SquareBB(kingFrom) | SquareBB(rookFrom)

	pos.pieceList[us][King][pos.index[kingTo]] = kingFrom
	pos.index[kingFrom] = pos.index[kingTo]
	pos.pieceList[us][Rook][rookIdx] = rookFrom
	pos.index[rookFrom] = rookIdx
}

// doNullMove pushes newSt as a full copy of the current StateInfo, then
// updates key, epSquare, rule50 and pliesFromNull for the side switch and
// clears checkers; it asserts the mover is not in check.
func doNullMove(pos *Position, newSt *StateInfo) {
	if pos.InCheck() {
		panic("doNullMove: side to move is in check")
	}
	prev := pos.st
	*newSt = *prev
	newSt.Previous = prev

	newSt.Key = prev.Key ^ zobrist.side
	if prev.EPSquare != NoSquare {
		newSt.Key ^= zobrist.enpassant[prev.EPSquare.File()]
	}
	newSt.EPSquare = NoSquare
	newSt.PliesFromNull = 0
	newSt.Rule50 = prev.Rule50 + 1

	pos.st = newSt
	pos.sideToMove = pos.sideToMove.Opposite()
	pos.st.CheckersBB = 0
}

// undoNullMove reverses doNullMove.
func undoNullMove(pos *Position) {
	pos.sideToMove = pos.sideToMove.Opposite()
	pos.st = pos.st.Previous
}
