package goosemg

// Component G: static exchange evaluation. Grounded on the teacher's
// engine/see.go (see, getPiecesAttackingSquare, getClosestAttacker,
// minAttacker), generalized from dragontoothmg.Board to Position/
// attackersTo, and extended with the 32-entry cap assertion and the
// king-capture sentinel spec.md §4.G requires that the teacher's version
// does not have.

const seeMaxSwapDepth = 32

// kingSentinel is the +16*QueenMG sentinel value appended when a side is
// forced into an illegal king capture during the swap.
const kingSentinel = 16 * 2538

// pieceTypeOrder is the least-valuable-attacker scan order.
var pieceTypeOrder = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// SEE estimates the net material gain of the capture sequence on m's
// destination square, assuming best play by both sides.
func SEE(pos *Position, m Move) int {
	if m.Kind() == Castle {
		return 0
	}

	from, to := m.From(), m.To()
	mover := pos.PieceOn(from)
	us := mover.Color()
	them := us.Opposite()

	captured := NoPieceType
	if m.Kind() == EnPassant {
		captured = Pawn
	} else if occ := pos.PieceOn(to); occ != NoPiece {
		captured = occ.Type()
	}
	if captured == NoPieceType {
		return 0
	}

	occ := pos.Pieces() &^ SquareBB(from)
	if m.Kind() == EnPassant {
		occ &^= SquareBB(to + Square(pawnPush(them)))
	}

	attackers := attackersTo(pos, to, occ)
	if attackers&pos.PiecesOfColor(them) == 0 {
		return int(PieceValue[captured].MG)
	}

	var swapList [seeMaxSwapDepth]int
	depth := 0
	swapList[depth] = int(PieceValue[captured].MG)
	depth++

	stm := them
	currentCapturer := mover.Type()
	currentSquare := to

	for {
		stmAttackers := attackers & pos.PiecesOfColor(stm)
		if stmAttackers == 0 {
			break
		}
		if depth >= seeMaxSwapDepth {
			panic("SEE: swap list exceeded 32-entry cap")
		}

		swapList[depth] = -swapList[depth-1] + int(PieceValue[currentCapturer].MG)
		depth++

		attackerSq, attackerType, ok := leastValuableAttacker(pos, stmAttackers)
		if !ok {
			break
		}

		occ &^= SquareBB(attackerSq)
		attackers &^= SquareBB(attackerSq)
		attackers |= xrayRescan(pos, currentSquare, occ, attackerType)

		if attackerType == King {
			if attackers&pos.PiecesOfColor(stm.Opposite()) != 0 {
				if depth >= seeMaxSwapDepth {
					panic("SEE: swap list exceeded 32-entry cap")
				}
				swapList[depth] = kingSentinel
				depth++
			}
			break
		}

		currentCapturer = attackerType
		stm = stm.Opposite()
	}

	for i := depth - 1; i > 0; i-- {
		if -swapList[i] < swapList[i-1] {
			swapList[i-1] = -swapList[i]
		}
	}
	return swapList[0]
}

// SEESign is the cheap "is this at least an even trade" pre-filter spec.md
// §4.G step 2 describes: when the captured piece is already worth at least
// as much as the mover, it reports a won exchange without running the full
// swap list. Callers that need the exact material delta (including
// spec.md §8 scenario 5) must call SEE, not this. Kept separate so SEE's
// numeric result always reflects the full negamaxed swap list.
func SEESign(pos *Position, m Move) bool {
	if m.Kind() == Castle {
		return true
	}
	from, to := m.From(), m.To()
	mover := pos.PieceOn(from)

	captured := NoPieceType
	if m.Kind() == EnPassant {
		captured = Pawn
	} else if occ := pos.PieceOn(to); occ != NoPiece {
		captured = occ.Type()
	}
	if captured == NoPieceType {
		return false
	}
	if int(PieceValue[captured].MG) >= int(PieceValue[mover.Type()].MG) {
		return true
	}
	return SEE(pos, m) >= 0
}

// leastValuableAttacker finds the cheapest piece type present in attackers
// and returns one of its squares.
func leastValuableAttacker(pos *Position, attackers Bitboard) (Square, PieceType, bool) {
	for _, pt := range pieceTypeOrder {
		bb := attackers & pos.PiecesOfType(pt)
		if bb != 0 {
			return PopLsb2(bb), pt, true
		}
	}
	return NoSquare, NoPieceType, false
}

// xrayRescan returns newly-unmasked sliding attackers of currentSquare after
// removing a piece of removedType from occ: diagonal rescan after a pawn,
// bishop, or queen is removed; orthogonal rescan after a rook or queen is
// removed.
func xrayRescan(pos *Position, currentSquare Square, occ Bitboard, removedType PieceType) Bitboard {
	var newAttackers Bitboard
	switch removedType {
	case Pawn, Bishop, Queen:
		newAttackers |= BishopAttacks(currentSquare, occ) & (pos.PiecesOfType(Bishop) | pos.PiecesOfType(Queen)) & occ
	}
	switch removedType {
	case Rook, Queen:
		newAttackers |= RookAttacks(currentSquare, occ) & (pos.PiecesOfType(Rook) | pos.PiecesOfType(Queen)) & occ
	}
	return newAttackers
}
