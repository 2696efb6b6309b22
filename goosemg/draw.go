package goosemg

// Component J: draw helpers. Grounded on the teacher's engine/state_stack.go
// repetition bookkeeping, adapted to read the StateInfo chain directly
// instead of a side-table history slice.

// IsInsufficientMaterial reports a draw by insufficient material: no pawns
// on the board and combined non-pawn material across both sides no greater
// than a single bishop.
func IsInsufficientMaterial(pos *Position) bool {
	if pos.PiecesOfType(Pawn) != 0 {
		return false
	}
	bishopValue := int32(PieceValue[Bishop].MG)
	return pos.st.NPMaterial[White]+pos.st.NPMaterial[Black] <= bishopValue
}

// IsFiftyMoveRule reports a draw by the 50-move rule. hasLegalMove must be
// supplied by the caller (component I or the search above it) since this
// package has no standing move generator of its own in the core; it is only
// consulted when the side to move is in check, to exclude checkmate.
func IsFiftyMoveRule(pos *Position, hasLegalMove func() bool) bool {
	if pos.st.Rule50 <= 99 {
		return false
	}
	if pos.InCheck() && hasLegalMove != nil {
		return hasLegalMove()
	}
	return true
}

// IsRepetition reports a 2-fold repetition: the current key recurs anywhere
// within the last min(rule50, pliesFromNull) plies, scanning every second
// prior state (same side to move) from four plies back. The state two plies
// back is never compared. When skipFirst is true, the first compared state
// (four plies back) is skipped as well.
func IsRepetition(pos *Position, skipFirst bool) bool {
	end := pos.st.Rule50
	if pos.st.PliesFromNull < end {
		end = pos.st.PliesFromNull
	}
	if end < 4 {
		return false
	}

	st := pos.st
	skipped := false
	for ply := 2; ply <= end; ply += 2 {
		if st.Previous == nil || st.Previous.Previous == nil {
			break
		}
		st = st.Previous.Previous
		if ply < 4 {
			continue
		}
		if skipFirst && !skipped {
			skipped = true
			continue
		}
		if st.Key == pos.st.Key {
			return true
		}
	}
	return false
}

// IsDraw reports any of the draw conditions above; repetition is skipped
// when skipRepetition is true, mirroring isDraw<SkipRepetition>.
func IsDraw(pos *Position, skipRepetition bool, hasLegalMove func() bool) bool {
	if IsInsufficientMaterial(pos) {
		return true
	}
	if IsFiftyMoveRule(pos, hasLegalMove) {
		return true
	}
	if !skipRepetition && IsRepetition(pos, false) {
		return true
	}
	return false
}
