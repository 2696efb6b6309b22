package goosemg

import "golang.org/x/exp/slices"

// Component H: consistency auditor. A single predicate cross-checking every
// invariant in spec.md §3 against the Position's redundant representations,
// grounded on the teacher's Board.Validate/panic style (goosemg/compat.go).
// Nothing in the package calls the auditor on its own; it runs only when a
// caller or test invokes Audit or MustAudit.

// DebugAudit is an exported flag, off by default, for callers that want to
// gate their own auditor calls; no code in this package reads it.
var DebugAudit = false

// AuditFailure names the first invariant check that failed, with a step
// index for reproducibility.
type AuditFailure struct {
	Step int
	Msg  string
}

func (f *AuditFailure) Error() string { return f.Msg }

// Audit walks invariants 1-10 in order and returns the first failure, or nil
// if the Position is fully consistent.
func Audit(pos *Position) *AuditFailure {
	step := 0
	fail := func(msg string) *AuditFailure { return &AuditFailure{Step: step, Msg: msg} }

	step++
	union := pos.byType[Pawn] | pos.byType[Knight] | pos.byType[Bishop] | pos.byType[Rook] | pos.byType[Queen] | pos.byType[King]
	if pos.byType[AllPieces] != union {
		return fail("byType[AllPieces] does not equal the union of per-type bitboards")
	}
	if pos.byType[AllPieces] != pos.byColor[White]|pos.byColor[Black] {
		return fail("byType[AllPieces] does not equal byColor[White]|byColor[Black]")
	}
	if pos.byColor[White]&pos.byColor[Black] != 0 {
		return fail("byColor[White] and byColor[Black] overlap")
	}

	step++
	types := []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
	for i, p := range types {
		for _, q := range types[i+1:] {
			if pos.byType[p]&pos.byType[q] != 0 {
				return fail("byType overlaps between distinct piece types")
			}
		}
	}

	step++
	for s := Square(0); s < 64; s++ {
		p := pos.board[s]
		if p == NoPiece {
			continue
		}
		c, pt := p.Color(), p.Type()
		if pos.byType[pt]&pos.byColor[c]&SquareBB(s) == 0 {
			return fail("occupied square missing from its type/color bitboards")
		}
	}

	step++
	for c := Color(White); c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			want := Popcount(pos.byType[pt] & pos.byColor[c])
			if int(pos.pieceCount[c][pt]) != want {
				return fail("pieceCount disagrees with popcount(byType & byColor)")
			}
			seen := make([]Square, 0, want)
			for bb := pos.byType[pt] & pos.byColor[c]; bb != 0; {
				seen = append(seen, PopLsb(&bb))
			}
			listed := append([]Square{}, pos.pieceList[c][pt][:want]...)
			slices.Sort(seen)
			slices.Sort(listed)
			if !slices.Equal(seen, listed) {
				return fail("pieceList does not match the set of squares in its bitboard")
			}
		}
	}

	step++
	for s := Square(0); s < 64; s++ {
		p := pos.board[s]
		if p == NoPiece {
			continue
		}
		idx := pos.index[s]
		if int(idx) >= len(pos.pieceList[p.Color()][p.Type()]) || pos.pieceList[p.Color()][p.Type()][idx] != s {
			return fail("index[s] does not point back to s in its pieceList bucket")
		}
	}

	step++
	if pos.pieceCount[White][King] != 1 || pos.pieceCount[Black][King] != 1 {
		return fail("side does not have exactly one king")
	}

	step++
	them := pos.sideToMove.Opposite()
	if attackersTo(pos, pos.KingSquare(them), pos.Pieces())&pos.byColor[pos.sideToMove] != 0 {
		return fail("side not to move is in check")
	}

	step++
	if pos.st.EPSquare != NoSquare {
		wantRank := RelativeRank(pos.sideToMove, 5)
		if pos.st.EPSquare.Rank() != wantRank {
			return fail("epSquare is not on the side to move's relative 6th rank")
		}
	}

	step++
	probe := pos.Clone()
	probe.recomputeFromScratch()
	if probe.st.Key != pos.st.Key {
		return fail("key does not equal its from-scratch recomputation")
	}
	if probe.st.PawnKey != pos.st.PawnKey {
		return fail("pawnKey does not equal its from-scratch recomputation")
	}
	if probe.st.MaterialKey != pos.st.MaterialKey {
		return fail("materialKey does not equal its from-scratch recomputation")
	}
	if probe.st.PSQScore != pos.st.PSQScore {
		return fail("psqScore does not equal its from-scratch recomputation")
	}
	if probe.st.NPMaterial != pos.st.NPMaterial {
		return fail("npMaterial does not equal its from-scratch recomputation")
	}

	step++
	if Popcount(pos.st.CheckersBB) > 2 {
		return fail("more than two checkers set in checkersBB")
	}

	return nil
}

// MustAudit panics on the first failing invariant.
func MustAudit(pos *Position) {
	if f := Audit(pos); f != nil {
		panic(f.Error())
	}
}
