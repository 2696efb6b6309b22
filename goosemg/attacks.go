package goosemg

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Component A: geometry & attack tables. Pure functions, immutable after the
// one-time init() below. Sliding-piece attacks are delegated to
// dragontoothmg's magic-bitboard tables, exactly the way the teacher's
// engine/see.go treats dragontoothmg.CalculateRookMoveBitboard /
// CalculateBishopMoveBitboard as an ambient "pure lookup service" alongside
// its own board representation. Leaper tables and the between()/aligned()
// helpers are grounded on goosemg/movegen.go's initAttackTables/initRays.

var (
	stepAttacks   [2][64]Bitboard // pawn captures, by color and origin square
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	betweenBB     [64][64]Bitboard
)

func init() {
	initStepAttacks()
	initBetween()
}

func initStepAttacks() {
	knightOffsets := [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var n, k Bitboard
		for _, off := range knightOffsets {
			if f, r := file+off[1], rank+off[0]; f >= 0 && f < 8 && r >= 0 && r < 8 {
				n |= Bitboard(1) << uint(r*8+f)
			}
		}
		knightAttacks[sq] = n
		for _, off := range kingOffsets {
			if f, r := file+off[1], rank+off[0]; f >= 0 && f < 8 && r >= 0 && r < 8 {
				k |= Bitboard(1) << uint(r*8+f)
			}
		}
		kingAttacks[sq] = k

		var wp, bp Bitboard
		if rank < 7 {
			if file > 0 {
				wp |= Bitboard(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				wp |= Bitboard(1) << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				bp |= Bitboard(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				bp |= Bitboard(1) << uint((rank-1)*8+file+1)
			}
		}
		stepAttacks[White][sq] = wp
		stepAttacks[Black][sq] = bp
	}
}

// initBetween precomputes, for every ordered pair of squares on a common
// rank/file/diagonal/anti-diagonal, the bitboard of squares strictly between
// them (exclusive of both endpoints). Non-aligned pairs stay zero.
func initBetween() {
	dirs := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for a := 0; a < 64; a++ {
		af, ar := a%8, a/8
		for _, d := range dirs {
			var acc Bitboard
			f, r := af+d[1], ar+d[0]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				b := r*8 + f
				betweenBB[a][b] = acc
				acc |= Bitboard(1) << uint(b)
				f += d[1]
				r += d[0]
			}
		}
	}
}

// PawnAttacksFrom returns the squares a pawn of color c on sq attacks.
func PawnAttacksFrom(c Color, sq Square) Bitboard { return stepAttacks[c][sq] }

// KnightAttacksFrom returns the knight attack set from sq.
func KnightAttacksFrom(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacksFrom returns the king step attack set from sq.
func KingAttacksFrom(sq Square) Bitboard { return kingAttacks[sq] }

// RookAttacks returns rook attacks from sq given occupancy occ, via dragontoothmg's magic tables.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
}

// BishopAttacks returns bishop attacks from sq given occupancy occ, via dragontoothmg's magic tables.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
}

// QueenAttacks combines rook and bishop attacks.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// AttacksBB is the generic dispatcher used by legality/SEE code: attacks<PieceType>(sq, occ).
func AttacksBB(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return kingAttacks[sq]
	default:
		return 0
	}
}

// PseudoAttacks returns the slider's attack set on an otherwise empty board.
func PseudoAttacks(pt PieceType, sq Square) Bitboard { return AttacksBB(pt, sq, 0) }

// Between returns the bitboard of squares strictly between a and b if they
// are collinear (rank, file, or either diagonal), else 0.
func Between(a, b Square) Bitboard { return betweenBB[a][b] }

// SquaresAligned reports whether a, b, c lie on a common rank, file, or diagonal.
func SquaresAligned(a, b, c Square) bool {
	af, ar := int(a.File()), int(a.Rank())
	bf, br := int(b.File()), int(b.Rank())
	cf, cr := int(c.File()), int(c.Rank())
	if ar == br && br == cr {
		return true
	}
	if af == bf && bf == cf {
		return true
	}
	if ar-af == br-bf && br-bf == cr-cf {
		return true
	}
	if ar+af == br+bf && br+bf == cr+cf {
		return true
	}
	return false
}

// PopLsb returns the lowest set bit's square and clears it in *bb.
func PopLsb(bb *Bitboard) Square {
	s := Square(bits.TrailingZeros64(*bb))
	*bb &= *bb - 1
	return s
}

// Popcount is a thin wrapper kept for call-site symmetry with PopLsb.
func Popcount(bb Bitboard) int { return bits.OnesCount64(bb) }
