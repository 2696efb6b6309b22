package goosemg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Component D: FEN parser/emitter. Grounded on the teacher's goosemg/fen.go
// field-splitting approach, extended to the three castling dialects spec.md
// §4.D requires (standard KQkq, Shredder-FEN, X-FEN) and to from-scratch
// recomputation of every incremental quantity after placement.

// ParseFEN parses a six-field FEN string into a new Position. Per spec.md
// §7, the parser trusts its input: missing fields fall back to documented
// defaults (no castling, no ep, rule50=0, fullmove=1) rather than erroring,
// except for a malformed piece-placement field, which is reported so callers
// can distinguish "empty board" from "garbage input".
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("goosemg: empty FEN")
	}

	pos := NewPosition()

	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	pos.sideToMove = White
	if len(fields) > 1 && fields[1] == "b" {
		pos.sideToMove = Black
	}

	castling := "-"
	if len(fields) > 2 {
		castling = fields[2]
	}
	parseCastling(pos, castling)

	pos.st.EPSquare = NoSquare
	if len(fields) > 3 && fields[3] != "-" {
		if sq, ok := parseSquareName(fields[3]); ok {
			pos.st.EPSquare = sq
		}
	}
	standardizeEPSquare(pos)

	rule50 := 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			rule50 = n
		}
	}
	pos.st.Rule50 = rule50

	fullmove := 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			fullmove = n
		}
	}
	ply := 2 * (fullmove - 1)
	if ply < 0 {
		ply = 0
	}
	if pos.sideToMove == Black {
		ply++
	}
	pos.startPosPly = ply
	pos.st.PliesFromNull = 0

	pos.recomputeFromScratch()
	return pos, nil
}

func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("goosemg: FEN placement field has %d ranks, want 8", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := File(0)
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			pt, color, ok := pieceFromLetter(ch)
			if !ok {
				return fmt.Errorf("goosemg: invalid piece letter %q in FEN", ch)
			}
			if file > 7 {
				return fmt.Errorf("goosemg: FEN rank %d overflows the board", 8-i)
			}
			pos.putPiece(MakePiece(color, pt), MakeSquare(file, rank))
			file++
		}
	}
	return nil
}

func pieceFromLetter(ch rune) (PieceType, Color, bool) {
	color := White
	letter := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		letter = ch - ('a' - 'A')
	}
	switch letter {
	case 'P':
		return Pawn, color, true
	case 'N':
		return Knight, color, true
	case 'B':
		return Bishop, color, true
	case 'R':
		return Rook, color, true
	case 'Q':
		return Queen, color, true
	case 'K':
		return King, color, true
	}
	return NoPieceType, White, false
}

// parseCastling accepts standard KQkq, Shredder-FEN (A-Ha-h), and X-FEN
// (same letters, used only for the non-outermost rook in Chess960). For K/Q
// the outermost rook on the back rank is located by scanning inward from the
// corner, per spec.md §4.D.
func parseCastling(pos *Position, field string) {
	if field == "-" || field == "" {
		return
	}
	for _, ch := range field {
		switch {
		case ch == 'K' || ch == 'Q':
			rookFrom := findOutermostRook(pos, White, ch == 'K')
			if rookFrom != NoSquare {
				pos.setCastleRight(White, rookFrom)
			}
		case ch == 'k' || ch == 'q':
			rookFrom := findOutermostRook(pos, Black, ch == 'k')
			if rookFrom != NoSquare {
				pos.setCastleRight(Black, rookFrom)
			}
		case ch >= 'A' && ch <= 'H':
			pos.chess960 = true
			rookFrom := MakeSquare(File(ch-'A'), backRank(White))
			if pos.PieceOn(rookFrom).Type() == Rook {
				pos.setCastleRight(White, rookFrom)
			}
		case ch >= 'a' && ch <= 'h':
			pos.chess960 = true
			rookFrom := MakeSquare(File(ch-'a'), backRank(Black))
			if pos.PieceOn(rookFrom).Type() == Rook {
				pos.setCastleRight(Black, rookFrom)
			}
		}
	}
}

func backRank(c Color) Rank {
	if c == White {
		return 0
	}
	return 7
}

// findOutermostRook scans from the corner (file H for king-side, file A for
// queen-side) inward to the king, returning the first rook found.
func findOutermostRook(pos *Position, c Color, kingSide bool) Square {
	r := backRank(c)
	kingFile := pos.KingSquare(c).File()
	if kingSide {
		for f := File(7); f > kingFile; f-- {
			sq := MakeSquare(f, r)
			if p := pos.PieceOn(sq); p.Type() == Rook && p.Color() == c {
				return sq
			}
		}
	} else {
		for f := File(0); f < kingFile; f++ {
			sq := MakeSquare(f, r)
			if p := pos.PieceOn(sq); p.Type() == Rook && p.Color() == c {
				return sq
			}
		}
	}
	return NoSquare
}

func parseSquareName(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), true
}

// standardizeEPSquare clears epSquare unless a friendly pawn could actually
// capture onto it, per spec.md §4.D.
func standardizeEPSquare(pos *Position) {
	sq := pos.st.EPSquare
	if sq == NoSquare {
		return
	}
	us := pos.sideToMove
	if PawnAttacksFrom(us.Opposite(), sq)&pos.PiecesColorType(us, Pawn) == 0 {
		pos.st.EPSquare = NoSquare
	}
}

// EmitFEN serializes pos to FEN text, using Shredder-style castling letters
// when chess960 is set.
func EmitFEN(pos *Position) string {
	var b strings.Builder

	for r := Rank(7); r >= 0; r-- {
		empty := 0
		for f := File(0); f < 8; f++ {
			p := pos.PieceOn(MakeSquare(f, r))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if pos.sideToMove == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	b.WriteString(emitCastling(pos))

	b.WriteByte(' ')
	if pos.st.EPSquare == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(pos.st.EPSquare.String())
	}

	fullmove := pos.startPosPly/2 + 1
	fmt.Fprintf(&b, " %d %d", pos.st.Rule50, fullmove)
	return b.String()
}

func emitCastling(pos *Position) string {
	var b strings.Builder
	cr := pos.st.CastleRights
	if cr == NoCastling {
		return "-"
	}
	if pos.chess960 {
		for _, c := range [2]Color{White, Black} {
			for _, side := range [2]CastlingSide{KingSide, QueenSide} {
				if cr&rightsFor(c, side) == 0 {
					continue
				}
				rookFrom := pos.castleRookSquare[c][side]
				ch := byte('A' + byte(rookFrom.File()))
				if c == Black {
					ch += 'a' - 'A'
				}
				b.WriteByte(ch)
			}
		}
		return b.String()
	}
	if cr&WhiteKingSide != 0 {
		b.WriteByte('K')
	}
	if cr&WhiteQueenSide != 0 {
		b.WriteByte('Q')
	}
	if cr&BlackKingSide != 0 {
		b.WriteByte('k')
	}
	if cr&BlackQueenSide != 0 {
		b.WriteByte('q')
	}
	return b.String()
}
