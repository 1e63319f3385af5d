//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package fen parses the FEN-like position-setup text used at the
// engine's external boundary (the UCI "position fen ..." command) into
// a board.Board. It is deliberately kept outside the board package: the
// core representation only needs to be placeable piece by piece, it has
// no opinion about external text formats.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kopparsynth/mailchess/internal/board"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// StartFEN is the standard starting position in FEN notation.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse builds a new Board from a FEN string. Only the first four
// space-separated fields affect the position itself (piece placement,
// side to move, castling rights, en-passant target); halfmove clock and
// fullmove number are accepted for compatibility but not retained,
// since nothing in the core model needs them.
func Parse(fenStr string) (*board.Board, error) {
	fields := strings.Fields(strings.TrimSpace(fenStr))
	if len(fields) < 2 {
		return nil, fmt.Errorf("fen: need at least placement and side-to-move fields, got %q", fenStr)
	}

	b := board.New()
	if err := placePieces(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.SetMovingTeam(White)
	case "b":
		b.SetMovingTeam(Black)
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	rights := board.CastlingRights{}
	if len(fields) >= 3 {
		rights = parseCastlingRights(fields[2])
	}
	board.ApplyCastlingRights(b, rights)

	// fields[3] (en-passant target) has no move history to derive itself
	// from on a freshly parsed FEN, so it is seeded directly onto the
	// board rather than through Make.
	if len(fields) >= 4 && fields[3] != "-" {
		b.SetPendingEnPassant(MakeSquare(fields[3]))
	}

	return b, nil
}

func placePieces(b *board.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt := PieceTypeFromLetter(byte(c))
			if pt == PieceTypeNone {
				return fmt.Errorf("fen: invalid piece letter %q", c)
			}
			team := White
			if c >= 'a' && c <= 'z' {
				team = Black
			}
			if file > 7 {
				return fmt.Errorf("fen: rank %d overflows 8 files", rank+1)
			}
			b.PlacePiece(team, pt, SquareAt(file, rank), true)
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func parseCastlingRights(field string) board.CastlingRights {
	if field == "-" {
		return board.CastlingRights{}
	}
	return board.CastlingRights{
		WhiteKingside:  strings.Contains(field, "K"),
		WhiteQueenside: strings.Contains(field, "Q"),
		BlackKingside:  strings.Contains(field, "k"),
		BlackQueenside: strings.Contains(field, "q"),
	}
}

// String renders b back to FEN text. Halfmove clock and fullmove number
// are not tracked by Board, so they are emitted as the harmless
// defaults "0 1".
func String(b *board.Board) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			code := b.At(SquareAt(f, r))
			if code == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			team, pt := DecodePiece(code)
			sb.WriteByte(pt.Letter(team))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.MovingTeam().String())
	sb.WriteByte(' ')
	sb.WriteString(castlingField(b))
	sb.WriteString(" - 0 1")
	return sb.String()
}

func castlingField(b *board.Board) string {
	has := func(team Team, kingSq, rookSq Square, kingPT, rookPT PieceType) bool {
		return b.At(kingSq) == EncodePiece(team, kingPT) && b.FirstMoveAt(kingSq) &&
			b.At(rookSq) == EncodePiece(team, rookPT) && b.FirstMoveAt(rookSq)
	}
	var sb strings.Builder
	if has(White, KingHome(White), RookKingsideHome(White), King, Rook) {
		sb.WriteByte('K')
	}
	if has(White, KingHome(White), RookQueensideHome(White), King, Rook) {
		sb.WriteByte('Q')
	}
	if has(Black, KingHome(Black), RookKingsideHome(Black), King, Rook) {
		sb.WriteByte('k')
	}
	if has(Black, KingHome(Black), RookQueensideHome(Black), King, Rook) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
