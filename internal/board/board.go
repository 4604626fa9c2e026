/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/FrankyGo/assert"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

// undoInfo is everything MakeMove mutates that UnmakeMove can't recompute
// from the move alone: it has to be remembered, not rederived.
type undoInfo struct {
	move          Move
	captured      PieceIndex
	capturedType  PieceType
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	hash          zobrist.Key
	pawnHash      zobrist.Key
}

// Board is a chess position: the incrementally-maintained Data plus the
// game-state fields that change with every ply.
type Board struct {
	data          Data
	sideToMove    Color
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	fullMoveNum   int

	history []undoInfo
}

// New returns an empty board (no pieces, White to move).
func New() *Board {
	return &Board{
		data:        NewData(),
		sideToMove:  White,
		castling:    CastleNone,
		epSquare:    SqNone,
		fullMoveNum: 1,
	}
}

// Startpos returns the standard chess starting position.
func Startpos() *Board {
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return b
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EpSquare returns the en passant target square, or SqNone.
func (b *Board) EpSquare() Square { return b.epSquare }

// HalfMoveClock returns the 50-move-rule half-move counter.
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// Data exposes the incrementally-maintained piece/attack/eval state.
func (b *Board) Data() *Data { return &b.data }

// Hash returns the position's full Zobrist hash, folded with the side to
// move and castling/ep state the way every key in the search's keystack
// must be.
func (b *Board) Hash() zobrist.Key {
	return b.data.Hash()
}

// Illegal reports whether the position cannot have arisen from legal play:
// either king is missing, or the side not to move is in check (meaning the
// side that just moved left, or walked into, check).
func (b *Board) Illegal() bool {
	if !b.data.KingSquare(White).IsValid() {
		return true
	}
	if !b.data.KingSquare(Black).IsValid() {
		return true
	}
	notToMove := b.sideToMove.Flip()
	if !b.data.Attacks().AttacksTo(b.data.KingSquare(notToMove), b.sideToMove).IsEmpty() {
		return true
	}
	return false
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return !b.data.Attacks().AttacksTo(b.data.KingSquare(b.sideToMove), b.sideToMove.Flip()).IsEmpty()
}

// FromFEN parses Forsyth-Edwards Notation, returning an error for malformed
// input or for a position that fails Illegal() (most commonly: the side
// not to move is in check).
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: FEN %q has too few fields", fen)
	}

	b := New()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: FEN %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			p := PieceFromChar(byte(c))
			if p == PieceNone {
				return nil, fmt.Errorf("board: FEN %q has invalid piece char %q", fen, c)
			}
			if !file.IsValid() {
				return nil, fmt.Errorf("board: FEN %q overflows rank %d", fen, i)
			}
			sq := SquareOf(file, rank)
			b.data.AddPiece(p.TypeOf(), p.ColorOf(), sq, false)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("board: FEN %q has invalid side to move %q", fen, fields[1])
	}

	b.castling = CastleNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling |= CastleWhiteKing
			case 'Q':
				b.castling |= CastleWhiteQueen
			case 'k':
				b.castling |= CastleBlackKing
			case 'q':
				b.castling |= CastleBlackQueen
			default:
				return nil, fmt.Errorf("board: FEN %q has invalid castling char %q", fen, c)
			}
		}
	}
	b.data.hash = zobrist.UpdateCastling(b.data.hash, CastleNone, b.castling)

	b.epSquare = SqNone
	if fields[3] != "-" {
		b.epSquare = MakeSquare(fields[3])
		if b.epSquare == SqNone {
			return nil, fmt.Errorf("board: FEN %q has invalid en passant square %q", fen, fields[3])
		}
		b.data.hash = zobrist.SetEnPassantFile(b.data.hash, b.epSquare.FileOf())
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfMoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullMoveNum = n
		}
	} else {
		b.fullMoveNum = 1
	}

	if b.sideToMove == Black {
		b.data.hash = zobrist.ToggleSide(b.data.hash)
	}

	b.data.RebuildAttacks()
	b.data.RebuildAccumulators()

	if b.Illegal() {
		return nil, fmt.Errorf("board: FEN %q describes an illegal position", fen)
	}
	return b, nil
}

// FEN renders the position back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := Rank(7 - i)
		empty := 0
		for file := FileA; file < FileLength; file++ {
			p := b.data.PieceAt(SquareOf(file, rank))
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			c := p.Char()
			if p.ColorOf() == White {
				c = strings.ToUpper(c)
			} else {
				c = strings.ToLower(c)
			}
			sb.WriteString(c)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	if b.epSquare == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNum))
	return sb.String()
}

func (b *Board) String() string {
	return b.FEN()
}

// assertCoherent runs the debug-only invariant checks spec's "no piece
// attacks its own square" and "index/piecelist are inverses" rely on.
func (b *Board) assertCoherent() {
	if !assert.DEBUG {
		return
	}
	for sq := SqA1; sq < SqNone; sq++ {
		idx := b.data.PieceIndexAt(sq)
		if idx.IsValid() {
			assert.Assert(!b.data.Attacks().AttacksToBoth(sq).Contains(idx), "piece attacks its own square")
			assert.Assert(b.data.SquareOf(idx) == sq, "piecelist/index mismatch")
		}
	}
}
