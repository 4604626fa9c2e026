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

package types

import "strings"

// MoveType distinguishes the handful of move shapes that need special
// make/unmake handling beyond "piece goes from A to B".
type MoveType uint8

const (
	Normal MoveType = iota
	Capture
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
	PromoCapture
)

// Move packs from-square, to-square, promotion piece type and move type
// into a single comparable value:
//
//	bits  0- 5: from square
//	bits  6-11: to square
//	bits 12-14: promotion piece type (valid only for Promotion/PromoCapture)
//	bits 15-17: move type
type Move uint32

// MoveNone is the zero value, never produced by the generator.
const MoveNone Move = 0

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveTypeShift  = 15
	moveSquareMask = 0x3F
	movePromoMask  = 0x7
	moveTypeMask   = 0x7
)

// NewMove builds a Move from its fields.
func NewMove(from, to Square, promo PieceType, mt MoveType) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promo)<<movePromoShift |
		uint32(mt)<<moveTypeShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// Promotion returns the promotion piece type, meaningful only when Type is
// Promotion or PromoCapture.
func (m Move) Promotion() PieceType {
	return PieceType((m >> movePromoShift) & movePromoMask)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((m >> moveTypeShift) & moveTypeMask)
}

// IsCapture reports whether this move removes an enemy piece (including
// en passant), which is the relevant notion for SEE and capture ordering.
func (m Move) IsCapture() bool {
	t := m.Type()
	return t == Capture || t == EnPassant || t == PromoCapture
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.Type()
	return t == Promotion || t == PromoCapture
}

// IsCastle reports whether the move is one of the two castling moves.
func (m Move) IsCastle() bool {
	t := m.Type()
	return t == CastleKingside || t == CastleQueenside
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.Promotion().Char())
	}
	return s
}
