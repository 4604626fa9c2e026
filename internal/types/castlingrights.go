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

// CastlingRights is a bitmask of the four still-possible castling moves.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	CastleNone CastlingRights = 0
	CastleAll  CastlingRights = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Has reports whether all bits of other are set in c.
func (c CastlingRights) Has(other CastlingRights) bool {
	return c&other == other
}

// Remove clears the given rights, e.g. when a rook or king moves or is
// captured.
func (c CastlingRights) Remove(other CastlingRights) CastlingRights {
	return c &^ other
}

// String renders the rights in FEN order, "-" if none remain.
func (c CastlingRights) String() string {
	if c == CastleNone {
		return "-"
	}
	s := ""
	if c.Has(CastleWhiteKing) {
		s += "K"
	}
	if c.Has(CastleWhiteQueen) {
		s += "Q"
	}
	if c.Has(CastleBlackKing) {
		s += "k"
	}
	if c.Has(CastleBlackQueen) {
		s += "q"
	}
	return s
}

// castlingRightsLostFrom maps a square to the rights that are permanently
// lost when a piece leaves from, or a capture lands on, that square: the
// corner rook squares drop one side's rights, the king start squares drop
// both of that color's rights.
var castlingRightsLostFrom = map[Square]CastlingRights{
	SqA1: CastleWhiteQueen,
	SqH1: CastleWhiteKing,
	SqE1: CastleWhiteKing | CastleWhiteQueen,
	SqA8: CastleBlackQueen,
	SqH8: CastleBlackKing,
	SqE8: CastleBlackKing | CastleBlackQueen,
}

// CastlingRightsLostBy returns the rights that touching sq (moving from or
// capturing on it) permanently removes.
func CastlingRightsLostBy(sq Square) CastlingRights {
	return castlingRightsLostFrom[sq]
}
