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

import "math/bits"

// Bitlist is a 32-bit set of PieceIndex values, one bit per index. Unlike a
// Bitboard it indexes pieces, not squares: bit i is set iff the piece with
// PieceIndex i is currently on the board and satisfies whatever property
// the particular Bitlist tracks (e.g. Piecemask[Knight], or "gives check").
type Bitlist uint32

const (
	// BitlistEmpty has no pieces recorded.
	BitlistEmpty Bitlist = 0
	// WhiteMask selects the low 16 bits, the white PieceIndex range.
	WhiteMask Bitlist = 0x0000FFFF
	// BlackMask selects the high 16 bits, the black PieceIndex range.
	BlackMask Bitlist = 0xFFFF0000
)

// MaskFromColour returns WhiteMask or BlackMask for the given color.
func MaskFromColour(c Color) Bitlist {
	if c == White {
		return WhiteMask
	}
	return BlackMask
}

// Set returns b with idx added.
func (b Bitlist) Set(idx PieceIndex) Bitlist {
	return b | (1 << idx)
}

// Clear returns b with idx removed.
func (b Bitlist) Clear(idx PieceIndex) Bitlist {
	return b &^ (1 << idx)
}

// Contains reports whether idx is a member of b.
func (b Bitlist) Contains(idx PieceIndex) bool {
	return b&(1<<idx) != 0
}

// Union returns the set union of b and other.
func (b Bitlist) Union(other Bitlist) Bitlist {
	return b | other
}

// Intersect returns the set intersection of b and other.
func (b Bitlist) Intersect(other Bitlist) Bitlist {
	return b & other
}

// Complement returns the set of all indices not in b.
func (b Bitlist) Complement() Bitlist {
	return ^b
}

// ForColour restricts b to the PieceIndex range belonging to c.
func (b Bitlist) ForColour(c Color) Bitlist {
	return b & MaskFromColour(c)
}

// IsEmpty reports whether no index is set.
func (b Bitlist) IsEmpty() bool {
	return b == BitlistEmpty
}

// Count returns the number of set indices.
func (b Bitlist) Count() int {
	return bits.OnesCount32(uint32(b))
}

// Peek returns the lowest-numbered index in b, and whether b was non-empty.
// Equivalent to the movegen literature's "peek_nonzero" on a per-caller
// basis: callers that already know b is non-empty can ignore the bool.
func (b Bitlist) Peek() (PieceIndex, bool) {
	if b == BitlistEmpty {
		return PieceIndexNone, false
	}
	return PieceIndex(bits.TrailingZeros32(uint32(b))), true
}

// PopPeek returns the lowest-numbered index in b together with b with that
// index removed, for the common "take one and continue" iteration idiom.
func (b Bitlist) PopPeek() (PieceIndex, Bitlist) {
	idx, ok := b.Peek()
	if !ok {
		return PieceIndexNone, b
	}
	return idx, b.Clear(idx)
}

// ForEach calls f once for every index set in b, lowest first.
func (b Bitlist) ForEach(f func(PieceIndex)) {
	for rem := b; !rem.IsEmpty(); {
		var idx PieceIndex
		idx, rem = rem.PopPeek()
		f(idx)
	}
}
