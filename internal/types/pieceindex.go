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

// PieceIndex is a stable identifier for one of the (up to) 16 pieces a side
// can have on the board at once. A piece keeps the same index across every
// square it visits. Removing a piece frees its index, and a later AddPiece
// for that colour takes the lowest free slot, so a freed index can be given
// to another piece (a promoted piece or a restored capture). Bit 4 encodes
// color, so a PieceIndex doubles as a natural slot into Bitlist/Piecelist.
type PieceIndex uint8

// PieceIndexNone marks "no piece" in a PieceIndexArray slot.
const PieceIndexNone PieceIndex = 32

// MaxPieces is the number of PieceIndex slots reserved per side.
const MaxPieces = 16

// MakePieceIndex packs a color and a per-side slot [0,16) into one index.
func MakePieceIndex(c Color, slot int) PieceIndex {
	return PieceIndex(int(c)<<4 | slot)
}

// ColorOf returns the color encoded in the index's bit 4.
func (pi PieceIndex) ColorOf() Color {
	return Color(pi >> 4)
}

// SlotOf returns the per-side slot, [0,16).
func (pi PieceIndex) SlotOf() int {
	return int(pi & 0xF)
}

// IsValid reports whether pi names an actual piece slot.
func (pi PieceIndex) IsValid() bool {
	return pi < PieceIndexNone
}

// Piecelist maps every PieceIndex to the square that piece currently
// occupies. A retired index (captured piece) holds SqNone.
type Piecelist [32]Square

// NewPiecelist returns a Piecelist with every slot empty.
func NewPiecelist() Piecelist {
	var pl Piecelist
	for i := range pl {
		pl[i] = SqNone
	}
	return pl
}

// PieceIndexArray maps every board square to the PieceIndex occupying it,
// or PieceIndexNone if the square is empty. It is the inverse of Piecelist.
type PieceIndexArray [64]PieceIndex

// NewPieceIndexArray returns a PieceIndexArray with every square empty.
func NewPieceIndexArray() PieceIndexArray {
	var pia PieceIndexArray
	for i := range pia {
		pia[i] = PieceIndexNone
	}
	return pia
}

// Piecemask holds, for each PieceType, the Bitlist of PieceIndex values
// currently occupied by a piece of that type. Combined with Piecelist this
// lets move generation iterate "all knights" or "all pieces of either
// color" without a board scan.
type Piecemask [PtLength]Bitlist

// Add records that the piece at idx is of type pt.
func (pm *Piecemask) Add(pt PieceType, idx PieceIndex) {
	pm[pt] = pm[pt].Set(idx)
}

// Remove clears the record that the piece at idx is of type pt.
func (pm *Piecemask) Remove(pt PieceType, idx PieceIndex) {
	pm[pt] = pm[pt].Clear(idx)
}

// Of returns the Bitlist of all piece indices of the given type.
func (pm *Piecemask) Of(pt PieceType) Bitlist {
	return pm[pt]
}
