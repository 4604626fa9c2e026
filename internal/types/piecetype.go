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

// PieceType identifies a kind of chess piece, independent of color.
type PieceType int8

const (
	PtNone   PieceType = 0
	Pawn     PieceType = 1
	Knight   PieceType = 2
	Bishop   PieceType = 3
	Rook     PieceType = 4
	Queen    PieceType = 5
	King     PieceType = 6
	PtLength PieceType = 7
)

var pieceTypeToChar = string("-PNBRQK")

// Char returns a single-char upper-case representation of the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// standard material values, per spec.md SEE section: P=1 N=B=3 R=5 Q=9 K=100,
// scaled by 100 so SEE and search share the same centipawn unit.
var pieceTypeValue = [PtLength]int{0, 100, 300, 300, 500, 900, 10_000}

// ValueOf returns the material value used by SEE and move ordering.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsSlider reports whether pieces of this type move along rays.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// IsValid reports whether pt names one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}
