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

// Piece packs a Color and a PieceType into one value: bits 0-2 the type,
// bit 3 the color.
type Piece int8

const (
	PieceNone Piece = 0
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 | int8(pt))
}

// TypeOf extracts the PieceType.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0x7)
}

// ColorOf extracts the Color.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid reports whether p names an actual piece.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid() && p.ColorOf().IsValid()
}

var pieceToChar = [2]string{"PNBRQK", "pnbrqk"}

// Char renders the piece as a single FEN letter, upper case for White.
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceToChar[p.ColorOf()][p.TypeOf()-Pawn])
}

// PieceFromChar parses a single FEN piece letter. Returns PieceNone on a
// character that is not one of the 12 piece letters.
func PieceFromChar(c byte) Piece {
	for color, letters := range pieceToChar {
		for i := 0; i < len(letters); i++ {
			if letters[i] == c {
				return MakePiece(Color(color), Pawn+PieceType(i))
			}
		}
	}
	return PieceNone
}
