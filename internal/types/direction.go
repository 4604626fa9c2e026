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

// Direction is a step on the 16x8 padded board used for ray iteration and
// attack discovery. The padded form puts each real square at rank*16+file,
// so a step off the a/h files overflows into the padding column instead of
// wrapping to the next rank.
type Direction int8

// sliding (ray) directions
const (
	North     Direction = 16
	South     Direction = -16
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// knight leaps
const (
	KnightNNE Direction = 2*North + East
	KnightNEE Direction = North + 2*East
	KnightSEE Direction = South + 2*East
	KnightSSE Direction = 2*South + East
	KnightSSW Direction = 2*South + West
	KnightSWW Direction = South + 2*West
	KnightNWW Direction = North + 2*West
	KnightNNW Direction = 2*North + West
)

// RayDirections are the 8 directions a sliding piece may travel.
var RayDirections = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// KnightDirections are the 8 L-shaped knight leaps.
var KnightDirections = [8]Direction{KnightNNE, KnightNEE, KnightSEE, KnightSSE, KnightSSW, KnightSWW, KnightNWW, KnightNNW}

// Opposite returns the direction that undoes a step in this direction.
func (d Direction) Opposite() Direction {
	return -d
}

// toPadded maps a real square [0,64) onto the 16-wide padded grid.
func toPadded(sq Square) int {
	return int(sq.RankOf())<<4 | int(sq.FileOf())
}

// fromPadded maps a padded-grid index back to a real square, or SqNone if
// the index has stepped into the padding column/off the grid entirely.
func fromPadded(p int) Square {
	if p < 0 || p&0x88 != 0 {
		return SqNone
	}
	return SquareOf(File(p&7), Rank(p>>4))
}

// Travel steps one square from sq in direction d, returning SqNone if the
// step leaves the board.
func (d Direction) Travel(sq Square) Square {
	return fromPadded(toPadded(sq) + int(d))
}

// DirectionBetween returns the rank, file or diagonal direction from a to
// b, and false if they share no such line; knight offsets are not
// recognised. Used by SEE to test whether a capture
// reveals a slider behind the piece it just removed.
func DirectionBetween(a, b Square) (Direction, bool) {
	fa, ra := int(a.FileOf()), int(a.RankOf())
	fb, rb := int(b.FileOf()), int(b.RankOf())
	df, dr := fb-fa, rb-ra
	switch {
	case df == 0 && dr > 0:
		return North, true
	case df == 0 && dr < 0:
		return South, true
	case dr == 0 && df > 0:
		return East, true
	case dr == 0 && df < 0:
		return West, true
	case df == dr && df > 0:
		return NorthEast, true
	case df == dr && df < 0:
		return SouthWest, true
	case df == -dr && df > 0:
		return SouthEast, true
	case df == -dr && df < 0:
		return NorthWest, true
	default:
		return 0, false
	}
}

// ValidForSlider reports whether a slider of type pt may move along d.
func ValidForSlider(pt PieceType, d Direction) bool {
	switch pt {
	case Rook:
		return d == North || d == South || d == East || d == West
	case Bishop:
		return d == NorthEast || d == NorthWest || d == SouthEast || d == SouthWest
	case Queen:
		return true
	default:
		return false
	}
}
