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

import "fmt"

// Value is a search/eval score in centipawns from the side-to-move's view.
type Value int32

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 15000
	ValueNone     Value = 16001
	ValueMate     Value = 10000
	// ValueMateThreshold bounds how close to ValueMate a score can get
	// before search treats it as a forced mate rather than an eval score.
	// Leaves room for mate distances up to 1000 ply, far beyond anything
	// this engine's search depth will reach.
	ValueMateThreshold = ValueMate - 1000
)

// IsMateValue reports whether v encodes a forced mate of either side.
func (v Value) IsMateValue() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > ValueMateThreshold && abs <= ValueMate
}

// MateIn returns the score for delivering mate in ply plies from the
// current node.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the score for being mated in ply plies from the current
// node.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// ToTT adjusts a mate score to be ply-independent before storing it in the
// transposition table, so the same mate found at different distances from
// the root hashes to the same TT value.
func (v Value) ToTT(ply int) Value {
	if v >= ValueMateThreshold {
		return v + Value(ply)
	}
	if v <= -ValueMateThreshold {
		return v - Value(ply)
	}
	return v
}

// FromTT undoes ToTT when reading a mate score back out of the table at a
// given ply from the root.
func (v Value) FromTT(ply int) Value {
	if v >= ValueMateThreshold {
		return v - Value(ply)
	}
	if v <= -ValueMateThreshold {
		return v + Value(ply)
	}
	return v
}

// String renders the value the way a UCI "score" field would: a mate
// distance when close enough to ValueMate, else centipawns.
func (v Value) String() string {
	if v.IsMateValue() {
		plies := ValueMate - v
		if v < 0 {
			plies = ValueMate + v
		}
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", v)
}
