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

// Package history provides the move-ordering tables the search consults
// between iterations: a gravity-clamped from/to history heuristic, and a
// pawn-structure correction history ("corrhist") that nudges static eval
// toward what search has actually found true for a given pawn skeleton.
package history

import (
	"github.com/frankkopp/FrankyGo/internal/zobrist"

	. "github.com/frankkopp/FrankyGo/internal/types"
)

// HistoryClamp bounds a single history table entry, the "gravity" in
// gravity-clamped updates: a bonus is always scaled down as the entry
// approaches this bound so it can never run away unboundedly.
const HistoryClamp = 16384

// Table is the quiet-move history heuristic, indexed by
// [color][from][to].
type Table struct {
	Counts [2][64][64]int16
}

// NewTable returns a zeroed history table.
func NewTable() *Table {
	return &Table{}
}

// Score returns the current history score for a quiet move.
func (t *Table) Score(c Color, from, to Square) int16 {
	return t.Counts[c][from][to]
}

// gravity applies a bonus/malus toward a bound using the standard
// "history gravity" formula: the closer the entry already is to the
// bound, the smaller effect an additional update has, so the table
// self-limits without an explicit decay pass.
func gravity(entry, delta int16) int16 {
	d := int32(delta)
	e := int32(entry)
	clamp := int32(HistoryClamp)
	adjusted := d - e*abs32(d)/clamp
	result := e + int32(adjusted)
	if result > clamp {
		result = clamp
	}
	if result < -clamp {
		result = -clamp
	}
	return int16(result)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Update rewards (positive delta) or punishes (negative delta) a quiet
// move after a search node resolves. delta is already scaled by the
// caller per spec.md's hist_bonus/hist_pen depth formula.
func (t *Table) Update(c Color, from, to Square, delta int16) {
	t.Counts[c][from][to] = gravity(t.Counts[c][from][to], delta)
}

const (
	// CorrhistGrain quantizes the static-eval delta corrhist accumulates.
	CorrhistGrain = 256
	// CorrhistWeightScale is the divisor applied when a new sample is
	// blended into an existing corrhist entry.
	CorrhistWeightScale = 256
	// CorrhistMax bounds a corrhist entry's magnitude in grain units.
	CorrhistMax = CorrhistGrain * 32
	// corrhistSize is the number of pawn-hash buckets corrhist indexes by.
	corrhistSize = 16384
)

// Corrhist is the pawn-structure correction history: keyed by a slice of
// the pawn-only Zobrist hash, it tracks how far static eval has tended to
// be wrong for a given pawn skeleton, and corrects future evals by that
// amount.
type Corrhist struct {
	table [2][corrhistSize]int32
}

// NewCorrhist returns a zeroed correction history.
func NewCorrhist() *Corrhist {
	return &Corrhist{}
}

func corrhistIndex(pawnHash zobrist.Key) uint32 {
	return uint32(pawnHash) & (corrhistSize - 1)
}

// Correct applies the stored correction to a raw static eval.
func (ch *Corrhist) Correct(c Color, pawnHash zobrist.Key, rawEval int32) int32 {
	correction := ch.table[c][corrhistIndex(pawnHash)]
	return rawEval + correction/CorrhistGrain
}

// Update blends a new (eval, searchScore) sample into the correction
// entry for this pawn structure, weighted by depth the way the search
// caller decides (deeper results are trusted more).
func (ch *Corrhist) Update(c Color, pawnHash zobrist.Key, weight int32, diff int32) {
	idx := corrhistIndex(pawnHash)
	entry := &ch.table[c][idx]
	scaledDiff := diff * CorrhistGrain
	newWeight := CorrhistWeightScale - weight
	*entry = (*entry*newWeight + scaledDiff*weight) / CorrhistWeightScale
	if *entry > CorrhistMax {
		*entry = CorrhistMax
	}
	if *entry < -CorrhistMax {
		*entry = -CorrhistMax
	}
}
