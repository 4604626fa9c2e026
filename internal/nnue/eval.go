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

package nnue

import . "github.com/frankkopp/FrankyGo/internal/types"

// Eval holds the two dual-perspective accumulators BoardData keeps current
// incrementally. White and Black each see the board from their own side,
// so a single evaluation call never has to mirror anything at eval time.
type Eval struct {
	White Accumulator
	Black Accumulator
}

// NewEval returns accumulators initialised to the network's bias vector,
// matching an empty board with no features added yet.
func NewEval() Eval {
	n := Default()
	return Eval{White: n.FeatureBias, Black: n.FeatureBias}
}

// Get evaluates the position from colour's perspective, selecting the
// output bucket from the total piece count on the board.
func (e *Eval) Get(pieceCount int, colour Color) int32 {
	n := Default()
	bucket := (pieceCount - 2) / Divisor
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= OutputBuckets {
		bucket = OutputBuckets - 1
	}
	if colour == White {
		return n.Evaluate(&e.White, &e.Black, bucket)
	}
	return n.Evaluate(&e.Black, &e.White, bucket)
}

// featureIndex returns the input-feature index for a piece type/square pair
// as seen by the accumulator's own perspective (own pieces use the first
// 6*64 block, the opponent's the second).
func featureIndex(pt PieceType, sq Square, own bool) int {
	block := int(pt - Pawn)
	if !own {
		block += 6
	}
	return 64*block + int(sq)
}

func (a *Accumulator) addFeature(idx int) {
	n := Default()
	w := &n.FeatureWeights[idx]
	for i := range a.Vals {
		a.Vals[i] += w.Vals[i]
	}
}

func (a *Accumulator) removeFeature(idx int) {
	n := Default()
	w := &n.FeatureWeights[idx]
	for i := range a.Vals {
		a.Vals[i] -= w.Vals[i]
	}
}

// AddPiece folds a newly placed piece into both accumulators.
func (e *Eval) AddPiece(pt PieceType, sq Square, colour Color) {
	if colour == White {
		e.White.addFeature(featureIndex(pt, sq, true))
		e.Black.addFeature(featureIndex(pt, sq.FlipVertical(), false))
	} else {
		e.Black.addFeature(featureIndex(pt, sq.FlipVertical(), true))
		e.White.addFeature(featureIndex(pt, sq, false))
	}
}

// RemovePiece undoes AddPiece for a captured or retracted piece.
func (e *Eval) RemovePiece(pt PieceType, sq Square, colour Color) {
	if colour == White {
		e.White.removeFeature(featureIndex(pt, sq, true))
		e.Black.removeFeature(featureIndex(pt, sq.FlipVertical(), false))
	} else {
		e.Black.removeFeature(featureIndex(pt, sq.FlipVertical(), true))
		e.White.removeFeature(featureIndex(pt, sq, false))
	}
}

// MovePiece slides a piece's feature from one square to another without
// touching the piece's identity; it is a RemovePiece on from followed by an
// AddPiece on to.
func (e *Eval) MovePiece(pt PieceType, from, to Square, colour Color) {
	e.RemovePiece(pt, from, colour)
	e.AddPiece(pt, to, colour)
}

// ResetColour clears one accumulator back to bias, the first step of the
// full rebuild BoardData triggers when a king crosses the board's A-D/E-H
// file midline. featureIndex does not depend on the king's square, so the
// rebuilt accumulator holds the same values the incremental path would.
func (e *Eval) ResetColour(perspective Color) {
	n := Default()
	if perspective == White {
		e.White = Accumulator{Vals: n.FeatureBias.Vals}
	} else {
		e.Black = Accumulator{Vals: n.FeatureBias.Vals}
	}
}

// AddPieceForAcc/RemovePieceForAcc touch only the named perspective's
// accumulator, letting BoardData rebuild one side's half of the network
// after a king crossing while leaving the other side's accumulator (which
// didn't change) untouched.
func (e *Eval) AddPieceForAcc(perspective Color, pt PieceType, sq Square, pieceColour Color) {
	own := pieceColour == perspective
	s := sq
	if perspective == Black {
		s = sq.FlipVertical()
	}
	idx := featureIndex(pt, s, own)
	if perspective == White {
		e.White.addFeature(idx)
	} else {
		e.Black.addFeature(idx)
	}
}

func (e *Eval) RemovePieceForAcc(perspective Color, pt PieceType, sq Square, pieceColour Color) {
	own := pieceColour == perspective
	s := sq
	if perspective == Black {
		s = sq.FlipVertical()
	}
	idx := featureIndex(pt, s, own)
	if perspective == White {
		e.White.removeFeature(idx)
	} else {
		e.Black.removeFeature(idx)
	}
}
