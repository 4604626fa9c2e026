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

// Package board is the position representation: BoardData keeps the piece
// layout, attack table, Zobrist hash and NNUE accumulators coherent as
// pieces are added, removed and moved; Board wraps it with the game-state
// fields (side to move, castling rights, en passant, move clocks) and FEN
// I/O. SAN rendering lives in package movegen.
package board

import (
	"github.com/frankkopp/FrankyGo/internal/attacks"
	"github.com/frankkopp/FrankyGo/internal/nnue"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

// Data is the incrementally-maintained piece/attack/eval state shared by
// every position, independent of whose move it is.
type Data struct {
	piecelist Piecelist
	index     PieceIndexArray
	piecemask Piecemask
	attacks   attacks.Table
	hash      zobrist.Key
	pawnHash  zobrist.Key
	eval      nnue.Eval
}

// NewData returns an empty board with no pieces.
func NewData() Data {
	return Data{
		piecelist: NewPiecelist(),
		index:     NewPieceIndexArray(),
		attacks:   attacks.New(),
		eval:      nnue.NewEval(),
	}
}

// Hash returns the full Zobrist hash.
func (d *Data) Hash() zobrist.Key { return d.hash }

// PawnHash returns the pawn-structure-only Zobrist hash.
func (d *Data) PawnHash() zobrist.Key { return d.pawnHash }

// Attacks exposes the attack table for read-only queries.
func (d *Data) Attacks() *attacks.Table { return &d.attacks }

// Piecemask exposes the per-type piece-index sets.
func (d *Data) Piecemask() *Piecemask { return &d.piecemask }

// PieceIndexAt returns the PieceIndex occupying sq, or PieceIndexNone.
func (d *Data) PieceIndexAt(sq Square) PieceIndex {
	return d.index[sq]
}

// HasPiece reports whether sq is occupied.
func (d *Data) HasPiece(sq Square) bool {
	return d.index[sq].IsValid()
}

// SquareOf returns the square a piece currently occupies.
func (d *Data) SquareOf(idx PieceIndex) Square {
	return d.piecelist[idx]
}

// TypeOf returns the piece type for a PieceIndex.
func (d *Data) TypeOf(idx PieceIndex) PieceType {
	for pt := Pawn; pt < PtLength; pt++ {
		if d.piecemask[pt].Contains(idx) {
			return pt
		}
	}
	return PtNone
}

// PieceAt returns the Piece occupying sq, or PieceNone.
func (d *Data) PieceAt(sq Square) Piece {
	idx := d.index[sq]
	if !idx.IsValid() {
		return PieceNone
	}
	return MakePiece(idx.ColorOf(), d.TypeOf(idx))
}

// KingSquare returns the square of colour's king.
func (d *Data) KingSquare(colour Color) Square {
	idx, ok := d.piecemask[King].ForColour(colour).Peek()
	if !ok {
		return SqNone
	}
	return d.piecelist[idx]
}

func (d *Data) occupied(sq Square) bool {
	return d.HasPiece(sq)
}

// AddPiece places a new piece on sq, assigning it a fresh PieceIndex and
// folding it into the hash, piece mask, eval accumulators and (if
// update is true) the attack table.
func (d *Data) AddPiece(pt PieceType, colour Color, sq Square, update bool) PieceIndex {
	slot := d.firstFreeSlot(colour)
	idx := MakePieceIndex(colour, slot)

	d.piecemask.Add(pt, idx)
	d.piecelist[idx] = sq
	d.index[sq] = idx
	d.hash = zobrist.AddPiece(d.hash, MakePiece(colour, pt), sq)
	if pt == Pawn {
		d.pawnHash = zobrist.AddPawn(d.pawnHash, MakePiece(colour, pt), sq)
	}
	d.eval.AddPiece(pt, sq, colour)

	if update {
		attacks.UpdatePieceAttacks(&d.attacks, d.occupied, sq, idx, pt, colour, true, 0, false)
		d.updateSliders(sq, false)
	}
	return idx
}

func (d *Data) firstFreeSlot(colour Color) int {
	used := Bitlist(0)
	for pt := Pawn; pt < PtLength; pt++ {
		used = used.Union(d.piecemask[pt])
	}
	used = used.ForColour(colour)
	for slot := 0; slot < MaxPieces; slot++ {
		idx := MakePieceIndex(colour, slot)
		if !used.Contains(idx) {
			return slot
		}
	}
	panic("board: no free piece slot for colour")
}

// RemovePiece takes idx off the board.
func (d *Data) RemovePiece(idx PieceIndex, update bool) {
	sq := d.piecelist[idx]
	pt := d.TypeOf(idx)
	colour := idx.ColorOf()

	d.piecemask.Remove(pt, idx)
	d.index[sq] = PieceIndexNone
	d.piecelist[idx] = SqNone
	d.hash = zobrist.RemovePiece(d.hash, MakePiece(colour, pt), sq)
	if pt == Pawn {
		d.pawnHash = zobrist.RemovePawn(d.pawnHash, MakePiece(colour, pt), sq)
	}
	d.eval.RemovePiece(pt, sq, colour)

	if update {
		attacks.UpdatePieceAttacks(&d.attacks, d.occupied, sq, idx, pt, colour, false, 0, false)
		d.updateSliders(sq, true)
	}
}

// MovePiece relocates the piece on from to to, repairing attacks, hash and
// eval in place. A king move that crosses the board's A-D/E-H file
// boundary rebuilds that colour's accumulator from the whole board; the
// NNUE feature index does not depend on the king's square, so the rebuilt
// values equal what the incremental update would have produced.
func (d *Data) MovePiece(from, to Square) {
	idx := d.index[from]
	pt := d.TypeOf(idx)
	colour := idx.ColorOf()

	var slideDir Direction
	hasSlideDir := false
	if pt.IsSlider() {
		if dir, ok := DirectionBetween(from, to); ok {
			slideDir, hasSlideDir = dir, true
		}
	}

	attacks.UpdatePieceAttacks(&d.attacks, d.occupied, from, idx, pt, colour, false, slideDir, hasSlideDir)
	d.updateSliders(from, true)
	if hasSlideDir {
		d.attacks.Add(from, idx)
	}

	d.piecelist[idx] = to
	d.index[from] = PieceIndexNone
	d.index[to] = idx
	d.hash = zobrist.MovePiece(d.hash, MakePiece(colour, pt), from, to)
	if pt == Pawn {
		d.pawnHash = zobrist.MovePawn(d.pawnHash, MakePiece(colour, pt), from, to)
	}

	if pt == King && crossesMidline(from.FileOf(), to.FileOf()) {
		d.eval.ResetColour(colour)
		for sq := SqA1; sq < SqNone; sq++ {
			pi := d.index[sq]
			if !pi.IsValid() {
				continue
			}
			d.eval.AddPieceForAcc(colour, d.TypeOf(pi), sq, pi.ColorOf())
		}
	} else {
		d.eval.MovePiece(pt, from, to, colour)
	}

	if hasSlideDir {
		d.attacks.Remove(to, idx)
	}
	attacks.UpdatePieceAttacks(&d.attacks, d.occupied, to, idx, pt, colour, true, slideDir, hasSlideDir)
	d.updateSliders(to, false)
}

// crossesMidline reports whether moving from file a to file b crosses the
// board's A-D/E-H boundary, the trigger for MovePiece's accumulator rebuild.
func crossesMidline(a, b File) bool {
	return (a >= FileE) != (b >= FileE)
}

// RebuildAttacks recomputes the whole attack table from the current piece
// layout. Used after bulk position setup (FromFEN) where per-move
// incremental updates would be wasted work.
func (d *Data) RebuildAttacks() {
	d.attacks.Clear()
	for sq := SqA1; sq < SqNone; sq++ {
		idx := d.index[sq]
		if !idx.IsValid() {
			continue
		}
		pt := d.TypeOf(idx)
		attacks.UpdatePieceAttacks(&d.attacks, d.occupied, sq, idx, pt, idx.ColorOf(), true, 0, false)
	}
}

// RebuildAccumulators recomputes both NNUE accumulators from scratch.
// Used after FromFEN and as the fallback the search can call if it ever
// suspects accumulator drift.
func (d *Data) RebuildAccumulators() {
	d.eval = nnue.NewEval()
	for sq := SqA1; sq < SqNone; sq++ {
		idx := d.index[sq]
		if !idx.IsValid() {
			continue
		}
		d.eval.AddPiece(d.TypeOf(idx), sq, idx.ColorOf())
	}
}

func (d *Data) sliderMask() Bitlist {
	return d.piecemask[Bishop].Union(d.piecemask[Rook]).Union(d.piecemask[Queen])
}

func (d *Data) updateSliders(sq Square, add bool) {
	attacks.UpdateSliders(&d.attacks, d.occupied, sq, d.sliderMask(), d.SquareOf, d.TypeOf, add)
}

// Eval evaluates the current position from colour's perspective.
func (d *Data) Eval(colour Color) int32 {
	count := 0
	for pt := Pawn; pt < PtLength; pt++ {
		count += d.piecemask[pt].Count()
	}
	return d.eval.Get(count, colour)
}
