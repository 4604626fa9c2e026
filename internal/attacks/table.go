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

// Package attacks maintains, for every square, the Bitlist of pieces that
// currently attack it. The table is never rebuilt from scratch on a normal
// move: add_piece/remove_piece/move_piece patch exactly the rays and leaps
// that changed, which is what lets the search make and unmake millions of
// moves per second without a board scan.
package attacks

import (
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// Table is the per-square attacker Bitlist array, indexed by Square.
type Table [64]Bitlist

// New returns an empty attack table.
func New() Table {
	return Table{}
}

// AttacksTo returns the attackers of square belonging to colour.
func (t *Table) AttacksTo(square Square, colour Color) Bitlist {
	return t[square].ForColour(colour)
}

// AttacksToBoth returns all attackers of square, either colour.
func (t *Table) AttacksToBoth(square Square) Bitlist {
	return t[square]
}

// Clear empties the whole table, used by RebuildAttacks.
func (t *Table) Clear() {
	for i := range t {
		t[i] = BitlistEmpty
	}
}

func (t *Table) add(sq Square, idx PieceIndex) {
	t[sq] = t[sq].Set(idx)
}

func (t *Table) remove(sq Square, idx PieceIndex) {
	t[sq] = t[sq].Clear(idx)
}

// Add records that idx attacks sq. Exported for BoardData.MovePiece, which
// needs to patch a slider's own departure/arrival squares directly rather
// than through the directional add/remove helpers below.
func (t *Table) Add(sq Square, idx PieceIndex) {
	t.add(sq, idx)
}

// Remove clears the record that idx attacks sq.
func (t *Table) Remove(sq Square, idx PieceIndex) {
	t.remove(sq, idx)
}

// occupied reports whether a square is occupied, supplied by the caller
// (BoardData owns the PieceIndexArray) so this package stays independent
// of board layout.
type occupied func(sq Square) bool

// leap patches the single destination square dest reaches by one step of
// dir from sq, if that step stays on the board.
func leap(t *Table, sq Square, idx PieceIndex, dir Direction, add bool) {
	dest := dir.Travel(sq)
	if dest == SqNone {
		return
	}
	if add {
		t.add(dest, idx)
	} else {
		t.remove(dest, idx)
	}
}

// slide patches every square along dir from sq until the board edge or an
// occupied square (inclusive of that occupied square: an attacker still
// attacks the square a blocker sits on, it just can't see past it).
// skipDir/skipOpposite let MovePiece suppress the two directions the
// moving slider's own departure square lies along, which update_sliders
// repairs separately since those rays may now extend further.
func slide(t *Table, occ occupied, sq Square, idx PieceIndex, dir Direction, add bool, skip Direction, hasSkip bool) {
	if hasSkip && (skip == dir || skip == dir.Opposite()) {
		return
	}
	cur := sq
	for i := 0; i < 7; i++ {
		next := dir.Travel(cur)
		if next == SqNone {
			return
		}
		if add {
			t.add(next, idx)
		} else {
			t.remove(next, idx)
		}
		if occ(next) {
			return
		}
		cur = next
	}
}

// UpdatePieceAttacks adds (add=true) or removes (add=false) the attacks
// piece pt at PieceIndex idx projects from sq. skipDir/hasSkip suppress one
// axis during MovePiece, the same way the teacher's update_attacks does.
func UpdatePieceAttacks(t *Table, occ occupied, sq Square, idx PieceIndex, pt PieceType, colour Color, add bool, skipDir Direction, hasSkip bool) {
	switch pt {
	case Pawn:
		if colour == White {
			leap(t, sq, idx, NorthEast, add)
			leap(t, sq, idx, NorthWest, add)
		} else {
			leap(t, sq, idx, SouthEast, add)
			leap(t, sq, idx, SouthWest, add)
		}
	case Knight:
		for _, d := range KnightDirections {
			leap(t, sq, idx, d, add)
		}
	case King:
		for _, d := range RayDirections {
			leap(t, sq, idx, d, add)
		}
	case Bishop:
		for _, d := range RayDirections {
			if ValidForSlider(Bishop, d) {
				slide(t, occ, sq, idx, d, add, skipDir, hasSkip)
			}
		}
	case Rook:
		for _, d := range RayDirections {
			if ValidForSlider(Rook, d) {
				slide(t, occ, sq, idx, d, add, skipDir, hasSkip)
			}
		}
	case Queen:
		for _, d := range RayDirections {
			slide(t, occ, sq, idx, d, add, skipDir, hasSkip)
		}
	}
}

// squareOf resolves a PieceIndex to its current square, and pieceTypeOf its
// piece type, both supplied by BoardData so this package needn't know
// about Piecelist/Piecemask layout.
type squareOf func(idx PieceIndex) Square
type pieceTypeOf func(idx PieceIndex) PieceType

// UpdateSliders extends or retracts slider attacks that pass through
// square: add=true after a piece left it (the square just emptied, so rays
// that reached it now continue past it), add=false after a piece arrived
// (rays now stop at it). Callers use UpdatePieceAttacks for the mover
// itself; UpdateSliders repairs the *other* sliders whose ray reaches sq.
func UpdateSliders(t *Table, occ occupied, sq Square, sliderMask Bitlist, sqOf squareOf, ptOf pieceTypeOf, add bool) {
	sliders := t[sq].Intersect(sliderMask)
	sliders.ForEach(func(idx PieceIndex) {
		attackerSq := sqOf(idx)
		dir, ok := DirectionBetween(attackerSq, sq)
		if !ok || !ValidForSlider(ptOf(idx), dir) {
			return
		}
		cur := sq
		for i := 0; i < 7; i++ {
			next := dir.Travel(cur)
			if next == SqNone {
				return
			}
			if add {
				t.add(next, idx)
			} else {
				t.remove(next, idx)
			}
			if occ(next) {
				return
			}
			cur = next
		}
	})
}
