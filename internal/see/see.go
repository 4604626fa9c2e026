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

// Package see implements static exchange evaluation: given a capture
// move, it answers "if both sides trade every attacker and defender of
// the target square in turn, starting from least valuable, what's the
// material swing?" without playing out the moves on the board.
package see

import (
	"github.com/frankkopp/FrankyGo/internal/board"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// revealedAttackers adds to attackers any slider that was blocked by the
// piece just removed from vacated and now sees target through it. It walks
// the live board from vacated away from target and looks only at the first
// piece it meets: if that piece (of either colour) is a slider moving along
// this line, it is returned as a one-element set, otherwise the set is
// empty. occAfter is not consulted.
func revealedAttackers(b *board.Board, target, vacated Square, occAfter func(Square) bool) Bitlist {
	d := b.Data()
	dir, ok := DirectionBetween(target, vacated)
	if !ok {
		return BitlistEmpty
	}
	cur := vacated
	for i := 0; i < 7; i++ {
		next := dir.Travel(cur)
		if next == SqNone {
			return BitlistEmpty
		}
		idx := d.PieceIndexAt(next)
		if idx.IsValid() {
			pt := d.TypeOf(idx)
			if pt.IsSlider() && ValidForSlider(pt, dir.Opposite()) {
				return Bitlist(0).Set(idx)
			}
			return BitlistEmpty
		}
		cur = next
	}
	return BitlistEmpty
}

// epCaptureSquare returns the square of the pawn actually removed by an
// en-passant capture: same file as the destination, same rank as the
// origin - the one square on the board that differs from m.To().
func epCaptureSquare(m Move) Square {
	return SquareOf(m.To().FileOf(), m.From().RankOf())
}

// Evaluate runs alpha-beta static exchange evaluation for move m, a
// capture (plain, en-passant, or promotion-capture), returning the net
// material gain in centipawns for the side making the capture. x-ray
// attacks (sliders revealed once a blocker in front of them is captured)
// are folded back into the attacker sets as each piece is removed, and the
// side to move alternates at every step of the swap-off, per spec.md's
// description of the algorithm.
func Evaluate(b *board.Board, m Move) int {
	from := m.From()
	target := m.To()
	if m.Type() == EnPassant {
		target = epCaptureSquare(m)
	}

	d := b.Data()
	attackerIdx := d.PieceIndexAt(from)
	if !attackerIdx.IsValid() {
		return 0
	}
	us := attackerIdx.ColorOf()

	var victimValue int
	if m.Type() == EnPassant {
		victimValue = Pawn.ValueOf()
	} else {
		victimValue = d.TypeOf(d.PieceIndexAt(target)).ValueOf()
	}

	// attackerValue is the value of whatever now sits on target after this
	// move: the moving piece's own type, or the promoted piece if m
	// promotes - in which case the capturing side also immediately banks
	// the promotion's value delta as part of this capture.
	attackerValue := d.TypeOf(attackerIdx).ValueOf()
	if m.IsPromotion() {
		promoted := m.Promotion().ValueOf()
		victimValue += promoted - Pawn.ValueOf()
		attackerValue = promoted
	}

	gain := make([]int, 0, 32)
	gain = append(gain, victimValue)

	attackers := d.Attacks().AttacksToBoth(target)
	attackers = attackers.Clear(attackerIdx)
	taken := map[PieceIndex]bool{attackerIdx: true}

	revealed := revealedAttackers(b, target, from, func(sq Square) bool { return false })
	attackers = attackers.Union(revealed)

	side := us.Flip()
	curAttackerValue := attackerValue

	for {
		idx, pt, ok := getLeastValuablePieceFiltered(d, attackers, taken, side)
		if !ok {
			break
		}
		gain = append(gain, curAttackerValue-gain[len(gain)-1])
		taken[idx] = true

		revealed := revealedAttackers(b, target, d.SquareOf(idx), func(sq Square) bool {
			return false
		})
		attackers = attackers.Union(revealed)

		curAttackerValue = pt.ValueOf()
		side = side.Flip()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

// getLeastValuablePieceFiltered returns the cheapest not-yet-taken attacker
// belonging to side - SEE alternates sides at every swap-off step, so a
// candidate owned by the wrong color must never be picked, even if it is
// the globally cheapest remaining attacker of the square.
func getLeastValuablePieceFiltered(d *board.Data, attackers Bitlist, taken map[PieceIndex]bool, side Color) (PieceIndex, PieceType, bool) {
	best := PieceIndexNone
	bestType := PtLength
	attackers.ForEach(func(idx PieceIndex) {
		if taken[idx] || idx.ColorOf() != side {
			return
		}
		pt := d.TypeOf(idx)
		if pt < bestType {
			bestType = pt
			best = idx
		}
	})
	if !best.IsValid() {
		return PieceIndexNone, PtNone, false
	}
	return best, bestType, true
}

// GreaterEqual reports whether move m's SEE value is >= threshold. It runs
// the full Evaluate and compares; quiescence search uses it to skip
// captures that lose material.
func GreaterEqual(b *board.Board, m Move, threshold int) bool {
	return Evaluate(b, m) >= threshold
}
