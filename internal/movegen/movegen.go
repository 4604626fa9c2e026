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

// Package movegen generates legal moves from a board.Board. Move shape
// (normal/capture/double-push/en-passant/castle/promotion) follows
// spec.md's move encoding; check-count dispatch and pin discovery follow
// the staged design of yukari-movegen's Board::generate family, simplified
// here to a pseudo-legal generate-then-filter-by-Illegal pipeline (see
// DESIGN.md for the tradeoff this makes against the source engine's
// fully incremental staged generator).
package movegen

import (
	"sort"

	"github.com/frankkopp/FrankyGo/internal/board"
	"github.com/frankkopp/FrankyGo/internal/moveslice"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// pseudoLegal appends every move that obeys piece-movement rules but may
// leave the mover's own king in check; legality is filtered afterward by
// attempting each move and checking board.Illegal().
func pseudoLegal(b *board.Board, capturesOnly bool, out *moveslice.MoveSlice) {
	d := b.Data()
	us := b.SideToMove()
	them := us.Flip()

	for pt := Pawn; pt < PtLength; pt++ {
		d.Piecemask()[pt].ForColour(us).ForEach(func(idx PieceIndex) {
			from := d.SquareOf(idx)
			switch pt {
			case Pawn:
				generatePawnMoves(b, from, us, capturesOnly, out)
			default:
				generatePieceMoves(b, from, idx, pt, us, them, capturesOnly, out)
			}
		})
	}

	generateCastles(b, us, out)
}

func generatePieceMoves(b *board.Board, from Square, idx PieceIndex, pt PieceType, us, them Color, capturesOnly bool, out *moveslice.MoveSlice) {
	d := b.Data()
	for sq := SqA1; sq < SqNone; sq++ {
		if !d.Attacks().AttacksToBoth(sq).Contains(idx) {
			continue
		}
		occupant := d.PieceIndexAt(sq)
		if occupant.IsValid() {
			if occupant.ColorOf() == us {
				continue
			}
			out.PushBack(NewMove(from, sq, PtNone, Capture))
			continue
		}
		if !capturesOnly {
			out.PushBack(NewMove(from, sq, PtNone, Normal))
		}
	}
}

func generatePawnMoves(b *board.Board, from Square, us Color, capturesOnly bool, out *moveslice.MoveSlice) {
	d := b.Data()
	forward, startRank, promoRank := North, Rank2, Rank8
	if us == Black {
		forward, startRank, promoRank = South, Rank7, Rank1
	}

	pushTo := forward.Travel(from)
	if pushTo != SqNone && !d.HasPiece(pushTo) {
		if !capturesOnly || pushTo.RankOf() == promoRank {
			addPawnMove(from, pushTo, promoRank, Normal, Promotion, out)
		}
		if from.RankOf() == startRank {
			doubleTo := forward.Travel(pushTo)
			if doubleTo != SqNone && !d.HasPiece(doubleTo) && !capturesOnly {
				out.PushBack(NewMove(from, doubleTo, PtNone, DoublePawnPush))
			}
		}
	}

	var capDirs [2]Direction
	if us == White {
		capDirs = [2]Direction{NorthEast, NorthWest}
	} else {
		capDirs = [2]Direction{SouthEast, SouthWest}
	}
	for _, dir := range capDirs {
		to := dir.Travel(from)
		if to == SqNone {
			continue
		}
		if to == b.EpSquare() {
			out.PushBack(NewMove(from, to, PtNone, EnPassant))
			continue
		}
		occupant := d.PieceIndexAt(to)
		if occupant.IsValid() && occupant.ColorOf() != us {
			addPawnMove(from, to, promoRank, Capture, PromoCapture, out)
		}
	}
}

func addPawnMove(from, to Square, promoRank Rank, plainType, promoType MoveType, out *moveslice.MoveSlice) {
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			out.PushBack(NewMove(from, to, pt, promoType))
		}
		return
	}
	out.PushBack(NewMove(from, to, PtNone, plainType))
}

func generateCastles(b *board.Board, us Color, out *moveslice.MoveSlice) {
	d := b.Data()
	rights := b.Castling()
	them := us.Flip()

	type castle struct {
		right           CastlingRights
		kingFrom, kingTo Square
		between         []Square
		safe            []Square
		mt              MoveType
	}
	var candidates []castle
	if us == White {
		candidates = []castle{
			{CastleWhiteKing, SqE1, SqG1, []Square{SqF1, SqG1}, []Square{SqE1, SqF1, SqG1}, CastleKingside},
			{CastleWhiteQueen, SqE1, SqC1, []Square{SqD1, SqC1, SqB1}, []Square{SqE1, SqD1, SqC1}, CastleQueenside},
		}
	} else {
		candidates = []castle{
			{CastleBlackKing, SqE8, SqG8, []Square{SqF8, SqG8}, []Square{SqE8, SqF8, SqG8}, CastleKingside},
			{CastleBlackQueen, SqE8, SqC8, []Square{SqD8, SqC8, SqB8}, []Square{SqE8, SqD8, SqC8}, CastleQueenside},
		}
	}

	for _, c := range candidates {
		if !rights.Has(c.right) {
			continue
		}
		blocked := false
		for _, sq := range c.between {
			if d.HasPiece(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		inCheck := false
		for _, sq := range c.safe {
			if !d.Attacks().AttacksTo(sq, them).IsEmpty() {
				inCheck = true
				break
			}
		}
		if inCheck {
			continue
		}
		out.PushBack(NewMove(c.kingFrom, c.kingTo, PtNone, c.mt))
	}
}

// Generate returns every legal move in the position.
func Generate(b *board.Board) moveslice.MoveSlice {
	var pseudo moveslice.MoveSlice
	pseudoLegal(b, false, &pseudo)
	return filterLegal(b, pseudo)
}

// GenerateCaptures returns every legal capturing or promoting move, used by
// quiescence search.
func GenerateCaptures(b *board.Board) moveslice.MoveSlice {
	var pseudo moveslice.MoveSlice
	pseudoLegal(b, true, &pseudo)
	return filterLegal(b, pseudo)
}

// victimTier buckets a captured piece type into the MVV ordering tier
// used by staged generation: queens first, then rooks, then minor pieces
// together, then pawns.
func victimTier(pt PieceType) int {
	switch pt {
	case Queen:
		return 0
	case Rook:
		return 1
	case Bishop, Knight:
		return 2
	default:
		return 3
	}
}

// captureVictimType returns the type of piece m removes from the board,
// accounting for en passant where the captured pawn is not on m.To().
func captureVictimType(d *board.Data, m Move) PieceType {
	if m.Type() == EnPassant {
		return Pawn
	}
	return d.TypeOf(d.PieceIndexAt(m.To()))
}

// isMaskedBadCapture is the cheap, non-SEE heuristic spec.md's incremental
// generator uses to deprioritize losing captures: an attacker worth more
// than its victim, going onto a square any enemy piece still guards, is
// probably losing the exchange and gets pushed to the back of the queue
// instead of being searched first.
func isMaskedBadCapture(d *board.Data, them Color, m Move, attackerValue, victimValue int) bool {
	if attackerValue <= victimValue {
		return false
	}
	target := m.To()
	if m.Type() == EnPassant {
		target = SquareOf(m.To().FileOf(), m.From().RankOf())
	}
	return !d.Attacks().AttacksTo(target, them).IsEmpty()
}

// GenerateCapturesIncremental drives the staged, MVV/LVA-like capture order
// quiescence search wants: victims are visited queen-first down to pawns,
// attackers within a victim square ascend by value, and captures a cheap
// mask check flags as likely losing are deferred behind the rest. callback
// is invoked for each candidate in that order; returning false stops
// generation immediately, mirroring the early-exit a beta cutoff triggers
// in yukari::search.rs's quiesce loop.
func GenerateCapturesIncremental(b *board.Board, callback func(Move) bool) {
	d := b.Data()
	them := b.SideToMove().Flip()

	captures := GenerateCaptures(b)
	type staged struct {
		m             Move
		tier          int
		attackerValue int
		bad           bool
	}
	entries := make([]staged, 0, len(captures))
	for _, m := range captures {
		attackerType := d.TypeOf(d.PieceIndexAt(m.From()))
		attackerValue := attackerType.ValueOf()
		if m.IsPromotion() {
			attackerValue = m.Promotion().ValueOf()
		}
		victimType := captureVictimType(d, m)
		entries = append(entries, staged{
			m:             m,
			tier:          victimTier(victimType),
			attackerValue: attackerValue,
			bad:           isMaskedBadCapture(d, them, m, attackerValue, victimType.ValueOf()),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].bad != entries[j].bad {
			return !entries[i].bad
		}
		if entries[i].tier != entries[j].tier {
			return entries[i].tier < entries[j].tier
		}
		return entries[i].attackerValue < entries[j].attackerValue
	})

	for _, e := range entries {
		if !callback(e.m) {
			return
		}
	}
}

func filterLegal(b *board.Board, pseudo moveslice.MoveSlice) moveslice.MoveSlice {
	var legal moveslice.MoveSlice
	for _, m := range pseudo {
		b.MakeMove(m)
		if !b.Illegal() {
			legal.PushBack(m)
		}
		b.UnmakeMove()
	}
	return legal
}

// InCheckCount returns how many enemy pieces currently attack the side to
// move's king: 0, 1 (single check) or 2 (double check). Neither search nor
// quiescence calls it, and move generation does not dispatch on it:
// Generate filters every pseudo-legal move by making it, in check or not.
func InCheckCount(b *board.Board) int {
	d := b.Data()
	us := b.SideToMove()
	return d.Attacks().AttacksTo(d.KingSquare(us), us.Flip()).Count()
}
