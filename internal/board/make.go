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

package board

import (
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

var rookCastleSquares = map[Square]struct{ from, to Square }{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// MakeMove applies move to the position, pushing an undo record onto the
// board's history stack. Callers are expected to have generated move
// legally (MakeMove does not itself validate that the mover isn't pinned);
// UnmakeMove reverses exactly one MakeMove call, LIFO.
func (b *Board) MakeMove(m Move) {
	undo := undoInfo{
		move:          m,
		captured:      PieceIndexNone,
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfMoveClock: b.halfMoveClock,
		hash:          b.data.hash,
		pawnHash:      b.data.pawnHash,
	}

	from, to := m.From(), m.To()
	mover := b.data.PieceIndexAt(from)
	moverType := b.data.TypeOf(mover)

	prevEp := b.epSquare
	if prevEp != SqNone {
		b.data.hash = zobrist.ClearEnPassantFile(b.data.hash, prevEp.FileOf())
	}
	b.epSquare = SqNone

	switch m.Type() {
	case EnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		capIdx := b.data.PieceIndexAt(capSq)
		undo.captured = capIdx
		undo.capturedType = Pawn
		b.data.RemovePiece(capIdx, true)
		b.data.MovePiece(from, to)
	case Capture, PromoCapture:
		capIdx := b.data.PieceIndexAt(to)
		undo.captured = capIdx
		undo.capturedType = b.data.TypeOf(capIdx)
		b.data.RemovePiece(capIdx, true)
		b.data.MovePiece(from, to)
	case CastleKingside, CastleQueenside:
		b.data.MovePiece(from, to)
		rook := rookCastleSquares[to]
		b.data.MovePiece(rook.from, rook.to)
	default:
		b.data.MovePiece(from, to)
	}

	if m.IsPromotion() {
		idx := b.data.PieceIndexAt(to)
		b.data.RemovePiece(idx, true)
		b.data.AddPiece(m.Promotion(), mover.ColorOf(), to, true)
	}

	if m.Type() == DoublePawnPush {
		b.epSquare = South.Travel(to)
		if mover.ColorOf() == Black {
			b.epSquare = North.Travel(to)
		}
		b.data.hash = zobrist.SetEnPassantFile(b.data.hash, b.epSquare.FileOf())
	}

	before := b.castling
	b.castling = b.castling.Remove(CastlingRightsLostBy(from)).Remove(CastlingRightsLostBy(to))
	if before != b.castling {
		b.data.hash = zobrist.UpdateCastling(b.data.hash, before, b.castling)
	}

	if moverType == Pawn || m.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	if b.sideToMove == Black {
		b.fullMoveNum++
	}
	b.sideToMove = b.sideToMove.Flip()
	b.data.hash = zobrist.ToggleSide(b.data.hash)

	b.history = append(b.history, undo)
	b.assertCoherent()
}

// UnmakeMove reverses the most recent MakeMove call.
func (b *Board) UnmakeMove() {
	n := len(b.history)
	undo := b.history[n-1]
	b.history = b.history[:n-1]
	m := undo.move
	from, to := m.From(), m.To()

	b.sideToMove = b.sideToMove.Flip()
	if b.sideToMove == Black {
		b.fullMoveNum--
	}

	if m.IsPromotion() {
		idx := b.data.PieceIndexAt(to)
		b.data.RemovePiece(idx, true)
		b.data.AddPiece(Pawn, b.sideToMove, to, true)
	}

	switch m.Type() {
	case CastleKingside, CastleQueenside:
		rook := rookCastleSquares[to]
		b.data.MovePiece(rook.to, rook.from)
		b.data.MovePiece(to, from)
	default:
		b.data.MovePiece(to, from)
	}

	if undo.captured.IsValid() {
		capSq := to
		if m.Type() == EnPassant {
			capSq = SquareOf(to.FileOf(), from.RankOf())
		}
		b.data.AddPiece(undo.capturedType, undo.captured.ColorOf(), capSq, true)
	}

	b.castling = undo.castling
	b.epSquare = undo.epSquare
	b.halfMoveClock = undo.halfMoveClock
	b.data.hash = undo.hash
	b.data.pawnHash = undo.pawnHash
}

// MakeNull plays a null move: flips the side to move without moving any
// piece, used by the search's null-move pruning. The en passant square (if
// any) is cleared, same as a real move would clear it.
func (b *Board) MakeNull() undoInfo {
	saved := undoInfo{
		epSquare:      b.epSquare,
		halfMoveClock: b.halfMoveClock,
		hash:          b.data.hash,
	}
	if b.epSquare != SqNone {
		b.data.hash = zobrist.ClearEnPassantFile(b.data.hash, b.epSquare.FileOf())
		b.epSquare = SqNone
	}
	b.sideToMove = b.sideToMove.Flip()
	b.data.hash = zobrist.ToggleSide(b.data.hash)
	b.halfMoveClock++
	return saved
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull(saved undoInfo) {
	b.sideToMove = b.sideToMove.Flip()
	b.epSquare = saved.epSquare
	b.halfMoveClock = saved.halfMoveClock
	b.data.hash = saved.hash
}
