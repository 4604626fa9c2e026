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

package movegen

import (
	"strings"

	"github.com/frankkopp/FrankyGo/internal/board"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// ToSan renders m, a legal move in b, in Standard Algebraic Notation.
// Disambiguation (when two like pieces could reach the same square) goes
// file, then rank, then full origin square; check and checkmate add the
// `+`/`#` suffix; castling renders as `O-O`/`O-O-O`. board.Board cannot
// generate its own legal moves (that would make movegen and board import
// each other), so this lives alongside Generate rather than as a Board
// method.
func ToSan(b *board.Board, m Move) string {
	if m.IsCastle() {
		return checkSuffix(b, m, castleSan(m))
	}

	d := b.Data()
	from := m.From()
	to := m.To()
	attackerIdx := d.PieceIndexAt(from)
	pt := d.TypeOf(attackerIdx)
	us := attackerIdx.ColorOf()

	var sb strings.Builder
	if pt != Pawn {
		sb.WriteString(pt.Char())
		writeDisambiguation(&sb, b, m, pt, us)
	}

	if m.IsCapture() {
		if pt == Pawn {
			sb.WriteString(from.FileOf().String())
		}
		sb.WriteString("x")
	}

	sb.WriteString(to.FileOf().String())
	sb.WriteString(to.RankOf().String())

	if m.IsPromotion() {
		sb.WriteString("=")
		sb.WriteString(m.Promotion().Char())
	}

	return checkSuffix(b, m, sb.String())
}

// PvToSan renders a principal variation as a space-separated line of SAN
// moves, replaying each move on b (and unwinding the whole line afterward)
// to compute the position each subsequent move's SAN is relative to.
func PvToSan(b *board.Board, moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ToSan(b, m))
		b.MakeMove(m)
	}
	for range moves {
		b.UnmakeMove()
	}
	return sb.String()
}

func castleSan(m Move) string {
	if m.Type() == CastleKingside {
		return "O-O"
	}
	return "O-O-O"
}

// writeDisambiguation appends the minimal origin-square hint SAN needs when
// another like-colored piece of the same type could also legally reach m's
// destination: the origin file if that resolves the ambiguity, the origin
// rank if pieces share a file, or both if neither alone would.
func writeDisambiguation(sb *strings.Builder, b *board.Board, m Move, pt PieceType, us Color) {
	from := m.From()
	to := m.To()
	d := b.Data()

	sameRank, sameFile, found := false, false, false
	for _, other := range Generate(b) {
		if other.To() != to || other.From() == from {
			continue
		}
		otherIdx := d.PieceIndexAt(other.From())
		if otherIdx.ColorOf() != us || d.TypeOf(otherIdx) != pt {
			continue
		}
		found = true
		if other.From().RankOf() == from.RankOf() {
			sameRank = true
		}
		if other.From().FileOf() == from.FileOf() {
			sameFile = true
		}
	}
	if !found {
		return
	}
	if sameRank || !sameFile {
		sb.WriteString(from.FileOf().String())
	}
	if sameFile {
		sb.WriteString(from.RankOf().String())
	}
}

// checkSuffix plays m on b to see whether it checks or mates the opponent,
// then unmakes it so the caller's board is left untouched.
func checkSuffix(b *board.Board, m Move, san string) string {
	b.MakeMove(m)
	defer b.UnmakeMove()
	if !b.InCheck() {
		return san
	}
	if len(Generate(b)) == 0 {
		return san + "#"
	}
	return san + "+"
}
