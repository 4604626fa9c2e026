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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/FrankyGo/internal/board"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes of the legal move tree below a position to a
// given depth, the standard move-generator correctness/speed benchmark.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
}

// NewPerft returns an empty Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// StartPerft runs perft from fen to depth and prints a results summary,
// including nodes/sec, the way the standard perft CLI command does.
func (perft *Perft) StartPerft(fen string, depth int) {
	if depth <= 0 {
		depth = 1
	}
	*perft = Perft{}

	b, err := board.FromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	nodes := perft.miniMax(depth, b)
	elapsed := time.Since(start)
	perft.Nodes = nodes

	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = (perft.Nodes * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds())
	}

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, b *board.Board) uint64 {
	moves := Generate(b)

	if depth == 1 {
		var total uint64
		for _, m := range moves {
			isCapture := m.IsCapture()
			isEnpassant := m.Type() == EnPassant
			isCastle := m.IsCastle()
			isPromotion := m.IsPromotion()

			b.MakeMove(m)
			total++
			if isEnpassant {
				perft.EnpassantCounter++
			}
			if isCapture {
				perft.CaptureCounter++
			}
			if isCastle {
				perft.CastleCounter++
			}
			if isPromotion {
				perft.PromotionCounter++
			}
			if b.InCheck() {
				perft.CheckCounter++
			}
			b.UnmakeMove()
		}
		return total
	}

	var total uint64
	for _, m := range moves {
		b.MakeMove(m)
		total += perft.miniMax(depth-1, b)
		b.UnmakeMove()
	}
	return total
}
