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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/board"
)

const (
	startFen    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

// perftLeaves counts leaves by calling miniMax directly on a fresh Perft,
// bypassing StartPerft's timing and printed report; miniMax still fills in
// the Perft counters, which these tests do not inspect.
func perftLeaves(t *testing.T, fen string, depth int) uint64 {
	b, err := board.FromFEN(fen)
	assert.NoError(t, err)
	var p Perft
	return p.miniMax(depth, b)
}

func TestPerftStartposDepth1to3(t *testing.T) {
	assert.EqualValues(t, 20, perftLeaves(t, startFen, 1))
	assert.EqualValues(t, 400, perftLeaves(t, startFen, 2))
	assert.EqualValues(t, 8902, perftLeaves(t, startFen, 3))
}

func TestPerftKiwipeteDepth1(t *testing.T) {
	assert.EqualValues(t, 48, perftLeaves(t, kiwipeteFen, 1))
}

func TestPerftPosition3Depth1to2(t *testing.T) {
	assert.EqualValues(t, 14, perftLeaves(t, position3, 1))
	assert.EqualValues(t, 191, perftLeaves(t, position3, 2))
}
