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
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/FrankyGo/internal/board"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

func sanMove(t *testing.T, b *board.Board, uci string) Move {
	t.Helper()
	for _, m := range Generate(b) {
		if m.String() == uci {
			return m
		}
	}
	require.Failf(t, "move not found", "%s not generated for position", uci)
	return MoveNone
}

func TestToSanDisambiguatesKnightsByFile(t *testing.T) {
	// Both knights can land on d2; since they share a rank, SAN must
	// disambiguate by origin file (the classic Nbd2/Nfd2 case).
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/1N2KN2 w - -")
	require.NoError(t, err)

	assert.Equal(t, "Nbd2", ToSan(b, sanMove(t, b, "b1d2")))
	assert.Equal(t, "Nfd2", ToSan(b, sanMove(t, b, "f1d2")))
}

func TestToSanAddsCheckSuffix(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/4K2R w - -")
	require.NoError(t, err)

	assert.Equal(t, "Rh8+", ToSan(b, sanMove(t, b, "h1h8")))
}

func TestToSanAddsCheckmateSuffix(t *testing.T) {
	b, err := board.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, "Ra8#", ToSan(b, sanMove(t, b, "a1a8")))
}

func TestToSanRendersCastling(t *testing.T) {
	b, err := board.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	require.NoError(t, err)

	assert.Equal(t, "O-O", ToSan(b, sanMove(t, b, "e1g1")))
	assert.Equal(t, "O-O-O", ToSan(b, sanMove(t, b, "e1c1")))
}

func TestPvToSanLeavesBoardUnchanged(t *testing.T) {
	b, err := board.FromFEN(startFen)
	require.NoError(t, err)
	before := b.FEN()

	pv := []Move{sanMove(t, b, "e2e4")}
	line := PvToSan(b, pv)

	assert.Equal(t, "e4", line)
	assert.Equal(t, before, b.FEN())
}
