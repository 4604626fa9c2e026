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

package see

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/FrankyGo/internal/board"
	"github.com/frankkopp/FrankyGo/internal/movegen"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// findMove looks up a pseudo-legal move by its coordinate string (e.g.
// "d3e5" or "f7f8q") so test cases can reference moves the way WAC-style
// SEE fixtures do, rather than hand-encoding Move bit patterns.
func findMove(t *testing.T, b *board.Board, uci string) Move {
	t.Helper()
	moves := movegen.Generate(b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.String() == uci {
			return m
		}
	}
	require.Failf(t, "move not found", "%s not generated for position", uci)
	return MoveNone
}

// Win-At-Chess style SEE fixtures, one pawn unit scaled to the engine's
// centipawn piece values (Pawn.ValueOf() == 100).
func TestEvaluateWacScenarios(t *testing.T) {
	cases := []struct {
		name     string
		fen      string
		move     string
		expected int
	}{
		{"knight takes knight, rook recaptures", "1k1r4/1ppn3p/p4b2/4n3/8/P2N2P1/1PP1R1BP/2K1Q3 w - -", "d3e5", 1 * Pawn.ValueOf()},
		{"queen lurking behind the rook flips it", "1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - -", "d3e5", -2 * Pawn.ValueOf()},
		{"rook pawn promotes and wins the rook", "7R/5P2/8/8/6r1/3K4/5p2/4k3 w - -", "f7f8q", 8 * Pawn.ValueOf()},
		{"promotion contested by a bishop", "6RR/4bP2/8/8/5r2/3K4/5p2/4k3 w - -", "f7f8q", 2 * Pawn.ValueOf()},
		{"even trade on a rook file", "4R3/2r3p1/5bk1/1p1r3p/p2PR1P1/P1BK1P2/1P6/8 b - -", "h5g4", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := board.FromFEN(c.fen)
			require.NoError(t, err)
			m := findMove(t, b, c.move)
			assert.Equal(t, c.expected, Evaluate(b, m))
			if c.expected >= 0 {
				assert.True(t, GreaterEqual(b, m, 0))
			} else {
				assert.False(t, GreaterEqual(b, m, 0))
			}
		})
	}
}
