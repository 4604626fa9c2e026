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

// White queen can take a8's rook down an open file, and a pawn can take
// e5's knight - a rook is worth more than a knight, so staged generation
// must offer the queen's capture before the pawn's regardless of which
// piece type is doing the capturing.
const queenRookPawnKnightFen = "r6k/8/8/4n3/3P4/8/8/Q6K w - -"

func TestGenerateCapturesIncrementalMatchesGenerateCaptures(t *testing.T) {
	b, err := board.FromFEN(queenRookPawnKnightFen)
	require.NoError(t, err)

	want := GenerateCaptures(b)
	var got []Move
	GenerateCapturesIncremental(b, func(m Move) bool {
		got = append(got, m)
		return true
	})

	assert.ElementsMatch(t, []Move(want), got)
}

func TestGenerateCapturesIncrementalOrdersHigherValueVictimFirst(t *testing.T) {
	b, err := board.FromFEN(queenRookPawnKnightFen)
	require.NoError(t, err)

	var got []Move
	GenerateCapturesIncremental(b, func(m Move) bool {
		got = append(got, m)
		return true
	})

	require.Len(t, got, 2)
	assert.Equal(t, "a1a8", got[0].String())
	assert.Equal(t, "d4e5", got[1].String())
}

func TestGenerateCapturesIncrementalStopsOnCallbackFalse(t *testing.T) {
	b, err := board.FromFEN(queenRookPawnKnightFen)
	require.NoError(t, err)

	calls := 0
	GenerateCapturesIncremental(b, func(m Move) bool {
		calls++
		return false
	})

	assert.Equal(t, 1, calls)
}
