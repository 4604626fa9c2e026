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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/board"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

func TestGoFindsBackRankMateInOne(t *testing.T) {
	// White to move, mate in one with Ra8#.
	b, err := board.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := New(1)
	result := s.Go(b, 3, time.Time{}, nil)

	assert.True(t, result.Score.IsMateValue())
	assert.Greater(t, result.Score, ValueZero)
	assert.NotEmpty(t, result.PV)
}

func TestGoDetectsStalemateAsDraw(t *testing.T) {
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, b.InCheck())

	s := New(1)
	result := s.Go(b, 1, time.Time{}, nil)

	assert.Equal(t, ValueDraw, result.Score)
}

func TestGoRunsToCompletionOnStartpos(t *testing.T) {
	b := board.Startpos()
	s := New(1)
	result := s.Go(b, 2, time.Time{}, nil)

	assert.Equal(t, 2, result.Depth)
	assert.NotEmpty(t, result.PV)
	assert.Greater(t, result.Stats.Nodes+result.Stats.QNodes, uint64(0))
}

func TestIsRepetitionDraw(t *testing.T) {
	ks := []zobrist.Key{1, 2, 1, 3, 1}
	assert.True(t, isRepetitionDraw(ks, 1))
	assert.False(t, isRepetitionDraw(ks, 99))
}
