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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

func TestStoreProbeRoundTrip(t *testing.T) {
	tt := New(1)
	key := zobrist.Key(0x1234567890abcdef)

	tt.Store(key, FlagExact, 7, Value(123), Move(0x4142))

	entry, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, FlagExact, entry.Flag)
	assert.EqualValues(t, 7, entry.Depth)
	assert.EqualValues(t, 123, entry.Score)
	assert.EqualValues(t, Move(0x4142), entry.Move)
}

func TestProbeMissOnDifferentKey(t *testing.T) {
	tt := New(1)
	tt.Store(zobrist.Key(1), FlagLower, 3, Value(50), MoveNone)

	_, ok := tt.Probe(zobrist.Key(2))
	assert.False(t, ok)
}

func TestClearRemovesEntries(t *testing.T) {
	tt := New(1)
	key := zobrist.Key(42)
	tt.Store(key, FlagUpper, 1, Value(-10), MoveNone)
	tt.Clear()

	_, ok := tt.Probe(key)
	assert.False(t, ok)
}

func TestResizeRoundsToPowerOfTwo(t *testing.T) {
	tt := New(1)
	before := tt.numEntries
	tt.Resize(4)
	assert.True(t, tt.numEntries > before)
	assert.EqualValues(t, 0, tt.numEntries&(tt.numEntries-1), "numEntries must be a power of two")
}
