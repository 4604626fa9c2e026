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

// Stats accumulates node counts and pruning statistics across a search run,
// the way the teacher's Search.statistics does for "info" style reporting.
type Stats struct {
	Nodes            uint64
	QNodes           uint64
	NullMoveAttempts uint64
	NullMoveSuccess  uint64
}

// NullMoveSuccessRate is the percentage (0-100) of attempted null-move searches that
// actually produced a beta cutoff, a standard health metric for the
// null-move pruning heuristic.
func (s Stats) NullMoveSuccessRate() float64 {
	if s.NullMoveAttempts == 0 {
		return 0
	}
	return 100 * float64(s.NullMoveSuccess) / float64(s.NullMoveAttempts)
}
