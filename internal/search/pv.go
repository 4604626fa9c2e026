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

import . "github.com/frankkopp/FrankyGo/internal/types"

// maxPvLen bounds principal-variation length; ply==63 is search's own
// emergency bailout depth, so a PV can never grow past it.
const maxPvLen = 64

// pv is a fixed-capacity principal-variation buffer - a plain array rather
// than a slice, so building one per search node never allocates.
type pv struct {
	moves [maxPvLen]Move
	len   int
}

func (p *pv) reset() { p.len = 0 }

// set replaces this pv with [m, child...], the standard "prepend the
// cutting move to the child's PV" operation performed every time a node's
// lower bound improves.
func (p *pv) set(m Move, child *pv) {
	p.len = 0
	p.moves[p.len] = m
	p.len++
	for i := 0; i < child.len && p.len < maxPvLen; i++ {
		p.moves[p.len] = child.moves[i]
		p.len++
	}
}

func (p *pv) Moves() []Move {
	return p.moves[:p.len]
}

func (p *pv) String() string {
	s := ""
	for i := 0; i < p.len; i++ {
		if i > 0 {
			s += " "
		}
		s += p.moves[i].String()
	}
	return s
}
