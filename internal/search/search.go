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

// Package search implements iterative-deepening alpha-beta search over a
// board.Board: null-move pruning, reverse futility pruning, razoring, late
// move reductions, quiescence with SEE-filtered captures, a gravity-clamped
// history heuristic and pawn-structure correction history, backed by the
// lock-free transposition table in internal/transpositiontable.
package search

import (
	"math"
	"sort"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/FrankyGo/internal/board"
	"github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/history"
	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	"github.com/frankkopp/FrankyGo/internal/movegen"
	"github.com/frankkopp/FrankyGo/internal/see"
	"github.com/frankkopp/FrankyGo/internal/transpositiontable"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/util"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// maxPly is the emergency recursion bailout depth: both search and quiesce
// return the static eval rather than recursing further once reached.
const maxPly = 63

// Result is one completed iterative-deepening iteration's outcome.
type Result struct {
	Depth int
	Score Value
	PV    []Move
	Stats Stats
}

// Search owns one engine instance's persistent search state: its
// transposition table, history tables, and tunables. It is not safe for
// concurrent Go() calls - spec.md's Non-goals exclude SMP search, so one
// goroutine drives one Search at a time.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	tt     *transpositiontable.Table
	hist   *history.Table
	corr   *history.Corrhist
	params config.SearchParams

	stopFlag  *util.Bool
	start     time.Time
	stopAfter time.Time
	hasLimit  bool

	stats Stats
}

// New creates a Search with its own transposition table sized in MB, history
// and correction-history tables, and the tunables from config.Settings.
func New(ttSizeMB int) *Search {
	return &Search{
		log:      myLogging.GetLog(),
		slog:     myLogging.GetSearchLog(),
		tt:       transpositiontable.New(ttSizeMB),
		hist:     history.NewTable(),
		corr:     history.NewCorrhist(),
		params:   config.Settings.Search.Params,
		stopFlag: util.NewBool(false),
	}
}

// NewGame resets all learned state between games: the TT, history and
// correction history tables.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.hist = history.NewTable()
	s.corr = history.NewCorrhist()
}

// Stop requests cooperative cancellation of an in-progress Go call; the
// search reads this flag on every timeUp call, while the wall clock is
// only checked every 1024 nodes.
func (s *Search) Stop() {
	s.stopFlag.Store(true)
}

// aspirationWindow is the initial half-width of the window each iterative
// deepening iteration searches around the previous iteration's score,
// following yukari/src/main.rs's `lower_bound`/`upper_bound` starting at
// 50 centipawns and doubling on the side that failed until the search
// lands inside the window.
const aspirationWindow Value = 50

// Go runs iterative deepening from depth 1 up to maxDepth (or until
// deadline, if non-zero), returning the deepest completed iteration's
// result. keystack is the game's hash history so far, used for
// three-fold-repetition detection; it does not include the root position
// itself. Each depth after the first searches a narrow window around the
// prior iteration's score, widening and re-searching at the same depth
// whenever the result falls outside it.
func (s *Search) Go(b *board.Board, maxDepth int, deadline time.Time, keystack []zobrist.Key) Result {
	s.stopFlag.Store(false)
	s.start = time.Now()
	s.stopAfter = deadline
	s.hasLimit = !deadline.IsZero()
	s.stats = Stats{}

	var best Result
	score := ValueZero
	for depth := 1; depth <= maxDepth; depth++ {
		lowerBound := aspirationWindow
		upperBound := aspirationWindow
		var p pv
		timedOut := false

		for {
			p.reset()
			ks := append([]zobrist.Key{}, keystack...)
			lowerWindow := score - lowerBound
			if lowerWindow < -ValueInfinite {
				lowerWindow = -ValueInfinite
			}
			upperWindow := score + upperBound
			if upperWindow > ValueInfinite {
				upperWindow = ValueInfinite
			}

			score = s.search(b, depth, lowerWindow, upperWindow, &p, 0, &ks)

			if s.stopFlag.Load() || (s.hasLimit && time.Now().After(s.stopAfter) && depth > 1) {
				timedOut = true
				break
			}
			if score <= lowerWindow && lowerWindow > -ValueInfinite {
				lowerBound *= 2
				continue
			}
			if score >= upperWindow && upperWindow < ValueInfinite {
				upperBound *= 2
				continue
			}
			break
		}
		if timedOut {
			break
		}

		best = Result{Depth: depth, Score: score, PV: append([]Move{}, p.Moves()...), Stats: s.stats}
		s.slog.Info(out.Sprintf("depth %d score %s nodes %d nps %d pv %s",
			depth, score, s.stats.Nodes+s.stats.QNodes, util.Nps(s.stats.Nodes+s.stats.QNodes, time.Since(s.start)), p.String()))

		if score.IsMateValue() {
			break
		}
	}
	return best
}

// timeUp is the cooperative cancellation check used throughout search and
// quiesce: cheap enough to call every node, but only actually checks the
// clock every 1024 nodes (trailing zero count, following yukari's
// `nodes.trailing_zeros() >= 10`).
func (s *Search) timeUp() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.stats.Nodes&1023 != 0 {
		return false
	}
	return s.hasLimit && time.Now().After(s.stopAfter)
}

func isRepetitionDraw(keystack []zobrist.Key, hash zobrist.Key) bool {
	count := 0
	for _, k := range keystack {
		if k == hash {
			count++
		}
	}
	return count >= 3
}

func (s *Search) evalWithCorrhist(b *board.Board) Value {
	raw := b.Data().Eval(b.SideToMove())
	corrected := s.corr.Correct(b.SideToMove(), b.Data().PawnHash(), raw)
	if corrected > int32(ValueMate)-1 {
		corrected = int32(ValueMate) - 1
	}
	if corrected < -int32(ValueMate)+1 {
		corrected = -int32(ValueMate) + 1
	}
	return Value(corrected)
}

func (s *Search) updateCorrhist(b *board.Board, depth int, diff Value) {
	weight := depth + 1
	if weight > 16 {
		weight = 16
	}
	s.corr.Update(b.SideToMove(), b.Data().PawnHash(), int32(weight), int32(diff))
}

// quiesce resolves tactical noise at the end of a search line: only
// captures and promotions are considered, and a capture whose SEE is
// negative is skipped outright rather than searched, since losing material
// can never be the position's true quiescent value.
func (s *Search) quiesce(b *board.Board, alpha, beta Value, p *pv, ply int) Value {
	evalInt := s.evalWithCorrhist(b)
	p.reset()

	if ply == maxPly {
		return evalInt
	}
	if evalInt >= beta {
		return beta
	}
	if evalInt > alpha {
		alpha = evalInt
	}

	cutoff := false
	movegen.GenerateCapturesIncremental(b, func(m Move) bool {
		if config.Settings.Search.UseSEE && !see.GreaterEqual(b, m, 0) {
			return true
		}

		s.stats.QNodes++
		b.MakeMove(m)
		var childPV pv
		score := -s.quiesce(b, -beta, -alpha, &childPV, ply+1)
		b.UnmakeMove()

		if score >= beta {
			alpha = beta
			cutoff = true
			return false
		}
		if score > alpha {
			alpha = score
			p.set(m, &childPV)
		}
		return true
	})
	if cutoff {
		return beta
	}

	return alpha
}

func (s *Search) probeTT(hash zobrist.Key, depth, ply int, alpha, beta Value) (Value, Move, bool) {
	if !config.Settings.Search.UseTT {
		return 0, MoveNone, false
	}
	entry, ok := s.tt.Probe(hash)
	if !ok {
		return 0, MoveNone, false
	}
	ttMove := entry.Move
	if int(entry.Depth) >= depth {
		score := entry.Score.FromTT(ply)
		switch entry.Flag {
		case transpositiontable.FlagExact:
			return score, ttMove, true
		case transpositiontable.FlagUpper:
			if score <= alpha {
				return alpha, ttMove, true
			}
		case transpositiontable.FlagLower:
			if score >= beta {
				return beta, ttMove, true
			}
		}
	}
	return 0, ttMove, false
}

func (s *Search) writeTT(hash zobrist.Key, flag transpositiontable.Flag, depth int, score Value, ply int, m Move) {
	if !config.Settings.Search.UseTT {
		return
	}
	s.tt.Store(hash, flag, int8(depth), score.ToTT(ply), m)
}

// search is the alpha-beta workhorse: lower_bound/upper_bound follow
// yukari's fail-soft naming (lower_bound rises as better moves are found,
// upper_bound is the caller's cutoff), so a returned value of upper_bound
// signals a beta cutoff, not necessarily the position's exact value.
func (s *Search) search(b *board.Board, depth int, lowerBound, upperBound Value, p *pv, ply int, keystack *[]zobrist.Key) Value {
	if ply == maxPly {
		return s.evalWithCorrhist(b)
	}

	if b.InCheck() {
		depth++
	}

	if depth <= 0 {
		return s.quiesce(b, lowerBound, upperBound, p, ply)
	}

	p.reset()

	hash := b.Hash()
	ttScore, ttMove, ttHit := s.probeTT(hash, depth, ply, lowerBound, upperBound)
	if ttHit && lowerBound == upperBound-1 {
		return ttScore
	}

	evalInt := s.evalWithCorrhist(b)

	if config.Settings.Search.UseRFP && !b.InCheck() && depth <= 3 {
		rfpMargin := Value(s.params.RfpMarginBase + s.params.RfpMarginMul*depth)
		if evalInt-rfpMargin >= upperBound {
			return upperBound
		}
	}

	if config.Settings.Search.UseRazor && !b.InCheck() && depth == 1 {
		razorMargin := Value(s.params.RazorMarginMul)
		if evalInt+razorMargin <= lowerBound {
			q := s.quiesce(b, lowerBound, upperBound, p, ply)
			if q <= lowerBound {
				return q
			}
		}
	}

	reduction := 3
	if depth > 6 {
		reduction = 4
	}

	if config.Settings.Search.UseNullMove && !b.InCheck() && depth >= 2 && evalInt >= upperBound {
		*keystack = append(*keystack, hash)
		saved := b.MakeNull()
		var childPV pv
		s.stats.NullMoveAttempts++
		score := -s.search(b, depth-1-reduction, -upperBound, -upperBound+1, &childPV, ply+1, keystack)
		b.UnmakeNull(saved)
		*keystack = (*keystack)[:len(*keystack)-1]

		if score >= upperBound {
			s.stats.NullMoveSuccess++
			return upperBound
		}
	}

	moves := movegen.Generate(b)
	if len(moves) == 0 {
		p.reset()
		if b.InCheck() {
			return MatedIn(ply)
		}
		return ValueDraw
	}

	if isRepetitionDraw(*keystack, hash) {
		return ValueDraw
	}

	orderMoves(moves, ttMove, b.SideToMove(), s.hist)

	var bestMove Move = MoveNone
	bestScore := Value(math.MinInt32)
	raisedLowerBound := false

	for i, m := range moves {
		s.stats.Nodes++

		b.MakeMove(m)
		*keystack = append(*keystack, hash)

		red := 1
		if config.Settings.Search.UseLmr && lowerBound == upperBound-1 && depth >= 3 && i >= 4 && !b.InCheck() && !m.IsCapture() {
			lnDepth := math.Log(float64(depth))
			lnI := math.Log(float64(i))
			red += int(lnDepth*lnI*float64(s.params.LmrMul)/1000.0 + float64(s.params.LmrBase)/100.0)
		}

		var childPV pv
		var score Value
		if i > 0 {
			score = -s.search(b, depth-red, -lowerBound-1, -lowerBound, &childPV, ply+1, keystack)
		}
		if i > 0 && red > 1 && score > lowerBound {
			red = 1
			score = -s.search(b, depth-red, -lowerBound-1, -lowerBound, &childPV, ply+1, keystack)
		}
		if i == 0 || (lowerBound != upperBound-1 && score > lowerBound) {
			red = 1
			score = -s.search(b, depth-red, -upperBound, -lowerBound, &childPV, ply+1, keystack)
		}

		*keystack = (*keystack)[:len(*keystack)-1]
		b.UnmakeMove()

		if score > bestScore {
			bestMove = m
			bestScore = score
		}

		if s.timeUp() {
			return lowerBound
		}

		if score >= upperBound {
			s.applyHistoryCutoff(moves[:i], m, depth, b.SideToMove())
			s.writeTT(hash, transpositiontable.FlagLower, depth, upperBound, ply, bestMove)
			if config.Settings.Eval.UseCorrhist && !b.InCheck() && !m.IsCapture() && upperBound >= evalInt {
				s.updateCorrhist(b, depth, upperBound-evalInt)
			}
			return upperBound
		}

		if score > lowerBound {
			lowerBound = score
			p.set(m, &childPV)
			raisedLowerBound = true
		}
	}

	flag := transpositiontable.FlagUpper
	if raisedLowerBound {
		flag = transpositiontable.FlagExact
	}
	s.writeTT(hash, flag, depth, lowerBound, ply, bestMove)

	if config.Settings.Eval.UseCorrhist && !b.InCheck() && !bestMove.IsCapture() && (raisedLowerBound || lowerBound <= evalInt) {
		s.updateCorrhist(b, depth, lowerBound-evalInt)
	}

	return lowerBound
}

// applyHistoryCutoff rewards the cutting quiet move and penalizes every
// quiet move searched before it that failed to cut off, the standard
// history-heuristic pairing that makes the table discriminating rather than
// just accumulating bonuses.
func (s *Search) applyHistoryCutoff(searched []Move, cutoff Move, depth int, us Color) {
	if cutoff.IsCapture() {
		return
	}
	bonus := int16(s.params.HistBonusMul*depth - s.params.HistBonusBase)
	penalty := int16(s.params.HistPenMul*depth - s.params.HistPenBase)
	if bonus > history.HistoryClamp {
		bonus = history.HistoryClamp
	}
	if bonus < -history.HistoryClamp {
		bonus = -history.HistoryClamp
	}
	if penalty > history.HistoryClamp {
		penalty = history.HistoryClamp
	}
	if penalty < -history.HistoryClamp {
		penalty = -history.HistoryClamp
	}

	for _, m := range searched {
		if m.IsCapture() {
			continue
		}
		s.hist.Update(us, m.From(), m.To(), -penalty)
	}
	s.hist.Update(us, cutoff.From(), cutoff.To(), bonus)
}

// orderMoves sorts pseudo-legal-filtered moves in place: the TT move first,
// then captures ahead of quiets, quiets ordered by history score. This
// mirrors yukari's sort comparator exactly, including its capture/capture
// "hack" tie (both count as Ordering::Equal, i.e. left in generation order).
func orderMoves(moves []Move, ttMove Move, us Color, hist *history.Table) {
	sort.SliceStable(moves, func(i, j int) bool {
		a, bm := moves[i], moves[j]
		if ttMove != MoveNone {
			if a == ttMove {
				return true
			}
			if bm == ttMove {
				return false
			}
		}
		aCap, bCap := a.IsCapture(), bm.IsCapture()
		if !aCap && !bCap {
			return hist.Score(us, bm.From(), bm.To()) < hist.Score(us, a.From(), a.To())
		}
		if !aCap && bCap {
			return false
		}
		if aCap && !bCap {
			return true
		}
		return false
	})
}
