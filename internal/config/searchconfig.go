//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// searchConfiguration holds the tunable knobs of one search instance:
// the TT size, the pruning/reduction on-off switches, and SearchParams,
// the nine tuned integers the pruning/reduction formulas are built from.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int

	// Pruning and reductions
	UseNullMove bool
	UseRFP      bool
	UseRazor    bool
	UseLmr      bool
	UseSEE      bool

	Params SearchParams
}

// SearchParams are the nine tuned integers spec.md §6 names, shared between
// reverse futility pruning, razoring, late-move reductions and the history
// heuristic's bonus/penalty formulas. Field order matches spec.md's own
// listing, and the defaults below are its literal default tuple.
type SearchParams struct {
	RfpMarginBase  int
	RfpMarginMul   int
	RazorMarginMul int
	LmrBase        int // scaled by 100
	LmrMul         int // scaled by 1000
	HistBonusBase  int
	HistBonusMul   int
	HistPenBase    int
	HistPenMul     int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128

	Settings.Search.UseNullMove = true
	Settings.Search.UseRFP = true
	Settings.Search.UseRazor = true
	Settings.Search.UseLmr = true
	Settings.Search.UseSEE = true

	Settings.Search.Params = SearchParams{
		RfpMarginBase:  0,
		RfpMarginMul:   37,
		RazorMarginMul: 250,
		LmrBase:        100,
		LmrMul:         500,
		HistBonusBase:  250,
		HistBonusMul:   300,
		HistPenBase:    250,
		HistPenMul:     300,
	}
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
}
