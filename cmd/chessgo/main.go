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

package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/FrankyGo/internal/board"
	"github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/logging"
	"github.com/frankkopp/FrankyGo/internal/movegen"
	"github.com/frankkopp/FrankyGo/internal/search"
)

var out = message.NewPrinter(language.German)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", startFen, "FEN of the position to use for -perft or -search")
	perftDepth := flag.Int("perft", 0, "runs perft on the given position up to this depth")
	searchDepth := flag.Int("search", 0, "runs a depth-limited search on the given position")
	moveTimeMs := flag.Int("movetime", 0, "search time limit in milliseconds (0 = depth limit only)")
	ttSize := flag.Int("ttsize", 0, "transposition table size in MB (0 = config default)")
	cpuProfile := flag.Bool("profile", false, "enables CPU profiling, written to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	switch {
	case *perftDepth > 0:
		runPerft(*fen, *perftDepth)
	case *searchDepth > 0 || *moveTimeMs > 0:
		runSearch(*fen, *searchDepth, *moveTimeMs, *ttSize)
	default:
		flag.Usage()
	}
}

func runPerft(fen string, depth int) {
	var p movegen.Perft
	for i := 1; i <= depth; i++ {
		p.StartPerft(fen, i)
	}
}

func runSearch(fen string, depth, moveTimeMs, ttSizeMB int) {
	b, err := board.FromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}

	if ttSizeMB <= 0 {
		ttSizeMB = config.Settings.Search.TTSize
	}
	s := search.New(ttSizeMB)

	maxDepth := depth
	if maxDepth <= 0 {
		maxDepth = 64
	}
	var deadline time.Time
	if moveTimeMs > 0 {
		deadline = time.Now().Add(time.Duration(moveTimeMs) * time.Millisecond)
	}

	result := s.Go(b, maxDepth, deadline, nil)
	out.Printf("bestmove %s score %s depth %d nodes %d\n",
		result.PV, result.Score, result.Depth, result.Stats.Nodes+result.Stats.QNodes)
}

func printVersionInfo() {
	out.Printf("FrankyGo (chessgo)\n")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
