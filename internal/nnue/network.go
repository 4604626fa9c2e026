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

// Package nnue is the quantised efficiently-updatable neural network
// evaluator: a 768-input, single hidden layer network with 8 output
// buckets selected by piece count, and a pair of dual-perspective
// accumulators that BoardData keeps current incrementally instead of
// recomputing the hidden layer from scratch on every move.
package nnue

import (
	"encoding/binary"
	"os"

	"golang.org/x/sync/singleflight"
)

const (
	// HiddenSize is the width of the single hidden layer, per accumulator.
	HiddenSize = 768
	// OutputBuckets is the number of output heads, selected by piece count.
	OutputBuckets = 8
	// Divisor maps a piece count (2..32) onto one of OutputBuckets buckets.
	Divisor = 32 / OutputBuckets
	// Scale is the integer eval scale applied after dequantisation.
	Scale = 400
	// QA is the activation quantisation factor (clamps accumulator values).
	QA = 255
	// QB is the output-weight quantisation factor.
	QB = 64
)

// Accumulator is one column (or the bias vector) of the hidden layer, or a
// live running total of feature weights for one side's perspective.
type Accumulator struct {
	Vals [HiddenSize]int16
}

// Network holds the full set of quantised weights.
type Network struct {
	FeatureWeights [768]Accumulator
	FeatureBias    Accumulator
	OutputWeights  [OutputBuckets][2]Accumulator
	OutputBias     [OutputBuckets]int16
}

var (
	net      *Network
	loadOnce singleflight.Group
)

// zeroNetwork is used whenever no weights file is configured or it cannot
// be read: every feature contributes nothing, so Eval degrades to a flat
// zero score rather than a crash. Search quality suffers but correctness
// doesn't - useful for running movegen/perft tests with no NNUE file on
// disk.
func zeroNetwork() *Network {
	return &Network{}
}

// Load reads a quantised weights file of the exact binary layout
// Network uses (append-ordered FeatureWeights, FeatureBias, OutputWeights,
// OutputBias, all little-endian int16). Concurrent calls for the same path
// share one read via singleflight; the result is not cached, so a later
// call reads the file again. Default holds the process-wide network.
func Load(path string) (*Network, error) {
	v, err, _ := loadOnce.Do(path, func() (interface{}, error) {
		if path == "" {
			return zeroNetwork(), nil
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		n := &Network{}
		if err := binary.Read(f, binary.LittleEndian, n); err != nil {
			return nil, err
		}
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Network), nil
}

// Default returns the process-wide network, loading a zero network the
// first time it's asked for if SetWeightsPath was never called.
func Default() *Network {
	if net == nil {
		net, _ = Load("")
	}
	return net
}

// SetWeightsPath loads and installs the process-wide network from path.
func SetWeightsPath(path string) error {
	n, err := Load(path)
	if err != nil {
		return err
	}
	net = n
	return nil
}

func clampI16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Evaluate runs the forward pass from the already-maintained accumulators,
// returning a centipawn score from us's perspective.
func (n *Network) Evaluate(us, them *Accumulator, outputBucket int) int32 {
	var sum int64
	for i := 0; i < HiddenSize; i++ {
		a := int64(clampI16(us.Vals[i], 0, QA))
		w := int64(n.OutputWeights[outputBucket][0].Vals[i])
		sum += a * a * w
	}
	for i := 0; i < HiddenSize; i++ {
		a := int64(clampI16(them.Vals[i], 0, QA))
		w := int64(n.OutputWeights[outputBucket][1].Vals[i])
		sum += a * a * w
	}
	output := int32(sum/QA) + int32(n.OutputBias[outputBucket])
	output *= Scale
	return output / (QA * QB)
}
