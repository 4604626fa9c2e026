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

// Package transpositiontable implements a lock-free transposition table for
// the search. Unlike a mutex-guarded table, entries are read and written
// with plain atomic loads/stores on two uint64 words (the "Hyatt trick"):
// the stored key is XORed with the packed data word before being written, so
// a concurrent reader that observes a torn update (new key, old data, or
// vice versa) will compute key^data != probeKey and simply treat it as a
// miss rather than returning a corrupted entry. This lets many search
// goroutines share one table without a lock, at the cost of occasionally
// discarding a valid-but-unluckily-torn read.
package transpositiontable

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB bounds how much memory Resize will honor in one request.
const MaxSizeInMB = 65_536

const mb = 1024 * 1024

// Flag records whether a stored score is exact, or a bound produced by a
// fail-high/fail-low cutoff.
type Flag uint8

const (
	// FlagNone marks an empty slot.
	FlagNone Flag = iota
	// FlagExact is a principal-variation score: the true minimax value.
	FlagExact
	// FlagLower is a fail-high cutoff: the true score is >= the stored value.
	FlagLower
	// FlagUpper is a fail-low cutoff: the true score is <= the stored value.
	FlagUpper
)

const (
	flagMask  = uint64(0b11)
	flagShift = 0
	depthMask = uint64(0xFF)
	depthShift = 2
	scoreMask = uint64(0xFFFF)
	scoreShift = 10
	moveMask  = uint64(0xFFFFFFFF)
	moveShift = 26
)

func packData(flag Flag, depth int8, score Value, m Move) uint64 {
	return (uint64(flag)&flagMask)<<flagShift |
		(uint64(uint8(depth))&depthMask)<<depthShift |
		(uint64(uint16(score))&scoreMask)<<scoreShift |
		(uint64(uint32(m))&moveMask)<<moveShift
}

func unpackFlag(data uint64) Flag   { return Flag((data >> flagShift) & flagMask) }
func unpackDepth(data uint64) int8  { return int8((data >> depthShift) & depthMask) }
func unpackScore(data uint64) Value { return Value(int16((data >> scoreShift) & scoreMask)) }
func unpackMove(data uint64) Move   { return Move(uint32((data >> moveShift) & moveMask)) }

// entry is one lock-free slot: two atomically addressable 64-bit words, 16
// bytes total, so a cache line holds four of them.
type entry struct {
	key  uint64
	data uint64
}

// Entry is a materialised snapshot of a probe result, safe to read after
// the atomic load that produced it.
type Entry struct {
	Flag  Flag
	Depth int8
	Score Value
	Move  Move
}

// Table is the lock-free transposition table. Reads and writes race freely
// across goroutines; Resize and Clear are not safe to call concurrently
// with probing or storing.
type Table struct {
	log         *logging.Logger
	data        []entry
	hashMask    uint64
	sizeInByte  uint64
	numEntries  uint64
	Stats       Stats
}

// Stats tracks usage counters for UCI "info" output and tuning.
type Stats struct {
	Puts   uint64
	Probes uint64
	Hits   uint64
	Misses uint64
}

// New creates a table sized to the largest power-of-two entry count that
// fits within sizeInMByte.
func New(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMByte)
	return t
}

// Resize reallocates the table, discarding all entries.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	entrySize := uint64(unsafe.Sizeof(entry{}))
	totalBytes := uint64(sizeInMByte) * mb

	var numEntries uint64
	if totalBytes >= entrySize {
		numEntries = 1 << uint64(math.Floor(math.Log2(float64(totalBytes/entrySize))))
	}

	t.data = make([]entry, numEntries)
	t.hashMask = 0
	if numEntries > 0 {
		t.hashMask = numEntries - 1
	}
	t.sizeInByte = numEntries * entrySize
	t.numEntries = numEntries
	t.Stats = Stats{}

	t.log.Info(out.Sprintf("TT size %d MB, capacity %d entries (%d bytes each, %d MB requested)",
		t.sizeInByte/mb, numEntries, entrySize, sizeInMByte))
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.hashMask
}

// Probe looks up key and reports whether a matching entry was found. The
// key stored in the slot is hash^data, so a torn concurrent write is detected
// (not just tolerated) as a miss rather than returned as garbage.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	t.Stats.Probes++
	if len(t.data) == 0 {
		t.Stats.Misses++
		return Entry{}, false
	}
	slot := &t.data[t.index(key)]
	storedKey := atomic.LoadUint64(&slot.key)
	data := atomic.LoadUint64(&slot.data)
	if storedKey^data != uint64(key) {
		t.Stats.Misses++
		return Entry{}, false
	}
	t.Stats.Hits++
	return Entry{
		Flag:  unpackFlag(data),
		Depth: unpackDepth(data),
		Score: unpackScore(data),
		Move:  unpackMove(data),
	}, true
}

// Store writes an entry unconditionally, replacing whatever held the slot;
// there is no depth-preferred replacement here or in the search, which
// stores every result it computes.
func (t *Table) Store(key zobrist.Key, flag Flag, depth int8, score Value, m Move) {
	if len(t.data) == 0 {
		return
	}
	t.Stats.Puts++
	data := packData(flag, depth, score, m)
	slot := &t.data[t.index(key)]
	atomic.StoreUint64(&slot.data, data)
	atomic.StoreUint64(&slot.key, uint64(key)^data)
}

// Clear zeroes every slot.
func (t *Table) Clear() {
	for i := range t.data {
		atomic.StoreUint64(&t.data[i].key, 0)
		atomic.StoreUint64(&t.data[i].data, 0)
	}
	t.Stats = Stats{}
}

// Hashfull reports table occupancy in permille, as UCI's "info hashfull"
// expects. It samples rather than scans the whole table.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	sample := 1000
	if sample > len(t.data) {
		sample = len(t.data)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if atomic.LoadUint64(&t.data[i].key) != 0 {
			used++
		}
	}
	return (used * 1000) / sample
}

// String summarizes table size and probe statistics.
func (t *Table) String() string {
	return out.Sprintf("TT: size %d MB capacity %d entries puts %d probes %d hits %d (%d%%) misses %d (%d%%)",
		t.sizeInByte/mb, len(t.data), t.Stats.Puts, t.Stats.Probes,
		t.Stats.Hits, (t.Stats.Hits*100)/(1+t.Stats.Probes),
		t.Stats.Misses, (t.Stats.Misses*100)/(1+t.Stats.Probes))
}
