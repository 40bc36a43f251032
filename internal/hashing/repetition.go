package hashing

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// RepetitionTable counts how often each position has occurred in a game.
// Entries whose count falls to zero are removed.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Increment records one more occurrence of pos and returns its new count.
func (r *RepetitionTable) Increment(pos chess.Position) int {
	h := Hash(pos)
	r.counts[h]++
	return r.counts[h]
}

// Decrement removes one occurrence of pos. Unknown positions are ignored.
func (r *RepetitionTable) Decrement(pos chess.Position) {
	h := Hash(pos)
	switch n := r.counts[h]; {
	case n <= 1:
		delete(r.counts, h)
	default:
		r.counts[h] = n - 1
	}
}

// Count returns the number of recorded occurrences of pos.
func (r *RepetitionTable) Count(pos chess.Position) int {
	return r.counts[Hash(pos)]
}

// Len returns the number of distinct positions recorded.
func (r *RepetitionTable) Len() int {
	return len(r.counts)
}

// Hashes returns the recorded position keys in ascending order.
func (r *RepetitionTable) Hashes() []uint64 {
	return slices.Sorted(maps.Keys(r.counts))
}

// Repetition is a recorded position key with its occurrence count.
type Repetition struct {
	Hash  uint64
	Count int
}

// Repeated returns the positions recorded at least atLeast times, ordered
// by key.
func (r *RepetitionTable) Repeated(atLeast int) []Repetition {
	var out []Repetition
	for _, h := range r.Hashes() {
		if n := r.counts[h]; n >= atLeast {
			out = append(out, Repetition{Hash: h, Count: n})
		}
	}
	return out
}
