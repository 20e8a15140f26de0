// Package ttable implements the search's transposition table: a
// power-of-two-sized, direct-mapped array of entries indexed by the low
// bits of the Zobrist key, with an always-replace collision policy.
package ttable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
	"github.com/Alex7342/BitboatdChessEngine/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// Bound classifies how a stored score relates to the true minimax value.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition-table slot.
type Entry struct {
	Key   zobrist.Key
	Move  Move
	Score Value
	Depth int
	Bound Bound
}

const bytesPerEntry = 32 // key, move, score, depth, bound, plus Go's struct padding (64-bit platform)

// Table is a fixed-size, direct-mapped transposition table.
type Table struct {
	entries []Entry
	mask    uint64
	puts    uint64
	probes  uint64
	hits    uint64
}

// New allocates a table sized to the nearest power of two number of
// entries that fits within sizeMB megabytes.
func New(sizeMB int) *Table {
	count := (sizeMB * 1024 * 1024) / bytesPerEntry
	if count < 2 {
		count = 2
	}
	size := 1
	for size*2 <= count {
		size *= 2
	}
	return &Table{
		entries: make([]Entry, size),
		mask:    uint64(size - 1),
	}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key, reporting whether a matching entry was found. The
// table is keyed by low bits only and may alias; callers must re-validate
// any returned move against the current position before trusting it.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	t.probes++
	e := t.entries[t.index(key)]
	if e.Bound == BoundNone || e.Key != key {
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Store writes an entry, always replacing whatever previously occupied the
// slot - no depth-preferred or aging policy, the simplest correct scheme.
func (t *Table) Store(key zobrist.Key, move Move, score Value, depth int, bound Bound) {
	t.puts++
	t.entries[t.index(key)] = Entry{Key: key, Move: move, Score: score, Depth: depth, Bound: bound}
}

// Clear resets every slot; called on ucinewgame.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.puts, t.probes, t.hits = 0, 0, 0
}

// HashFull estimates per-mille table occupancy by sampling the first 1000
// slots, the conventional UCI "info hashfull" statistic.
func (t *Table) HashFull() int {
	n := len(t.entries)
	if n == 0 {
		return 0
	}
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].Bound != BoundNone {
			used++
		}
	}
	return used * 1000 / sample
}

// String renders locale-formatted usage statistics, e.g. for a UCI debug line.
func (t *Table) String() string {
	return out.Sprintf("tt: %d entries, %d probes, %d hits, %d puts", len(t.entries), t.probes, t.hits, t.puts)
}
