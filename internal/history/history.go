// Package history holds the move-ordering tables that persist across an
// iterative-deepening search: the history heuristic (quiet beta-cutoff
// counts keyed by color/from/to) and the two-slot killer-move table keyed
// by ply.
package history

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxHistory is the clamp ceiling for history scores; once a score is
// clamped the whole table is halved before the next iterative-deepening
// pass.
const MaxHistory = 1 << 20

// MaxPly bounds the killer table; deep enough for any MAX_DEPTH search
// plus quiescence-style extensions this engine does not otherwise need.
const MaxPly = 128

// Tables holds the history and killer move-ordering state for one search.
type Tables struct {
	quiet   [ColorLength][SqLength][SqLength]int64
	killers [MaxPly][2]Move
	clamped bool
}

// NewTables returns an empty set of ordering tables.
func NewTables() *Tables {
	return &Tables{}
}

// ClearKillers empties the killer table; called at the start of every
// iterative-deepening depth.
func (t *Tables) ClearKillers() {
	for i := range t.killers {
		t.killers[i][0] = NoMove
		t.killers[i][1] = NoMove
	}
}

// Saturated reports whether the last AddHistory call clamped a value,
// the iterative-deepening driver's signal to halve the table before the
// next depth.
func (t *Tables) Saturated() bool { return t.clamped }

// HalveAll halves every history entry, used after a saturation signal.
func (t *Tables) HalveAll() {
	for c := 0; c < ColorLength; c++ {
		for f := 0; f < SqLength; f++ {
			for to := 0; to < SqLength; to++ {
				t.quiet[c][f][to] /= 2
			}
		}
	}
	t.clamped = false
}

// AddHistory rewards a quiet move that caused a beta cutoff, or that was
// the chosen move at a PV node, with depth^2. Values are clamped to
// MaxHistory.
func (t *Tables) AddHistory(c Color, m Move, depth int) {
	bonus := int64(depth) * int64(depth)
	v := &t.quiet[c][m.From()][m.To()]
	*v += bonus
	if *v > MaxHistory {
		*v = MaxHistory
		t.clamped = true
	}
}

// HistoryScore returns the current quiet-move ordering score.
func (t *Tables) HistoryScore(c Color, m Move) int64 {
	return t.quiet[c][m.From()][m.To()]
}

// AddKiller records m as a killer at ply, displacing the older of the two
// slots unless m is already present.
func (t *Tables) AddKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	slots := &t.killers[ply]
	if slots[0].Equal(m) || slots[1].Equal(m) {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}

// IsKiller reports whether m is one of ply's two killer moves.
func (t *Tables) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	slots := t.killers[ply]
	return slots[0].Equal(m) || slots[1].Equal(m)
}

// String renders a compact, locale-formatted summary of nonzero history
// entries - useful from the UCI "info string" debug hook.
func (t *Tables) String() string {
	total := int64(0)
	nonzero := 0
	for c := 0; c < ColorLength; c++ {
		for f := 0; f < SqLength; f++ {
			for to := 0; to < SqLength; to++ {
				if v := t.quiet[c][f][to]; v != 0 {
					total += v
					nonzero++
				}
			}
		}
	}
	return out.Sprintf("history: %d nonzero entries, sum %d", nonzero, total)
}
