// Package uci implements the UCI protocol transducer boundary: it owns the
// current Position and Search, translates UCI command lines into calls
// against them, and formats search results back out as UCI response lines.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Alex7342/BitboatdChessEngine/internal/elog"
	"github.com/Alex7342/BitboatdChessEngine/internal/movegen"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	"github.com/Alex7342/BitboatdChessEngine/internal/search"
	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

var log = elog.Get("uci")

const (
	engineName   = "BitboatdChessEngine"
	engineAuthor = "the bitboard engine exercise"
)

// Handler owns one UCI session: the current position, the persistent
// search state, and whatever search is currently in flight.
type Handler struct {
	in    *bufio.Scanner
	out   *bufio.Writer
	outMu sync.Mutex

	pos     *position.Position
	eng     *search.Search
	running *search.Handle
}

// NewHandler wires a Handler to the given streams, ready to Loop.
func NewHandler(r io.Reader, w io.Writer) *Handler {
	return &Handler{
		in:  bufio.NewScanner(r),
		out: bufio.NewWriter(w),
		pos: position.New(),
		eng: search.NewSearch(),
	}
}

// Loop reads commands until "quit" or EOF.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.Handle(h.in.Text()) {
			return
		}
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// Handle processes a single command line, returning true on "quit".
func (h *Handler) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	log.Debugf("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		if h.running != nil {
			h.eng.Stop()
			h.running.Wait()
		}
		return true
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		if h.running != nil {
			h.eng.Stop()
			h.running.Wait()
			h.running = nil
		}
		h.eng.ClearTranspositionTable()
		h.eng.ClearOrderingTables()
		h.pos = position.New()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		if h.running != nil {
			h.eng.Stop()
			h.awaitResult()
		}
	case "perft":
		h.perftCommand(tokens)
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	h.outMu.Lock()
	defer h.outMu.Unlock()
	_, _ = h.out.WriteString(s + "\n")
	_ = h.out.Flush()
}

// positionCommand loads a position from "startpos" or a FEN string, then
// replays any trailing "moves" onto it.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		log.Warningf("position command malformed: %v", tokens)
		return
	}
	i := 1
	switch tokens[i] {
	case "startpos":
		h.pos = position.New()
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		fen := strings.TrimSpace(b.String())
		p := &position.Position{}
		if err := p.LoadFEN(fen); err != nil {
			log.Warningf("position command malformed fen %q: %v", fen, err)
			return
		}
		h.pos = p
	default:
		log.Warningf("position command malformed: %v", tokens)
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, err := ParseMove(h.pos, tokens[i])
			if err != nil {
				log.Warningf("position command: %v", err)
				return
			}
			h.pos.DoMove(m)
		}
	}
}

// goCommand reads search limits and starts an asynchronous search.
func (h *Handler) goCommand(tokens []string) {
	if h.running != nil {
		h.eng.Stop()
		h.awaitResult()
	}

	var tc search.TimeControl
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			tc.Infinite = true
			i++
		case "depth":
			i++
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				log.Warningf("go command: bad depth %q", tokens[i])
				return
			}
			tc.Depth = d
			i++
		case "movetime":
			i++
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				log.Warningf("go command: bad movetime %q", tokens[i])
				return
			}
			tc.MoveTime = time.Duration(ms) * time.Millisecond
			i++
		case "wtime":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			tc.WhiteTime = time.Duration(ms) * time.Millisecond
			i++
		case "btime":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			tc.BlackTime = time.Duration(ms) * time.Millisecond
			i++
		case "winc":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			tc.WhiteInc = time.Duration(ms) * time.Millisecond
			i++
		case "binc":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			tc.BlackInc = time.Duration(ms) * time.Millisecond
			i++
		default:
			log.Warningf("go command: unrecognized subcommand %q", tokens[i])
			i++
		}
	}

	h.running = h.eng.Go(h.pos, tc)
	go func() {
		move, stats := h.running.Wait()
		h.send(fmt.Sprintf("info depth %d seldepth %d score cp %d nodes %d time %d",
			stats.Depth, stats.SelDepth, int(stats.Score), stats.Nodes, stats.Elapsed.Milliseconds()))
		h.send("bestmove " + move.String())
	}()
}

func (h *Handler) awaitResult() {
	if h.running == nil {
		return
	}
	h.running.Wait()
}

func (h *Handler) perftCommand(tokens []string) {
	depth := 5
	divide := len(tokens) > 1 && tokens[1] == "divide"
	depthToken := 1
	if divide {
		depthToken = 2
	}
	if len(tokens) > depthToken {
		if d, err := strconv.Atoi(tokens[depthToken]); err == nil {
			depth = d
		}
	}

	start := time.Now()
	if divide {
		for move, nodes := range movegen.PerftDivide(h.pos, depth) {
			h.send(fmt.Sprintf("info string %s: %d", move, nodes))
		}
		h.send(fmt.Sprintf("info string perft divide depth %d time %d", depth, time.Since(start).Milliseconds()))
		return
	}
	nodes := movegen.Perft(h.pos, depth)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d time %d", depth, nodes, time.Since(start).Milliseconds()))
}
