// Package testsuite runs EPD (Extended Position Description) regression
// suites against the search: https://www.chessprogramming.org/Extended_Position_Description.
// Only the "bm" (best move) and "am" (avoid move) opcodes are implemented;
// there is no opening book or direct-mate ("dm") support.
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Alex7342/BitboatdChessEngine/internal/elog"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	"github.com/Alex7342/BitboatdChessEngine/internal/search"
)

var out = message.NewPrinter(language.German)
var log = elog.Get("testsuite")

type opcode uint8

const (
	opBestMove opcode = iota
	opAvoidMove
)

type result uint8

const (
	notTested result = iota
	failed
	succeeded
)

func (r result) String() string {
	switch r {
	case succeeded:
		return "success"
	case failed:
		return "failed"
	default:
		return "not tested"
	}
}

// Test is one EPD line: a position plus its expected bestmove/avoidmove set.
type Test struct {
	ID      string
	Fen     string
	Op      opcode
	Targets []string
	line    string

	Actual string
	Score  result
}

// Suite is a parsed EPD file ready to run.
type Suite struct {
	Tests []*Test
	Path  string
}

var trailingComment = regexp.MustCompile(`#.*$`)
var epdLine = regexp.MustCompile(`^\s*(.+?)\s+(bm|am)\s+(.+?);(.*\bid\s+"(.*?)";)?.*$`)

// Load reads path and parses every EPD line it finds into a Suite.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	defer f.Close()

	s := &Suite{Path: path}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := trailingComment.ReplaceAllString(strings.TrimSpace(scanner.Text()), "")
		if line == "" {
			continue
		}
		t := parseLine(line)
		if t != nil {
			s.Tests = append(s.Tests, t)
		} else {
			log.Warningf("unrecognized EPD line: %s", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	return s, nil
}

func parseLine(line string) *Test {
	m := epdLine.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	var op opcode
	switch m[2] {
	case "bm":
		op = opBestMove
	case "am":
		op = opAvoidMove
	default:
		return nil
	}
	targets := strings.Fields(m[3])
	if len(targets) == 0 {
		return nil
	}
	return &Test{ID: m[5], Fen: m[1], Op: op, Targets: targets, line: line}
}

// Run executes every test in the suite with the given per-test time budget
// (or depth limit, if depth > 0), printing a FrankyGo-style report, and
// returns the aggregate pass/fail counts.
func (s *Suite) Run(moveTime time.Duration, depth int) (passed, failedCount int) {
	out.Printf("Running test suite %s (%d positions)\n", s.Path, len(s.Tests))
	start := time.Now()

	for i, t := range s.Tests {
		p := &position.Position{}
		if err := p.LoadFEN(t.Fen); err != nil {
			log.Warningf("test %q: bad fen %q: %v", t.ID, t.Fen, err)
			t.Score = notTested
			continue
		}
		eng := search.NewSearch()
		tc := search.TimeControl{MoveTime: moveTime, Depth: depth}

		best, _ := eng.BestMove(p, tc)
		actualSAN := renderActual(p, best)
		t.Actual = actualSAN

		hit := matchesTarget(actualSAN, t.Targets)
		switch t.Op {
		case opBestMove:
			if hit {
				t.Score = succeeded
			} else {
				t.Score = failed
			}
		case opAvoidMove:
			if hit {
				t.Score = failed
			} else {
				t.Score = succeeded
			}
		}

		out.Printf("%4d/%d  %-8s  %-8s  target=%-20s  actual=%-8s  id=%s\n",
			i+1, len(s.Tests), t.Score, t.line[:min(20, len(t.line))], strings.Join(t.Targets, " "), actualSAN, t.ID)
		if t.Score == succeeded {
			passed++
		} else if t.Score == failed {
			failedCount++
		}
	}

	elapsed := time.Since(start)
	out.Printf("Finished %d tests in %s: %d passed, %d failed\n", len(s.Tests), elapsed, passed, failedCount)
	return passed, failedCount
}
